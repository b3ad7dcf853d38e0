/*
Package platformsdk is a client for the BettoYou platform API.

A Client talks to public endpoints and signs in; a Session carries the
bearer token for everything else:

	client := platformsdk.NewClient("http://localhost:8080")

	session, err := client.SignInWithWorldID(ctx, platformsdk.WorldIDProof{
		NullifierHash:     proof.NullifierHash,
		MerkleRoot:        proof.MerkleRoot,
		Proof:             proof.Proof,
		VerificationLevel: "orb",
	})
	if errors.Is(err, platformsdk.ErrVerificationFailed) {
		// ask the user to try again
	}

	_, err = session.SelectUserType(ctx, "scholar")
	rec, err := session.UploadCertificate(ctx, "diploma.pdf", "application/pdf", f, "")
	if errors.Is(err, platformsdk.ErrDuplicateCertificate) {
		// already registered
	}

Errors returned by the server are *APIError values and compare equal, with
errors.Is, to the predefined errors carrying the same code.

LocalSessionStore keeps the signed-in user across process restarts under the
"worldid-auth" key of a small JSON file.
*/
package platformsdk
