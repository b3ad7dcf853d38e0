package http

import (
	"encoding/json"
	"net/http"

	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/internal/platform/worldid"
	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
)

const maxProofBody = 16 << 10

type WorldIDSignInHandler struct {
	SignInService *service.SignInService
}

// ServeHTTP godoc
//
//	@Summary		Sign in with World ID
//	@Description	Verifies a World ID proof and opens a session with user type "pending".
//	@Description	The returned bearer token is valid until it expires or the session is signed out.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			proof	body		platformsdk.WorldIDProof	true	"World ID widget payload"
//	@Success		200		{object}	platformsdk.SignInResponse
//	@Failure		400		{object}	platformsdk.ErrorResponse	"Malformed body or proof"
//	@Failure		401		{object}	platformsdk.ErrorResponse	"Verification failed"
//	@Failure		429		{object}	platformsdk.ErrorResponse	"Rate limited"
//	@Router			/v1/auth/worldid [post].
func (h *WorldIDSignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.WorldIDProof
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProofBody)).Decode(&req); err != nil {
		platformsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	res, err := h.SignInService.SignInWithWorldID(ctx, worldid.Proof{
		MerkleRoot:        req.MerkleRoot,
		NullifierHash:     req.NullifierHash,
		Proof:             req.Proof,
		VerificationLevel: req.VerificationLevel,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.SignInResponse{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		ExpiresIn:   int(res.ExpiresIn),
		UID:         res.UID,
		UserType:    res.UserType.String(),
	})
}
