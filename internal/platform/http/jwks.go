package http

import (
	"net/http"

	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/jwtx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
)

// JWKSHandler publishes the public halves of the session signing keys.
// The set changes on every restart.
//
//	@Summary		Get JWKS
//	@Description	Returns the Ed25519 keys that sign session tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	platformsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, platformsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
