package http

import (
	"net/http"

	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
)

type UserInfoHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Get user information
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.UserInfoResponse
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	info := h.SessionService.UserInfo(p)
	httpx.WriteJSON(w, http.StatusOK, platformsdk.UserInfoResponse{
		UID:               info.UID,
		UserType:          info.UserType.String(),
		DisplayName:       info.DisplayName,
		VerificationLevel: info.VerificationLevel,
	})
}
