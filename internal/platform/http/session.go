package http

import (
	"encoding/json"
	"net/http"

	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleGet godoc
//
//	@Summary		Current session
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.SessionResponse
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.SessionResponse{
		UID:           p.UID,
		UserType:      p.UserType,
		Authenticated: true,
	})
}

// HandleSelectUserType godoc
//
//	@Summary		Select user type
//	@Description	Sets the role of the signed-in user to scholar, individual or corporate.
//	@Tags			Session
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		platformsdk.SelectUserTypeRequest	true	"Chosen user type"
//	@Success		200		{object}	platformsdk.SessionResponse
//	@Failure		400		{object}	platformsdk.ErrorResponse	"Unknown user type"
//	@Failure		401		{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/session/user-type [put].
func (h *SessionHandler) HandleSelectUserType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	var req platformsdk.SelectUserTypeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		platformsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	sess, err := h.SessionService.SelectUserType(ctx, p.SessionID, p.UID, req.UserType)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.SessionResponse{
		UID:           sess.UID,
		UserType:      sess.UserType.String(),
		Authenticated: sess.Authenticated(),
	})
}

// HandleDelete godoc
//
//	@Summary		Sign out
//	@Description	Ends the session. Its bearer token stops working immediately.
//	@Tags			Session
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	if err := h.SessionService.SignOut(ctx, p.SessionID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
