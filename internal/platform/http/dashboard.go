package http

import (
	"net/http"

	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/pkg/httpx"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
)

type DashboardHandler struct {
	DashboardService service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Role dashboard
//	@Description	Static dashboard content for the session's user type.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.DashboardResponse
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Not signed in"
//	@Failure		409	{object}	platformsdk.ErrorResponse	"User type not selected yet"
//	@Router			/v1/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		platformsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	d, err := h.DashboardService.ForUserType(p.UserType)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	features := make([]platformsdk.DashboardFeature, 0, len(d.Features))
	for _, f := range d.Features {
		features = append(features, platformsdk.DashboardFeature{Name: f.Name, Description: f.Description})
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.DashboardResponse{
		UserType:          d.UserType.String(),
		Title:             d.Title,
		Icon:              d.Icon,
		Description:       d.Description,
		Features:          features,
		CertificateUpload: d.CertificateUpload,
	})
}
