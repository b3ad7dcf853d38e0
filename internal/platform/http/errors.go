package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/bettoyou/bettoyou/internal/platform/service"
	"github.com/bettoyou/bettoyou/pkg/platformsdk"
	"github.com/bettoyou/bettoyou/pkg/slogx"
)

// apiErrorFor maps service sentinels onto wire errors. Anything unknown is a
// server error.
func apiErrorFor(err error) *platformsdk.APIError {
	switch {
	case errors.Is(err, service.ErrUnsupportedFormat):
		return platformsdk.ErrUnsupportedFormat
	case errors.Is(err, service.ErrFileTooLarge):
		return platformsdk.ErrFileTooLarge
	case errors.Is(err, service.ErrUnauthenticated):
		return platformsdk.ErrUnauthenticated
	case errors.Is(err, service.ErrDuplicateCertificate):
		return platformsdk.ErrDuplicateCertificate
	case errors.Is(err, service.ErrCertificateNotFound):
		return platformsdk.ErrCertificateNotFound
	case errors.Is(err, service.ErrProcessingFailure):
		return platformsdk.ErrProcessingFailure
	case errors.Is(err, service.ErrInvalidUserType):
		return platformsdk.ErrInvalidUserType
	case errors.Is(err, service.ErrUserTypeRequired):
		return platformsdk.ErrUserTypeRequired
	case errors.Is(err, service.ErrVerificationFailed):
		return platformsdk.ErrVerificationFailed
	case errors.Is(err, service.ErrInvalidProof):
		return platformsdk.ErrInvalidProof
	}
	return platformsdk.ErrServerError
}

func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	apiErr := apiErrorFor(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(ctx).Error("request failed", "error", err)
	}
	apiErr.WriteError(w)
}
