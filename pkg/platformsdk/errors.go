package platformsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bettoyou/bettoyou/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeUnauthenticated      = "unauthenticated"
	ErrorCodeVerificationFailed   = "verification_failed"
	ErrorCodeInvalidProof         = "invalid_proof"
	ErrorCodeInvalidUserType      = "invalid_user_type"
	ErrorCodeUserTypeRequired     = "user_type_required"
	ErrorCodeForbiddenUserType    = "forbidden_user_type"
	ErrorCodeUnsupportedFormat    = "unsupported_format"
	ErrorCodeFileTooLarge         = "file_too_large"
	ErrorCodeDuplicateCertificate = "duplicate_certificate"
	ErrorCodeCertificateNotFound  = "certificate_not_found"
	ErrorCodeProcessingFailure    = "processing_failure"
	ErrorCodeRateLimited          = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is the error body every endpoint returns. The server writes it
// with WriteError; the client decodes it from non-2xx responses.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches any *APIError with the same code, so decoded errors compare
// equal to the predefined ones.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WriteError writes e as the JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrUnauthenticated = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthenticated,
		Description: "sign in with World ID first",
	}

	ErrVerificationFailed = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeVerificationFailed,
		Description: "World ID verification failed, please try again",
	}

	ErrInvalidProof = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidProof,
		Description: "the World ID proof is malformed",
	}

	ErrInvalidUserType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidUserType,
		Description: "user_type must be one of scholar, individual, corporate",
	}

	ErrUserTypeRequired = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUserTypeRequired,
		Description: "select a user type first",
	}

	ErrForbiddenUserType = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbiddenUserType,
		Description: "not available for this user type",
	}

	ErrUnsupportedFormat = &APIError{
		StatusCode:  http.StatusUnsupportedMediaType,
		Code:        ErrorCodeUnsupportedFormat,
		Description: "certificate must be a PDF, JPEG, PNG, GIF or WebP file",
	}

	ErrFileTooLarge = &APIError{
		StatusCode:  http.StatusRequestEntityTooLarge,
		Code:        ErrorCodeFileTooLarge,
		Description: "certificate must be 10 MiB or smaller",
	}

	ErrDuplicateCertificate = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateCertificate,
		Description: "a certificate is already registered for this user",
	}

	ErrCertificateNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeCertificateNotFound,
		Description: "no certificate registered for this user",
	}

	ErrProcessingFailure = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeProcessingFailure,
		Description: "the certificate could not be processed",
	}

	ErrRateLimited = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        ErrorCodeRateLimited,
		Description: "too many requests",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
