package platformsdk

import (
	"time"

	"github.com/bettoyou/bettoyou/pkg/jwtx"
)

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Error            string `json:"error" example:"duplicate_certificate"`
	ErrorDescription string `json:"error_description" example:"a certificate is already registered for this user"`
}

// WorldIDProof is the payload produced by the World ID widget.
type WorldIDProof struct {
	MerkleRoot        string `json:"merkle_root"`
	NullifierHash     string `json:"nullifier_hash" example:"0x2bf8406809dcefb1486dadc96c0a897db9bab002053054cf64272db512c6fbd8"`
	Proof             string `json:"proof"`
	VerificationLevel string `json:"verification_level" example:"orb"`
}

// SignInResponse is returned by POST /v1/auth/worldid.
type SignInResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"3600"`
	UID         string `json:"uid" example:"worldid_1740830400000_k3j9x0a1b2c3d"`
	UserType    string `json:"user_type" example:"pending"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	UID           string `json:"uid"`
	UserType      string `json:"user_type" example:"scholar"`
	Authenticated bool   `json:"authenticated"`
}

// SelectUserTypeRequest is the body of PUT /v1/session/user-type.
type SelectUserTypeRequest struct {
	UserType string `json:"user_type" example:"scholar"`
}

type UserInfoResponse struct {
	UID               string `json:"uid"`
	UserType          string `json:"user_type"`
	DisplayName       string `json:"display_name" example:"World ID User"`
	VerificationLevel string `json:"verification_level" example:"device"`
}

type DashboardFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DashboardResponse struct {
	UserType          string             `json:"user_type"`
	Title             string             `json:"title"`
	Icon              string             `json:"icon"`
	Description       string             `json:"description"`
	Features          []DashboardFeature `json:"features"`
	CertificateUpload bool               `json:"certificate_upload"`
}

// CertificateResponse is a registered certificate fingerprint.
type CertificateResponse struct {
	UID              string    `json:"uid"`
	CertHash         string    `json:"certHash" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	WorldIDNullifier string    `json:"worldIdNullifier,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
}

// HealthResponse is returned by /livez and /readyz; only readyz fills Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the key set from /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS
