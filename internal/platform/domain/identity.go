package domain

const (
	VerificationLevelOrb    = "orb"
	VerificationLevelDevice = "device"
)

// DefaultDisplayName is shown for every verified user; no profile is kept.
const DefaultDisplayName = "World ID User"

// Identity is the outcome of a successful proof verification.
type Identity struct {
	UID               string
	NullifierHash     string
	VerificationLevel string
}

// UserInfo describes the signed-in user.
type UserInfo struct {
	UID               string   `json:"uid"`
	UserType          UserType `json:"user_type"`
	DisplayName       string   `json:"display_name"`
	VerificationLevel string   `json:"verification_level"`
}
