package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestHexLen is the length of a hex encoded SHA-256 digest.
const DigestHexLen = sha256.Size * 2

// ContentDigest returns the lowercase hex SHA-256 digest of b.
func ContentDigest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
