package cryptox_test

import (
	"testing"

	"github.com/bettoyou/bettoyou/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestContentDigest(t *testing.T) {
	t.Run("matches the empty input vector", func(t *testing.T) {
		require.Equal(t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			cryptox.ContentDigest(nil),
		)
	})

	t.Run("is deterministic", func(t *testing.T) {
		data := []byte("%PDF-1.7 scholarship certificate")
		first := cryptox.ContentDigest(data)
		require.Equal(t, first, cryptox.ContentDigest(data))
		require.Len(t, first, cryptox.DigestHexLen)
	})

	t.Run("differs for different content", func(t *testing.T) {
		require.NotEqual(t, cryptox.ContentDigest([]byte("a")), cryptox.ContentDigest([]byte("b")))
	})
}
