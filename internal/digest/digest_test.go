package digest

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase64SHA256KnownVector(t *testing.T) {
	// sha256("") base64-encoded, a well known vector.
	got := Base64SHA256(nil)
	require.Equal(t, "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=", got)
}

func TestBase64DecodeRoundTrip(t *testing.T) {
	cases := [][]byte{nil, []byte("x"), []byte("hello world"), make([]byte, 257)}
	for _, p := range cases {
		encoded := Base64(p)
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		require.Equal(t, SHA256(p), SHA256(decoded))
	}
}
