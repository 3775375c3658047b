// Package digest implements the SHA-256 and base64 primitives used to
// produce the block map's per-block hashes (spec.md §4.3). The algorithm
// is fixed by the wire format (AppxBlockMap.xml declares
// HashMethod="http://www.w3.org/2001/04/xmlenc#sha256") and is not a
// pluggable choice.
package digest

import (
	"crypto/sha256"
	"encoding/base64"
)

// SHA256 returns the SHA-256 digest of p.
func SHA256(p []byte) [sha256.Size]byte {
	return sha256.Sum256(p)
}

// Base64 encodes p using the standard RFC 4648 alphabet with padding.
func Base64(p []byte) string {
	return base64.StdEncoding.EncodeToString(p)
}

// Base64SHA256 is the composed operation the block map needs for every
// block: base64(sha256(uncompressedBlockBytes)).
func Base64SHA256(p []byte) string {
	sum := SHA256(p)
	return Base64(sum[:])
}
