package packager

// Block is one 64 KiB (or shorter, for the last block of a file) chunk
// of a payload file's content, as defined by spec.md §3.
type Block struct {
	// HashBase64 is base64(sha256(uncompressed block bytes)), always
	// computed from the pre-compression bytes.
	HashBase64 string
	// Stored is the bytes written to the archive for this block: the
	// same as the uncompressed bytes when the owning file is stored, or
	// the DEFLATE output when it is compressed.
	Stored []byte
}

// PayloadFile is a logical entry queued for inclusion in the package
// (spec.md §3).
type PayloadFile struct {
	// RelativePath uses the host path separator, as produced by
	// internal/payloadwalk.
	RelativePath     string
	Extension        string
	IsManifest       bool
	Compressed       bool
	UncompressedSize uint64
	CRC32            uint32
	Blocks           []Block
}
