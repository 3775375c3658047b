// Package packager implements the end-to-end MSIX packaging pipeline
// (spec.md §4.11): enumerate the payload directory, classify and read
// each file, build the ZIP64 archive alongside the AppxBlockMap.xml and
// [Content_Types].xml side streams, and close the package.
//
// Grounded on original_source/src/prototype/main.cpp's PackageBuilder —
// in particular the manifest-deferred-to-last ordering, the CRC-32-
// over-raw-bytes-while-SHA-hashing-the-same-chunk loop, and the
// block-map-then-content-types trailer sequence — and on
// martin-sucha-zipserve/archive.go's NewArchive for the Go idiom of one
// constructor-shaped function assembling a whole archive.
package packager

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/appx-tools/msixpack/internal/blockmap"
	"github.com/appx-tools/msixpack/internal/contenttype"
	"github.com/appx-tools/msixpack/internal/digest"
	"github.com/appx-tools/msixpack/internal/flatecodec"
	"github.com/appx-tools/msixpack/internal/opcname"
	"github.com/appx-tools/msixpack/internal/payloadwalk"
	"github.com/appx-tools/msixpack/internal/zip64"
)

const (
	manifestName    = "AppxManifest.xml"
	blockMapName    = "AppxBlockMap.xml"
	contentTypeName = "[Content_Types].xml"

	blockSize = 64 * 1024
)

// Build packs the contents of root into an MSIX package written to
// packagePath, following the pipeline in spec.md §4.11. The partially
// written package file is left in place on error, per spec.md §7; the
// caller is expected to delete it.
func Build(root, packagePath string) error {
	entries, err := payloadwalk.List(root)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoPayloadFiles
	}

	var manifest *PayloadFile
	var payloads []*PayloadFile
	for _, entry := range entries {
		pf, err := readPayloadFile(root, entry.RelativePath)
		if err != nil {
			return err
		}
		if pf.IsManifest {
			manifest = pf
		} else {
			payloads = append(payloads, pf)
		}
	}
	if manifest == nil {
		return ErrManifestNotFound
	}

	zw, err := zip64.NewWriter(packagePath)
	if err != nil {
		return err
	}

	ct := contenttype.New()
	bm := blockmap.New()

	for _, pf := range payloads {
		classifyContentType(ct, pf)
		if err := writePayloadEntry(zw, bm, pf); err != nil {
			return err
		}
	}
	classifyContentType(ct, manifest)
	if err := writePayloadEntry(zw, bm, manifest); err != nil {
		return err
	}

	if err := writeSingleShotEntry(zw, blockMapName, bm.Bytes()); err != nil {
		return fmt.Errorf("packager: write %s: %w", blockMapName, err)
	}
	ct.AddOverride("application/vnd.ms-appx.blockmap+xml", "/"+blockMapName)

	if err := writeSingleShotEntry(zw, contentTypeName, ct.Bytes()); err != nil {
		return fmt.Errorf("packager: write %s: %w", contentTypeName, err)
	}

	return zw.Close()
}

// classifyContentType registers pf's MIME type with the content-types
// writer. The manifest is forced (spec.md §4.11 step 3): its xml
// extension gets the manifest-specific content type even though regular
// payload .xml files get the generic default.
func classifyContentType(ct *contenttype.Writer, pf *PayloadFile) {
	entry := contentTypeEntry(pf)
	ct.AddDefault(entry.MIMEType, pf.Extension, pf.IsManifest)
}

func contentTypeEntry(pf *PayloadFile) contenttype.Entry {
	if pf.IsManifest {
		return contenttype.ManifestEntry
	}
	return contenttype.Lookup(pf.Extension)
}

// readPayloadFile classifies and reads one enumerated file, computing
// its CRC-32, its per-block hashes, and (if the content-type table calls
// for it) its DEFLATE-compressed block bytes.
func readPayloadFile(root, relativePath string) (*PayloadFile, error) {
	isManifest := relativePath == manifestName
	ext := extensionOf(relativePath)

	var entry contenttype.Entry
	if isManifest {
		entry = contenttype.ManifestEntry
	} else {
		entry = contenttype.Lookup(ext)
	}
	compressed := entry.Compression == contenttype.Normal

	f, err := os.Open(filepath.Join(root, relativePath))
	if err != nil {
		return nil, fmt.Errorf("packager: open %q: %w", relativePath, err)
	}
	defer f.Close()

	pf := &PayloadFile{
		RelativePath: relativePath,
		Extension:    ext,
		IsManifest:   isManifest,
		Compressed:   compressed,
	}

	crc := crc32.NewIEEE()
	buf := make([]byte, blockSize)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			crc.Write(chunk)

			block := Block{HashBase64: digest.Base64SHA256(chunk)}
			if compressed {
				stored, err := flatecodec.Deflate(chunk)
				if err != nil {
					return nil, fmt.Errorf("packager: compress %q: %w", relativePath, err)
				}
				block.Stored = stored
			} else {
				block.Stored = append([]byte(nil), chunk...)
			}
			pf.Blocks = append(pf.Blocks, block)
			pf.UncompressedSize += uint64(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("packager: read %q: %w", relativePath, readErr)
		}
	}
	pf.CRC32 = crc.Sum32()
	return pf, nil
}

func extensionOf(relativePath string) string {
	ext := filepath.Ext(relativePath)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// writePayloadEntry writes pf's local file header, blocks, and central
// directory header to zw, and registers it with the block map.
func writePayloadEntry(zw *zip64.Writer, bm *blockmap.Writer, pf *PayloadFile) error {
	opcName := opcname.Encode(pf.RelativePath)
	if opcName == "" {
		return fmt.Errorf("%w: %q", ErrOPCEncodeFailed, pf.RelativePath)
	}

	lfh, err := zw.WriteLFH(opcName, pf.Compressed)
	if err != nil {
		return err
	}

	fileNode := bm.AddFile(pf.RelativePath, pf.UncompressedSize, lfh.Size())

	var compressedSize uint64
	if len(pf.Blocks) == 0 {
		// A zero-byte file still needs one WriteBuffer call: the writer
		// state machine requires ReadyForBufferOrCdh before WriteCDH, and
		// an empty write is the correct zero-length entry body.
		if err := zw.WriteBuffer(nil); err != nil {
			return err
		}
	}
	for _, block := range pf.Blocks {
		if err := zw.WriteBuffer(block.Stored); err != nil {
			return err
		}
		compressedSize += uint64(len(block.Stored))

		storedSize := 0
		if pf.Compressed {
			storedSize = len(block.Stored)
		}
		fileNode.AddBlock(block.HashBase64, storedSize)
	}

	return zw.WriteCDH(lfh, pf.CRC32, compressedSize, pf.UncompressedSize)
}

// writeSingleShotEntry writes name/buf as a single DEFLATE-compressed
// entry, used for the two XML side streams (spec.md §4.11 steps 6–7).
// Unlike payload files, these are never chunked: a fresh codec compresses
// the whole buffer in one call, and the CRC-32 covers the raw buffer.
func writeSingleShotEntry(zw *zip64.Writer, name string, buf []byte) error {
	lfh, err := zw.WriteLFH(name, true)
	if err != nil {
		return err
	}
	compressed, err := flatecodec.Deflate(buf)
	if err != nil {
		return err
	}
	if err := zw.WriteBuffer(compressed); err != nil {
		return err
	}
	crc := crc32.ChecksumIEEE(buf)
	return zw.WriteCDH(lfh, crc, uint64(len(compressed)), uint64(len(buf)))
}
