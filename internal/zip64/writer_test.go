package zip64

import (
	"archive/zip"
	"hash/crc32"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeStoredEntry writes name/content as an uncompressed entry.
func writeStoredEntry(t *testing.T, w *Writer, name string, content []byte) {
	t.Helper()
	lfh, err := w.WriteLFH(name, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteBuffer(content))
	crc := crc32.ChecksumIEEE(content)
	require.NoError(t, w.WriteCDH(lfh, crc, uint64(len(content)), uint64(len(content))))
}

func TestWriterRoundTripsThroughStandardZipReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	w, err := NewWriter(path)
	require.NoError(t, err)

	writeStoredEntry(t, w, "a.txt", []byte("hello"))
	writeStoredEntry(t, w, "dir/b.txt", []byte("world, a bit longer this time"))
	require.NoError(t, w.Close())

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 2)
	require.Equal(t, "a.txt", r.File[0].Name)
	require.Equal(t, "dir/b.txt", r.File[1].Name)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	data := make([]byte, 5)
	_, err = rc.Read(data)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
	require.NoError(t, rc.Close())
}

func TestWriterEmptyFileProducesZeroSizeEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	w, err := NewWriter(path)
	require.NoError(t, err)
	writeStoredEntry(t, w, "empty.bin", nil)
	require.NoError(t, w.Close())

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	require.Len(t, r.File, 1)
	require.EqualValues(t, 0, r.File[0].UncompressedSize64)
}

func TestWriterRejectsOutOfOrderCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	w, err := NewWriter(path)
	require.NoError(t, err)

	err = w.WriteBuffer([]byte("oops"))
	require.ErrorIs(t, err, ErrWriterProtocol)

	lfh, err := w.WriteLFH("a.txt", false)
	require.NoError(t, err)

	_, err = w.WriteLFH("b.txt", false)
	require.ErrorIs(t, err, ErrWriterProtocol)

	require.NoError(t, w.WriteBuffer([]byte("data")))
	require.NoError(t, w.WriteCDH(lfh, crc32.ChecksumIEEE([]byte("data")), 4, 4))

	require.NoError(t, w.Close())
	err = w.WriteBuffer([]byte("late"))
	require.ErrorIs(t, err, ErrWriterProtocol)
}

func TestWriterDetectsOffsetMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	w, err := NewWriter(path)
	require.NoError(t, err)

	lfh, err := w.WriteLFH("a.txt", false)
	require.NoError(t, err)
	require.NoError(t, w.WriteBuffer([]byte("1234")))

	err = w.WriteCDH(lfh, 0, 3, 3) // claims 3 compressed bytes were written, but 4 were
	require.ErrorIs(t, err, ErrOffsetMismatch)
}

func TestRecordSerializedSizeMatchesSerializedLength(t *testing.T) {
	lfh := localFileHeader{name: "images/hello world.png", method: Deflate}
	require.Len(t, lfh.serialize(), lfh.serializedSize())

	cdh := centralDirectoryFileHeader{name: "a.txt", method: Store, offset: 10}
	require.Len(t, cdh.serialize(), cdh.serializedSize())
}
