package zip64

import (
	"errors"
	"fmt"
	"os"
)

// state is the Writer's current position in the legal write sequence
// from spec.md §4.6.
type state int

const (
	readyForLFHOrClose state = iota
	readyForBuffer
	readyForBufferOrCDH
	closed
)

func (s state) String() string {
	switch s {
	case readyForLFHOrClose:
		return "ReadyForLfhOrClose"
	case readyForBuffer:
		return "ReadyForBuffer"
	case readyForBufferOrCDH:
		return "ReadyForBufferOrCdh"
	case closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// ErrWriterProtocol is returned when a Writer method is called outside
// its legal source state. It indicates a programming bug in the caller,
// not a recoverable I/O condition (spec.md §7, "Protocol error").
var ErrWriterProtocol = errors.New("zip64: writer protocol violation")

// ErrOffsetMismatch is returned by WriteCDH when the file's current
// offset does not equal lfh.offset + lfh.size + compressedSize, meaning
// the caller wrote a different number of bytes than it is now claiming
// (spec.md §4.6 / §7, "Invariant error").
var ErrOffsetMismatch = errors.New("zip64: offset mismatch closing entry")

// LFHHandle is returned by WriteLFH and must be passed back to WriteCDH
// to close the entry. It is a non-owning handle valid only for the
// Writer that produced it (spec.md §3, "Ownership and lifecycle").
type LFHHandle struct {
	name   string
	method uint16
	offset uint64
	size   int
}

// Size is the exact serialized byte length of the local file header,
// including the variable-length name. The packager reports this as the
// block map's LfhSize attribute (spec.md §4.6).
func (h *LFHHandle) Size() int { return h.size }

// Offset is the file offset at which the local file header begins.
func (h *LFHHandle) Offset() uint64 { return h.offset }

// Writer is the append-only ZIP64 container writer. It owns the output
// file exclusively: no other component may write to it once a Writer has
// been created for it (spec.md §5).
type Writer struct {
	file   *os.File
	offset uint64
	state  state
	dir    []centralDirectoryFileHeader
}

// NewWriter creates the output file at path, truncating any existing
// content, and returns a Writer ready to accept entries.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, fmt.Errorf("zip64: create package file: %w", err)
	}
	return &Writer{file: f, state: readyForLFHOrClose}, nil
}

func (w *Writer) write(p []byte) error {
	n, err := w.file.Write(p)
	w.offset += uint64(n)
	if err != nil {
		return fmt.Errorf("zip64: write: %w", err)
	}
	if n != len(p) {
		return fmt.Errorf("zip64: short write: wrote %d of %d bytes", n, len(p))
	}
	return nil
}

// Offset returns the writer's current, authoritative position in the
// output file. Every offset recorded in a ZIP record is derived from
// this value (spec.md §4.1).
func (w *Writer) Offset() uint64 { return w.offset }

// WriteLFH writes a local file header for a new entry and transitions
// from ReadyForLfhOrClose to ReadyForBuffer.
func (w *Writer) WriteLFH(name string, compressed bool) (*LFHHandle, error) {
	if w.state != readyForLFHOrClose {
		return nil, fmt.Errorf("%w: WriteLFH called in state %s, expected %s", ErrWriterProtocol, w.state, readyForLFHOrClose)
	}
	method := Store
	if compressed {
		method = Deflate
	}
	lfh := localFileHeader{name: name, method: method}
	offset := w.offset
	if err := w.write(lfh.serialize()); err != nil {
		return nil, err
	}
	w.state = readyForBuffer
	return &LFHHandle{name: name, method: method, offset: offset, size: lfh.serializedSize()}, nil
}

// WriteBuffer appends entry payload bytes. It may be called any number
// of times between WriteLFH and WriteCDH.
func (w *Writer) WriteBuffer(p []byte) error {
	if w.state != readyForBuffer && w.state != readyForBufferOrCDH {
		return fmt.Errorf("%w: WriteBuffer called in state %s, expected %s or %s", ErrWriterProtocol, w.state, readyForBuffer, readyForBufferOrCDH)
	}
	if err := w.write(p); err != nil {
		return err
	}
	w.state = readyForBufferOrCDH
	return nil
}

// WriteCDH closes the current entry: it writes the data descriptor,
// accumulates the central directory file header for this entry, and
// transitions back to ReadyForLfhOrClose.
func (w *Writer) WriteCDH(lfh *LFHHandle, crc32 uint32, compressedSize, uncompressedSize uint64) error {
	if w.state != readyForBufferOrCDH {
		return fmt.Errorf("%w: WriteCDH called in state %s, expected %s", ErrWriterProtocol, w.state, readyForBufferOrCDH)
	}
	expected := lfh.offset + uint64(lfh.size) + compressedSize
	if expected != w.offset {
		return fmt.Errorf("%w: expected offset %d after entry %q, got %d", ErrOffsetMismatch, expected, lfh.name, w.offset)
	}
	dd := dataDescriptor{crc32: crc32, compressedSize: compressedSize, uncompressedSize: uncompressedSize}
	if err := w.write(dd.serialize()); err != nil {
		return err
	}
	w.dir = append(w.dir, centralDirectoryFileHeader{
		name:             lfh.name,
		method:           lfh.method,
		crc32:            crc32,
		compressedSize:   compressedSize,
		uncompressedSize: uncompressedSize,
		offset:           lfh.offset,
	})
	w.state = readyForLFHOrClose
	return nil
}

// Close writes the central directory, the ZIP64 end-of-central-directory
// record, the ZIP64 locator, and the end-of-central-directory record, in
// that order, then closes the underlying file.
func (w *Writer) Close() error {
	if w.state != readyForLFHOrClose {
		return fmt.Errorf("%w: Close called in state %s, expected %s", ErrWriterProtocol, w.state, readyForLFHOrClose)
	}

	startOfCentralDirectory := w.offset
	for _, h := range w.dir {
		if err := w.write(h.serialize()); err != nil {
			return err
		}
	}
	centralDirectorySize := w.offset - startOfCentralDirectory

	startOfZip64Record := w.offset
	eocdr64 := zip64EndOfCentralDirectoryRecord{
		entries:                uint64(len(w.dir)),
		centralDirectorySize:   centralDirectorySize,
		centralDirectoryOffset: startOfCentralDirectory,
	}
	if err := w.write(eocdr64.serialize()); err != nil {
		return err
	}

	locator := zip64EndOfCentralDirectoryLocator{zip64EndOfCentralDirectoryOffset: startOfZip64Record}
	if err := w.write(locator.serialize()); err != nil {
		return err
	}

	var eocdr endCentralDirectoryRecord
	if err := w.write(eocdr.serialize()); err != nil {
		return err
	}

	w.state = closed
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("zip64: close package file: %w", err)
	}
	return nil
}
