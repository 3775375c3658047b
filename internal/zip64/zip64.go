// Package zip64 implements the fixed-layout ZIP64 records and the
// append-only writer state machine used to assemble an MSIX package.
//
// The record layouts and the little-endian field-packing idiom are
// generalized from github.com/martin-sucha/zipserve's struct.go and
// writer.go. Unlike zipserve (which buffers whole records in memory and
// defers every write until the final archive is assembled), this package
// writes sequentially to a real file handle and enforces the legal write
// order with an explicit state machine, since MSIX packages are built by
// streaming payload blocks through a single pass over the output file.
package zip64

import "encoding/binary"

// Compression methods, as used in ZIP local/central file headers.
const (
	Store   uint16 = 0
	Deflate uint16 = 8
)

const (
	localFileHeaderSignature       = 0x04034b50
	dataDescriptorSignature        = 0x08074b50
	centralDirectorySignature      = 0x02014b50
	zip64EndOfDirectorySignature   = 0x06064b50
	zip64EndOfDirectoryLocatorSig  = 0x07064b50
	endOfCentralDirectorySignature = 0x06054b50

	zip64ExtraID = 0x0001

	versionNeeded = 45 // 4.5: reads/writes ZIP64 archives, always used here

	// Fixed placeholder DOS time/date values. The packager makes no claim
	// about entry modification times; see spec.md §6 "Fixed time constants".
	fixedModTime = 0x4552
	fixedModDate = 0x5347

	// generalPurposeFlags sets bit 3: sizes and CRC-32 live in the data
	// descriptor rather than the local file header.
	generalPurposeFlags = 0x0008

	uint32max = 0xFFFFFFFF
	uint16max = 0xFFFF
)

// writeBuf is a cursor over a fixed-size byte slice that advances as
// fields are appended, following the idiom from zipserve/writer.go.
type writeBuf []byte

func (b *writeBuf) uint16(v uint16) {
	binary.LittleEndian.PutUint16((*b)[:2], v)
	*b = (*b)[2:]
}

func (b *writeBuf) uint32(v uint32) {
	binary.LittleEndian.PutUint32((*b)[:4], v)
	*b = (*b)[4:]
}

func (b *writeBuf) uint64(v uint64) {
	binary.LittleEndian.PutUint64((*b)[:8], v)
	*b = (*b)[8:]
}
