package zip64

// localFileHeader is the record written immediately before an entry's
// payload bytes. Sizes and CRC-32 are always zero here: the general
// purpose flag's bit 3 is set, so the true values live in the trailing
// dataDescriptor instead (spec.md §3, "ZIP entry record set").
type localFileHeader struct {
	name   string
	method uint16
}

func (h localFileHeader) serializedSize() int {
	return 30 + len(h.name)
}

func (h localFileHeader) serialize() []byte {
	buf := make([]byte, h.serializedSize())
	b := writeBuf(buf)
	b.uint32(localFileHeaderSignature)
	b.uint16(versionNeeded)
	b.uint16(generalPurposeFlags)
	b.uint16(h.method)
	b.uint16(fixedModTime)
	b.uint16(fixedModDate)
	b.uint32(0) // crc, see dataDescriptor
	b.uint32(0) // compressed size, see dataDescriptor
	b.uint32(0) // uncompressed size, see dataDescriptor
	b.uint16(uint16(len(h.name)))
	b.uint16(0) // extra length, unused
	copy(b, h.name)
	return buf
}

// dataDescriptor carries the authoritative CRC-32 and 8-byte sizes for
// the entry that immediately precedes it. Always written with 8-byte
// sizes since the local file header never carries a ZIP64 extra field
// (spec.md §4.5).
type dataDescriptor struct {
	crc32            uint32
	compressedSize   uint64
	uncompressedSize uint64
}

func (dataDescriptor) serializedSize() int { return 24 }

func (d dataDescriptor) serialize() []byte {
	buf := make([]byte, 24)
	b := writeBuf(buf)
	b.uint32(dataDescriptorSignature)
	b.uint32(d.crc32)
	b.uint64(d.compressedSize)
	b.uint64(d.uncompressedSize)
	return buf
}

// zip64ExtendedInformation is the extra block appended to a central
// directory file header's Extra field carrying the true 64-bit sizes and
// offset that the header's sentinel fields point at.
type zip64ExtendedInformation struct {
	uncompressedSize uint64
	compressedSize   uint64
	relativeOffset   uint64
}

func (zip64ExtendedInformation) serializedSize() int { return 28 }

func (z zip64ExtendedInformation) serialize() []byte {
	buf := make([]byte, 28)
	b := writeBuf(buf)
	b.uint16(zip64ExtraID)
	b.uint16(24) // data size: 3x uint64, excludes the tag/size fields themselves
	b.uint64(z.uncompressedSize)
	b.uint64(z.compressedSize)
	b.uint64(z.relativeOffset)
	return buf
}

// centralDirectoryFileHeader is retained in memory for every entry and
// emitted in one batch during Close, in the order entries were closed.
type centralDirectoryFileHeader struct {
	name             string
	method           uint16
	crc32            uint32
	compressedSize   uint64
	uncompressedSize uint64
	offset           uint64
}

func (h centralDirectoryFileHeader) extra() zip64ExtendedInformation {
	return zip64ExtendedInformation{
		uncompressedSize: h.uncompressedSize,
		compressedSize:   h.compressedSize,
		relativeOffset:   h.offset,
	}
}

func (h centralDirectoryFileHeader) serializedSize() int {
	return 46 + len(h.name) + h.extra().serializedSize()
}

func (h centralDirectoryFileHeader) serialize() []byte {
	extra := h.extra()
	buf := make([]byte, h.serializedSize())
	b := writeBuf(buf)
	b.uint32(centralDirectorySignature)
	b.uint16(versionNeeded) // version made by
	b.uint16(versionNeeded) // version needed to extract
	b.uint16(generalPurposeFlags)
	b.uint16(h.method)
	b.uint16(fixedModTime)
	b.uint16(fixedModDate)
	b.uint32(h.crc32)
	b.uint32(uint32max) // compressed size: always ZIP64, see extra field
	b.uint32(uint32max) // uncompressed size: always ZIP64, see extra field
	b.uint16(uint16(len(h.name)))
	b.uint16(uint16(extra.serializedSize()))
	b.uint16(0)         // comment length, unused
	b.uint16(0)         // disk number start
	b.uint16(0)         // internal file attributes
	b.uint32(0)         // external file attributes
	b.uint32(uint32max) // relative offset of local header: always ZIP64
	copy(b, h.name)
	b = b[len(h.name):]
	copy(b, extra.serialize())
	return buf
}

// zip64EndOfCentralDirectoryRecord precedes the ZIP64 locator in the
// trailer written by Close.
type zip64EndOfCentralDirectoryRecord struct {
	entries                uint64
	centralDirectorySize   uint64
	centralDirectoryOffset uint64
}

func (zip64EndOfCentralDirectoryRecord) serializedSize() int { return 56 }

func (z zip64EndOfCentralDirectoryRecord) serialize() []byte {
	buf := make([]byte, 56)
	b := writeBuf(buf)
	b.uint32(zip64EndOfDirectorySignature)
	b.uint64(56 - 12) // record size minus signature and this length field
	b.uint16(versionNeeded)
	b.uint16(versionNeeded)
	b.uint32(0) // number of this disk
	b.uint32(0) // disk with the start of the central directory
	b.uint64(z.entries)
	b.uint64(z.entries)
	b.uint64(z.centralDirectorySize)
	b.uint64(z.centralDirectoryOffset)
	return buf
}

type zip64EndOfCentralDirectoryLocator struct {
	zip64EndOfCentralDirectoryOffset uint64
}

func (zip64EndOfCentralDirectoryLocator) serializedSize() int { return 20 }

func (l zip64EndOfCentralDirectoryLocator) serialize() []byte {
	buf := make([]byte, 20)
	b := writeBuf(buf)
	b.uint32(zip64EndOfDirectoryLocatorSig)
	b.uint32(0) // disk with the start of the zip64 end of central directory
	b.uint64(l.zip64EndOfCentralDirectoryOffset)
	b.uint32(1) // total number of disks: always one logical disk
	return buf
}

// endCentralDirectoryRecord is the final trailer record. Every field
// that could carry a real value instead carries the ZIP64 sentinel,
// since the authoritative values live in the locator/record pair that
// immediately precedes it.
type endCentralDirectoryRecord struct{}

func (endCentralDirectoryRecord) serializedSize() int { return 22 }

func (endCentralDirectoryRecord) serialize() []byte {
	buf := make([]byte, 22)
	b := writeBuf(buf)
	b.uint32(endOfCentralDirectorySignature)
	b.uint16(uint16max) // number of this disk
	b.uint16(uint16max) // disk with the start of the central directory
	b.uint16(uint16max) // entries on this disk
	b.uint16(uint16max) // total entries
	b.uint32(uint32max) // size of central directory
	b.uint32(uint32max) // offset of central directory
	b.uint16(0)         // comment length, no comment
	return buf
}
