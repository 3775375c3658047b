// Package blockmap builds the AppxBlockMap.xml document (spec.md §4.7).
//
// Grounded on original_source/src/prototype/BlockMapWriter.cpp: the root
// element, its HashMethod attribute, and the File/Block element shape
// and attribute rules (Size/LfhSize decimal, Block's Size attribute
// present only when nonzero) are carried over unchanged.
package blockmap

import (
	"strconv"
	"strings"

	"github.com/appx-tools/msixpack/internal/xmldom"
)

const namespace = "http://schemas.microsoft.com/appx/2010/blockmap"
const hashMethod = "http://www.w3.org/2001/04/xmlenc#sha256"

// Writer accumulates File/Block elements in the order they are added.
type Writer struct {
	doc  *xmldom.Document
	root *xmldom.Element
}

// New creates an empty block map document.
func New() *Writer {
	doc := xmldom.NewDocument(namespace, "BlockMap")
	doc.Root().AddAttribute("HashMethod", hashMethod)
	return &Writer{doc: doc, root: doc.Root()}
}

// File is a non-owning handle to a <File> element, used to attach its
// <Block> children in order.
type File struct {
	writer  *Writer
	element *xmldom.Element
}

// AddFile registers a payload file. name is stored with backslash
// separators regardless of how it was spelled by the caller (spec.md
// §4.7: "block map names use backslashes as separators"). lfhSize is the
// exact serialized byte length of the entry's local file header.
func (w *Writer) AddFile(name string, uncompressedSize uint64, lfhSize int) *File {
	windowsName := strings.ReplaceAll(name, "/", `\`)
	el := w.doc.CreateElement("File")
	el.AddAttribute("Name", windowsName)
	el.AddAttribute("Size", strconv.FormatUint(uncompressedSize, 10))
	el.AddAttribute("LfhSize", strconv.Itoa(lfhSize))
	w.doc.AppendChild(w.root, el)
	return &File{writer: w, element: el}
}

// AddBlock appends a <Block> child to f. storedSize is the compressed
// block size, or 0 to suppress the Size attribute entirely (used for
// blocks of an uncompressed file, where the reader defaults to 64 KiB or
// the file's remainder).
func (f *File) AddBlock(hashBase64 string, storedSize int) {
	block := f.writer.doc.CreateElement("Block")
	block.AddAttribute("Hash", hashBase64)
	if storedSize > 0 {
		block.AddAttribute("Size", strconv.Itoa(storedSize))
	}
	f.writer.doc.AppendChild(f.element, block)
}

// Bytes serializes the accumulated document.
func (w *Writer) Bytes() []byte {
	return w.doc.Bytes()
}
