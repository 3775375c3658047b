// Package contenttype builds the [Content_Types].xml document (spec.md
// §4.8) and provides the static extension classification table.
//
// Grounded on original_source/src/prototype/ContentTypeWriter.cpp: the
// idempotent-unless-forced Default rule and the plain, always-appended
// Override rule are carried over unchanged.
package contenttype

import "github.com/appx-tools/msixpack/internal/xmldom"

const namespace = "http://schemas.openxmlformats.org/package/2006/content-types"

// Writer accumulates Default/Override elements.
type Writer struct {
	doc        *xmldom.Document
	root       *xmldom.Element
	extensions map[string]bool
}

// New creates an empty content-types document.
func New() *Writer {
	doc := xmldom.NewDocument(namespace, "Types")
	return &Writer{doc: doc, root: doc.Root(), extensions: make(map[string]bool)}
}

// AddDefault registers a default content type for extension. It is a
// no-op if extension has already been registered, unless force is set —
// used for the manifest, whose xml extension gets an MSIX-specific
// content type distinct from the generic default that payload .xml
// files would otherwise get.
func (w *Writer) AddDefault(mimeType, extension string, force bool) {
	alreadySeen := w.extensions[extension]
	w.extensions[extension] = true
	if alreadySeen && !force {
		return
	}
	el := w.doc.CreateElement("Default")
	el.AddAttribute("ContentType", mimeType)
	el.AddAttribute("Extension", extension)
	w.doc.AppendChild(w.root, el)
}

// AddOverride registers an explicit content type for one archive part,
// identified by its OPC part name (e.g. "/AppxBlockMap.xml").
func (w *Writer) AddOverride(mimeType, partName string) {
	el := w.doc.CreateElement("Override")
	el.AddAttribute("ContentType", mimeType)
	el.AddAttribute("PartName", partName)
	w.doc.AppendChild(w.root, el)
}

// Bytes serializes the accumulated document.
func (w *Writer) Bytes() []byte {
	return w.doc.Bytes()
}
