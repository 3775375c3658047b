// Package xmldom implements the minimal namespaced XML document builder
// that backs the block map and content-types writers (spec.md §9,
// "Polymorphic XML writer"). A Document owns a tree of Elements;
// CreateElement returns a non-owning handle that is only valid while its
// owning Document is alive, mirroring the original prototype's
// ProtoXmlFactory/ProtoXmlWriter/ProtoXmlElement trait triple.
package xmldom

import (
	"bytes"
	"encoding/xml"
)

// attr is a single attribute, kept in insertion order rather than in a
// map, since spec.md requires attributes to appear in the order callers
// added them.
type attr struct {
	name  string
	value string
}

// Element is a non-owning handle to a node in a Document's tree.
type Element struct {
	name     string
	attrs    []attr
	children []*Element
}

// AddAttribute appends an attribute to the element, in call order.
func (e *Element) AddAttribute(name, value string) {
	e.attrs = append(e.attrs, attr{name: name, value: value})
}

func (e *Element) write(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.name)
	for _, a := range e.attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.name)
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(a.value))
		buf.WriteByte('"')
	}
	if len(e.children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	for _, c := range e.children {
		c.write(buf)
	}
	buf.WriteString("</")
	buf.WriteString(e.name)
	buf.WriteByte('>')
}

// Document is a single-root XML tree with a declared default namespace.
type Document struct {
	root *Element
}

// NewDocument creates a document whose root element is named rootName
// and declares xmlns=namespace.
func NewDocument(namespace, rootName string) *Document {
	root := &Element{name: rootName}
	root.AddAttribute("xmlns", namespace)
	return &Document{root: root}
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement allocates a new element named name, owned by d but not
// yet attached to the tree; the caller attaches it with AppendChild.
func (d *Document) CreateElement(name string) *Element {
	return &Element{name: name}
}

// AppendChild attaches child as the next child of parent, in call order.
func (d *Document) AppendChild(parent, child *Element) {
	parent.children = append(parent.children, child)
}

// Bytes serializes the document: a UTF-8 XML declaration followed by the
// element tree, attributes in insertion order.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	d.root.write(&buf)
	return buf.Bytes()
}
