package xmldom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentAttributeOrderPreserved(t *testing.T) {
	doc := NewDocument("urn:example", "Root")
	child := doc.CreateElement("Child")
	child.AddAttribute("Z", "1")
	child.AddAttribute("A", "2")
	doc.AppendChild(doc.Root(), child)

	got := string(doc.Bytes())
	require.Contains(t, got, `<?xml version="1.0" encoding="UTF-8"?>`)
	require.Contains(t, got, `<Root xmlns="urn:example">`)
	require.Contains(t, got, `<Child Z="1" A="2"/>`)
}

func TestDocumentEscapesAttributeValues(t *testing.T) {
	doc := NewDocument("urn:example", "Root")
	doc.Root().AddAttribute("Name", `a & b < "c">`)
	got := string(doc.Bytes())
	require.Contains(t, got, "&amp;")
	require.Contains(t, got, "&lt;")
}

func TestDocumentChildlessElementIsSelfClosing(t *testing.T) {
	doc := NewDocument("urn:example", "Root")
	got := string(doc.Bytes())
	require.Contains(t, got, `<Root xmlns="urn:example"/>`)
}
