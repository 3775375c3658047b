package contenttype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddDefaultIsIdempotentPerExtension(t *testing.T) {
	w := New()
	w.AddDefault("image/png", "png", false)
	w.AddDefault("image/png", "png", false)
	got := string(w.Bytes())
	require.Equal(t, 1, strings.Count(got, `Extension="png"`))
}

func TestAddDefaultForceAddsDuplicate(t *testing.T) {
	w := New()
	w.AddDefault("text/xml", "xml", false)
	w.AddDefault("application/vnd.ms-appx.manifest+xml", "xml", true)
	got := string(w.Bytes())
	require.Equal(t, 2, strings.Count(got, `Extension="xml"`))
	require.Contains(t, got, "application/vnd.ms-appx.manifest+xml")
}

func TestAddOverride(t *testing.T) {
	w := New()
	w.AddOverride("application/vnd.ms-appx.blockmap+xml", "/AppxBlockMap.xml")
	got := string(w.Bytes())
	require.Contains(t, got, `<Override ContentType="application/vnd.ms-appx.blockmap+xml" PartName="/AppxBlockMap.xml"/>`)
}

func TestLookupFallsBackToOctetStream(t *testing.T) {
	e := Lookup("unknownext")
	require.Equal(t, DefaultEntry, e)
}

func TestLookupKnownExtensions(t *testing.T) {
	require.Equal(t, Entry{"image/png", None}, Lookup("png"))
	require.Equal(t, Entry{"text/xml", Normal}, Lookup("xml"))
}

