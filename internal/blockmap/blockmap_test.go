package blockmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddFileUsesBackslashSeparators(t *testing.T) {
	w := New()
	w.AddFile("images/hello world.png", 100, 66)
	got := string(w.Bytes())
	require.Contains(t, got, `Name="images\hello world.png"`)
	require.Contains(t, got, `Size="100"`)
	require.Contains(t, got, `LfhSize="66"`)
}

func TestAddBlockOmitsSizeWhenZero(t *testing.T) {
	w := New()
	f := w.AddFile("a.png", 5, 10)
	f.AddBlock("hash1", 0)
	got := string(w.Bytes())
	require.Contains(t, got, `<Block Hash="hash1"/>`)
}

func TestAddBlockIncludesSizeWhenCompressed(t *testing.T) {
	w := New()
	f := w.AddFile("b.txt", 5, 10)
	f.AddBlock("hash2", 42)
	got := string(w.Bytes())
	require.Contains(t, got, `<Block Hash="hash2" Size="42"/>`)
}

func TestRootHasHashMethod(t *testing.T) {
	w := New()
	got := string(w.Bytes())
	require.Contains(t, got, `HashMethod="http://www.w3.org/2001/04/xmlenc#sha256"`)
	require.Contains(t, got, `<BlockMap xmlns="http://schemas.microsoft.com/appx/2010/blockmap"`)
}

func TestFilesAndBlocksAppearInAddedOrder(t *testing.T) {
	w := New()
	first := w.AddFile("a.txt", 1, 1)
	first.AddBlock("h1", 0)
	second := w.AddFile("b.txt", 1, 1)
	second.AddBlock("h2", 0)
	got := string(w.Bytes())
	require.Less(t, strings.Index(got, "a.txt"), strings.Index(got, "b.txt"))
	require.Less(t, strings.Index(got, "h1"), strings.Index(got, "h2"))
}
