// Package payloadwalk enumerates the regular files under a root
// directory in modification-time order (spec.md §4.10).
//
// Generalized from martin-sucha-zipserve/example_test.go's
// templateFromDir, which walks a directory with filepath.Walk and
// derives each entry's relative path with filepath.Rel. That helper
// builds ZIP entries directly; this package stops at collecting
// (relative path, mtime) pairs so the packager can classify and read
// each file itself.
package payloadwalk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// File is one regular file found under the root, with its modification
// time and its path relative to the root using the host separator.
type File struct {
	RelativePath string
	ModTime      int64 // Unix seconds
}

// List enumerates all regular files under root and returns them ordered
// by modification time. Entries with equal modification times are
// ordered lexicographically by relative path — an explicit, documented
// tie-break for the otherwise-unspecified ordering of spec.md §4.10's
// mtime-keyed multimap (see DESIGN.md, "Open Question decisions").
func List(root string) ([]File, error) {
	var files []File
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("payloadwalk: relative path for %q: %w", path, err)
		}
		files = append(files, File{RelativePath: rel, ModTime: info.ModTime().Unix()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("payloadwalk: walk %q: %w", root, err)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ModTime != files[j].ModTime {
			return files[i].ModTime < files[j].ModTime
		}
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}
