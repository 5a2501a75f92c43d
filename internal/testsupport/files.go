// Package testsupport provides shared fixtures for manila tests: temp-dir
// backed configs and directory-tree builders.
package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteTree materializes a directory tree under root. Keys are
// slash-separated relative paths; a trailing slash creates an empty
// directory, any other key creates a file with the given contents.
func WriteTree(t testing.TB, root string, tree map[string]string) {
	t.Helper()

	paths := make([]string, 0, len(tree))
	for rel := range tree {
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	for _, rel := range paths {
		target := filepath.Join(root, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(target, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", target, err)
		}
		if err := os.WriteFile(target, []byte(tree[rel]), 0o644); err != nil {
			t.Fatalf("write %s: %v", target, err)
		}
	}
}

// ReadTree returns the relative paths of all entries under root, sorted.
// Directories carry a trailing slash so layouts compare exactly.
func ReadTree(t testing.TB, root string) []string {
	t.Helper()

	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	sort.Strings(paths)
	return paths
}
