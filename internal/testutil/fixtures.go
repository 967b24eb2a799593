// internal/testutil/fixtures.go
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// FixtureTree is the tree used by the walker and migrator tests.
// Keys are slash separated paths relative to the tree root.
var FixtureTree = map[string]string{
	"a.js":                      "console.log('a');\n",
	"b.css":                     "body { margin: 0; }\n",
	"sub/c.js":                  "console.log('c');\n",
	"node_modules/lib/index.js": "module.exports = {};\n",
	"src/app.JS":                "export default 1;\n",
	"src/readme.md":             "# readme\n",
}

// WriteTree creates files under root. Keys are slash separated relative paths.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// NewTree creates a temporary directory populated with files and returns its path.
func NewTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, files)
	return root
}

// ListDir returns the sorted names of the entries in dir.
// A missing directory yields nil.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
