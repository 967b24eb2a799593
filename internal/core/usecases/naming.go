// internal/core/usecases/naming.go
package usecases

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"flatsource/internal/platform/errors"
)

// maxNameAttempts bounds the _N suffix search for one file.
const maxNameAttempts = 100000

// destinationNamer picks collision free names inside the flat destination:
// base+ext first, then base_1+ext, base_2+ext and so on.
type destinationNamer struct {
	dir      string
	reserved map[string]struct{}
}

func newDestinationNamer(dir string) *destinationNamer {
	return &destinationNamer{
		dir:      dir,
		reserved: make(map[string]struct{}),
	}
}

// Dir returns the destination directory.
func (d *destinationNamer) Dir() string {
	return d.dir
}

// Plan returns the name a live run would use without touching the disk.
// Names handed out earlier in the run and files already present in the
// destination both count as taken.
func (d *destinationNamer) Plan(base, ext string) string {
	for n := 0; ; n++ {
		name := suffixedName(base, ext, n)
		if _, taken := d.reserved[name]; taken {
			continue
		}
		if _, err := os.Lstat(filepath.Join(d.dir, name)); err == nil {
			continue
		}
		d.reserved[name] = struct{}{}
		return name
	}
}

// Create claims the first free name with O_EXCL and returns the open file.
// The caller owns the file.
func (d *destinationNamer) Create(base, ext string) (*os.File, string, error) {
	for n := 0; n < maxNameAttempts; n++ {
		name := suffixedName(base, ext, n)
		f, err := os.OpenFile(filepath.Join(d.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			d.reserved[name] = struct{}{}
			return f, name, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return nil, name, err
	}
	return nil, base + ext, errors.Errorf("no free name for %s%s after %d attempts", base, ext, maxNameAttempts)
}

func suffixedName(base, ext string, n int) string {
	if n == 0 {
		return base + ext
	}
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}
