package storage

import (
	"io"
	"os"
	"path/filepath"
)

// Disk is the binary content area: a flat directory of files keyed by their
// stored name. Rows in the database never carry bytes, only the stored name.
type Disk struct {
	dir string
}

// NewDisk creates the content directory if needed and returns a store over it.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

// Path returns the absolute location of a stored name inside the content area.
// Any directory components in the name are stripped.
func (d *Disk) Path(name string) string {
	return filepath.Join(d.dir, filepath.Base(name))
}

// Save streams content into the area under the given stored name. The reader
// is consumed to EOF; a partial file left by a failed copy is removed.
func (d *Disk) Save(name string, r io.Reader) (int64, error) {
	path := d.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return n, nil
}

// Open returns a readable stream for a stored name; the caller closes it.
func (d *Disk) Open(name string) (*os.File, error) {
	return os.Open(d.Path(name))
}

// Remove deletes the content for a stored name.
func (d *Disk) Remove(name string) error {
	return os.Remove(d.Path(name))
}
