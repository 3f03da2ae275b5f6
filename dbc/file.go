package dbc

import (
	"fmt"

	"github.com/joshuapare/dbckit/internal/mmfile"
)

// File is a table file loaded into memory. On unix the bytes are a
// read-only memory mapping and must not be used after Close; records
// decoded from them remain valid.
type File struct {
	path    string
	data    []byte
	release func() error
}

// Open loads the file at path.
func Open(path string) (*File, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("dbc: open %s: %w", path, err)
	}
	return &File{path: path, data: data, release: release}, nil
}

func (f *File) Path() string { return f.path }

// Bytes returns the raw table bytes.
func (f *File) Bytes() []byte { return f.data }

func (f *File) Size() int { return len(f.data) }

// Close releases the file's memory. It is safe to call more than once.
func (f *File) Close() error {
	if f == nil || f.release == nil {
		return nil
	}
	err := f.release()
	f.release = nil
	f.data = nil
	return err
}

// ReadTable opens path, decodes it against s with d and closes the file.
func (d *Decoder) ReadTable(path string, s *Schema) (*Table, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := d.DecodeTable(s, f.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadTable is Decoder.ReadTable with the default options.
func ReadTable(path string, s *Schema) (*Table, error) {
	return defaultDecoder.ReadTable(path, s)
}
