package container

import (
	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/internal/buf"
	"github.com/joshuapare/chunkkit/internal/mmfile"
)

// OpenOptions configures Open and OpenBytes.
type OpenOptions struct {
	// Profile forces a dialect. Nil auto-detects among registered profiles.
	Profile *Profile

	// Scan bounds the scan of untrusted input.
	Scan ScanOptions
}

// File is an opened, fully scanned container.
type File struct {
	// Tree is the scanned chunk tree.
	Tree *Tree

	// Data is the raw source. On unix it aliases a read-only mapping that
	// Close invalidates; treat payload slices accordingly.
	Data []byte

	// Path is the source path; empty for in-memory sources.
	Path string

	prof    *Profile
	cleanup func() error
}

// Open memory-maps the file at path, detects its dialect and scans it
// fully. A scan failure closes the mapping before returning.
func Open(path string, opts OpenOptions) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	f, err := newFile(data, path, cleanup, opts)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	return f, nil
}

// OpenBytes scans an in-memory source.
func OpenBytes(data []byte, opts OpenOptions) (*File, error) {
	return newFile(data, "", nil, opts)
}

func newFile(data []byte, path string, cleanup func() error, opts OpenOptions) (*File, error) {
	p := chunk.NewBytes(data)
	prof := opts.Profile
	if prof == nil {
		var err error
		prof, err = Detect(p)
		if err != nil {
			return nil, err
		}
	}
	tree, err := Scan(p, prof, opts.Scan)
	if err != nil {
		return nil, err
	}
	return &File{Tree: tree, Data: data, Path: path, prof: prof, cleanup: cleanup}, nil
}

// Profile returns the dialect the file was scanned with.
func (f *File) Profile() *Profile { return f.prof }

// Find is shorthand for f.Tree.Find.
func (f *File) Find(path string) (*Node, error) { return f.Tree.Find(path) }

// Payload returns n's payload bytes, aliasing the backing data. The slice
// is read-only and valid until Close.
func (f *File) Payload(n *Node) ([]byte, bool) {
	return buf.Slice(f.Data, int(n.PayloadOffset), int(n.Size))
}

// Close releases the mapping, if any. Payload slices are invalid after.
func (f *File) Close() error {
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	return err
}
