package classfile

import (
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// LoadFile memory-maps the .class file at path and parses it directly out of
// the mapping, avoiding a heap copy of the whole file. The returned
// io.Closer unmaps the file; callers should close it once they are done with
// the ClassFile (ParseClass copies out every string it needs, so the mapping
// may be unmapped immediately if the caller wishes — see SPEC_FULL.md §5).
func LoadFile(path string) (*ClassFile, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, err
	}

	cf, err := ParseClass(m, Options{})
	if err != nil {
		m.Unmap()
		return nil, nil, err
	}

	return cf, &mmapCloser{m}, nil
}

type mmapCloser struct {
	m mmap.MMap
}

func (c *mmapCloser) Close() error {
	return c.m.Unmap()
}
