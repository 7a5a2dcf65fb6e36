package internal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// BaseName returns the last path-separator-delimited element of path.
func BaseName(path string) string {
	seps := "/"
	if os.PathSeparator != '/' {
		seps += string(os.PathSeparator)
	}
	if i := strings.LastIndexAny(path, seps); i >= 0 {
		return path[i+1:]
	}
	return path
}

type mappedFile struct {
	*bytes.Reader
	file *os.File
	mm   mmap.MMap
}

func (m *mappedFile) Close() error {
	var err error
	if m.mm != nil {
		err = m.mm.Unmap()
	}
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenSource opens path for sequential reading. With useMmap the file is
// mapped read-only and served from memory.
func OpenSource(path string, useMmap bool) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	if !useMmap {
		return file, nil
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file[%s]: %w", path, err)
	}
	if info.Size() == 0 {
		// zero-length mappings are rejected by the kernel
		return &mappedFile{Reader: bytes.NewReader(nil), file: file}, nil
	}

	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("unable to mmap the file[%s]: %w", path, err)
	}
	logger.Debugf("mapped %s (%d bytes)", path, len(mm))
	return &mappedFile{Reader: bytes.NewReader(mm), file: file, mm: mm}, nil
}
