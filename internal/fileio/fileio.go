// Package fileio moves byte buffers between files and the codec. It owns
// path handling and I/O errors; the codec never sees a path.
package fileio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Codec is the part of *base64.Encoding the file helpers need.
type Codec interface {
	Encode(src []byte) []byte
	Decode(src []byte) ([]byte, error)
}

// Store reads and writes whole files on an afero filesystem
type Store struct {
	fs   afero.Fs
	perm os.FileMode
}

// NewStore returns a Store backed by fs, or by the OS filesystem when fs is nil
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, perm: 0o644}
}

// Fs returns the underlying filesystem
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Read returns the contents of path
func (s *Store) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Write replaces the contents of path with data
func (s *Store) Write(path string, data []byte) error {
	if err := afero.WriteFile(s.fs, path, data, s.perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// EncodeFile encodes the contents of src into dst and returns the number of
// bytes written.
func (s *Store) EncodeFile(c Codec, src, dst string) (int, error) {
	data, err := s.Read(src)
	if err != nil {
		return 0, err
	}

	out := c.Encode(data)
	if err := s.Write(dst, out); err != nil {
		return 0, err
	}
	return len(out), nil
}

// DecodeFile decodes the contents of src into dst and returns the number of
// bytes written. Trailing line breaks in src are ignored. Decode errors are
// returned unwrapped; nothing is written when decoding fails.
func (s *Store) DecodeFile(c Codec, src, dst string) (int, error) {
	data, err := s.Read(src)
	if err != nil {
		return 0, err
	}

	out, err := c.Decode(TrimLineEnd(data))
	if err != nil {
		return 0, err
	}
	if err := s.Write(dst, out); err != nil {
		return 0, err
	}
	return len(out), nil
}

// TrimLineEnd strips trailing CR and LF bytes, as left by editors and echo.
func TrimLineEnd(b []byte) []byte {
	return bytes.TrimRight(b, "\r\n")
}
