package ednutil

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression of an input, detected from its first bytes.
type Compression string

const (
	None Compression = "none"
	Gzip Compression = "gzip"
	Zstd Compression = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// An Input is a named response body. Name is "-" for the standard input.
type Input struct {
	Name string
	Data []byte
	// Compression the body was read with.
	Compression Compression
}

// CanReadFromStandardInput returns whether there is data to be read
// in stdin.
func CanReadFromStandardInput() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}

// ReadFile reads a saved response body, decompressing it if needed.
func ReadFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadInput(path, f)
}

// ReadInput reads r entirely. Gzip and zstd streams are detected
// and decompressed.
func ReadInput(name string, r io.Reader) (*Input, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "reading %s", name)
	}

	in := Input{Name: name, Compression: None}
	var src io.Reader = br

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "reading gzip stream %s", name)
		}
		defer zr.Close()

		in.Compression = Gzip
		src = zr
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "reading zstd stream %s", name)
		}
		defer zr.Close()

		in.Compression = Zstd
		src = zr
	}

	in.Data, err = io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}

	return &in, nil
}
