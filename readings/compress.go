package readings

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a report encoding.
type Compression uint8

const (
	// None is plain text.
	None Compression = iota
	// Gzip is an RFC 1952 stream.
	Gzip
	// Zstd is a Zstandard frame.
	Zstd
	// LZ4 is an LZ4 frame.
	LZ4
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("readings: unknown compression %q", s)
	}
}

// Detect identifies the encoding from the first bytes of a report.
func Detect(prefix []byte) Compression {
	switch {
	case bytes.HasPrefix(prefix, magicZstd):
		return Zstd
	case bytes.HasPrefix(prefix, magicLZ4):
		return LZ4
	case bytes.HasPrefix(prefix, magicGzip):
		return Gzip
	default:
		return None
	}
}

// NewReader returns a reader yielding the decompressed report.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	// A short report simply yields a short peek.
	prefix, err := br.Peek(len(magicZstd))
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch Detect(prefix) {
	case Zstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("readings: zstd: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), nil
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("readings: gzip: %w", err)
		}
		return zr, nil
	default:
		return io.NopCloser(br), nil
	}
}

// NewWriter compresses everything written to the returned writer into w.
// Close flushes the frame; it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("readings: unknown compression %s", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
