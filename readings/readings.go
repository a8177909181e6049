package readings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dwhensley/subdiag/blobstore"
)

// Parse reads one reading per record from r.
func Parse(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var out []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("readings: %w", err)
		}
		if len(rec) == 0 {
			continue
		}
		if s := strings.TrimSpace(rec[0]); s != "" {
			out = append(out, s)
		}
	}
}

// ParseString is Parse over an in-memory report.
func ParseString(s string) ([]string, error) {
	return Parse(strings.NewReader(s))
}

// Decode decompresses r if needed and parses it.
func Decode(r io.Reader) ([]string, error) {
	rc, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}

// Load reads and parses the named report from store.
func Load(ctx context.Context, store blobstore.BlobStore, name string) ([]string, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("readings: open %s: %w", name, err)
	}
	defer blob.Close()

	rc, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("readings: read %s: %w", name, err)
	}
	defer rc.Close()

	lines, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lines, nil
}
