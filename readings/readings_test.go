package readings

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleReport() string {
	return strings.Join(testutil.ExampleReadings, "\n") + "\n"
}

func compress(t *testing.T, c Compression, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, c)
	require.NoError(t, err)
	_, err = w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Plain", "00100\n11110\n", []string{"00100", "11110"}},
		{"NoTrailingNewline", "00100\n11110", []string{"00100", "11110"}},
		{"CRLF", "00100\r\n11110\r\n", []string{"00100", "11110"}},
		{"BlankLines", "\n00100\n\n\n11110\n", []string{"00100", "11110"}},
		{"Whitespace", "  00100 \n\t11110\n", []string{"00100", "11110"}},
		{"FirstFieldOnly", "00100,ignored\n11110,x,y\n", []string{"00100", "11110"}},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_BadQuote(t *testing.T) {
	_, err := ParseString("0\"01\n")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, None, Detect([]byte("0010")))
	assert.Equal(t, None, Detect(nil))
	assert.Equal(t, Gzip, Detect([]byte{0x1f, 0x8b, 0x08}))
	assert.Equal(t, Zstd, Detect([]byte{0x28, 0xb5, 0x2f, 0xfd}))
	assert.Equal(t, LZ4, Detect([]byte{0x04, 0x22, 0x4d, 0x18}))
}

func TestDecode_Compressed(t *testing.T) {
	for _, c := range []Compression{None, Gzip, Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			data := compress(t, c, exampleReport())
			if c != None {
				assert.Equal(t, c, Detect(data))
			}

			got, err := Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, testutil.ExampleReadings, got)
		})
	}
}

func TestDecode_ShortInput(t *testing.T) {
	got, err := Decode(strings.NewReader("1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, got)
}

func TestParseCompression(t *testing.T) {
	for _, s := range []string{"none", "gzip", "zstd", "lz4"} {
		c, err := ParseCompression(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
	_, err := ParseCompression("bzip2")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "day3.txt.zst", compress(t, Zstd, exampleReport())))

	got, err := Load(ctx, store, "day3.txt.zst")
	require.NoError(t, err)
	assert.Equal(t, testutil.ExampleReadings, got)

	_, err = Load(ctx, store, "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
