// Package codec encodes analysis reports.
//
// Three formats are built in: JSON (goccy/go-json), CBOR with core deterministic
// encoding (fxamacker/cbor) and YAML (gopkg.in/yaml.v3). Codecs are selected by
// their stable name so CLI flags and config files can refer to them.
package codec

import (
	"fmt"
	"sort"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = JSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "cbor":
		return CBOR{}, true
	case "yaml", "yml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	names := []string{"cbor", "json", "yaml"}
	sort.Strings(names)
	return names
}

// MustMarshal is a helper for tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
