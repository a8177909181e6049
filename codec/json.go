package codec

import gojson "github.com/goccy/go-json"

// JSON is a JSON codec backed by github.com/goccy/go-json.
// Indent, when non-empty, pretty-prints with that indent string.
type JSON struct {
	Indent string
}

// Marshal encodes the value to JSON.
func (j JSON) Marshal(v any) ([]byte, error) {
	if j.Indent != "" {
		return gojson.MarshalIndent(v, "", j.Indent)
	}
	return gojson.Marshal(v)
}

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }
