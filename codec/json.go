package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Snapshot fields keep their textual form, so a bit string encodes as
// {"size":"8","count":"8","bits":"10101010"}.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
