package codec

import "encoding/xml"

// XML is the standard-library XML codec and the library default.
//
// Indent, when non-empty, pretty-prints one element per line. Decoding
// accepts both forms.
type XML struct {
	Indent string
}

// Marshal encodes the value to XML without a declaration header.
func (c XML) Marshal(v any) ([]byte, error) {
	if c.Indent != "" {
		return xml.MarshalIndent(v, "", c.Indent)
	}
	return xml.Marshal(v)
}

// Unmarshal decodes the XML data into v.
func (XML) Unmarshal(data []byte, v any) error { return xml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("xml").
func (XML) Name() string { return "xml" }

// Default is the codec used when none is configured.
var Default Codec = XML{}
