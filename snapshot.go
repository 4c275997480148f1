package bitstring

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/bitstring/codec"
)

// Snapshot is the serialized form of a BitString: three text fields in the
// fixed order size, count, bits.
//
// As XML it reads
//
//	<BitString><size>8</size><count>6</count><bits>101010</bits></BitString>
type Snapshot struct {
	XMLName xml.Name `xml:"BitString" json:"-"`
	Size    string   `xml:"size" json:"size"`
	Count   string   `xml:"count" json:"count"`
	Bits    string   `xml:"bits" json:"bits"`
}

// element is Snapshot without a fixed root name, used when a BitString is
// nested under a caller-chosen element.
type element struct {
	Size  string `xml:"size"`
	Count string `xml:"count"`
	Bits  string `xml:"bits"`
}

// Snapshot captures capacity, length and the visible digits.
func (b *BitString) Snapshot() Snapshot {
	return Snapshot{
		Size:  strconv.Itoa(len(b.digits)),
		Count: strconv.Itoa(b.length),
		Bits:  b.String(),
	}
}

// FromSnapshot validates s and builds a fresh BitString from it.
// Slots beyond count are zero-filled up to size.
func FromSnapshot(s Snapshot) (*BitString, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s.Size))
	if err != nil {
		return nil, fmt.Errorf("%w: size %q", ErrMalformedSnapshot, s.Size)
	}
	count, err := strconv.Atoi(strings.TrimSpace(s.Count))
	if err != nil {
		return nil, fmt.Errorf("%w: count %q", ErrMalformedSnapshot, s.Count)
	}

	bits := strings.TrimSpace(s.Bits)
	digits, err := parseDigits(bits)
	if err != nil {
		return nil, err
	}
	if len(digits) != count {
		return nil, fmt.Errorf("%w: count %d, bits %d", ErrLengthMismatch, count, len(digits))
	}
	if size < count {
		return nil, fmt.Errorf("%w: size %d smaller than count %d", ErrInvalidCapacity, size, count)
	}
	if size > MaxCapacity {
		return nil, fmt.Errorf("%w: size %d exceeds %d", ErrInvalidCapacity, size, MaxCapacity)
	}

	return fromParts(size, digits), nil
}

// Encode serializes b with the configured codec (XML unless WithCodec is given).
func Encode(b *BitString, optFns ...Option) ([]byte, error) {
	opts := applyOptions(optFns)
	return opts.codec.Marshal(b.Snapshot())
}

// Decode parses data produced by Encode with the same codec.
func Decode(data []byte, optFns ...Option) (*BitString, error) {
	opts := applyOptions(optFns)

	var s Snapshot
	if err := opts.codec.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSnapshot, opts.codec.Name(), err)
	}
	return FromSnapshot(s)
}

// ToXML renders b as a single-line XML document.
func (b *BitString) ToXML() (string, error) {
	out, err := Encode(b, WithCodec(codec.XML{}))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FromXML parses a document produced by ToXML.
func FromXML(doc string) (*BitString, error) {
	return Decode([]byte(doc), WithCodec(codec.XML{}))
}

// MarshalXML implements xml.Marshaler. The element name follows start, so a
// BitString field tagged `xml:"mask"` encodes as <mask>...</mask>.
func (b *BitString) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	s := b.Snapshot()
	return e.EncodeElement(element{Size: s.Size, Count: s.Count, Bits: s.Bits}, start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (b *BitString) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var el element
	if err := d.DecodeElement(&el, &start); err != nil {
		return err
	}
	restored, err := FromSnapshot(Snapshot{Size: el.Size, Count: el.Count, Bits: el.Bits})
	if err != nil {
		return err
	}
	*b = *restored
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b *BitString) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BitString) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	restored, err := FromSnapshot(s)
	if err != nil {
		return err
	}
	*b = *restored
	return nil
}
