package bitstring

import (
	"fmt"
	"strings"
)

// MaxCapacity is the largest capacity a BitString can be constructed with.
const MaxCapacity = 100

// BitString is a fixed-capacity sequence of binary digits with a logical
// length that may be smaller than its capacity.
//
// Only the first Len() digits (the visible window) take part in rendering,
// comparison and the bitwise operators. Slots beyond the window keep whatever
// they last held until a later SetLen growth zeroes them.
//
// A BitString is not safe for concurrent mutation.
type BitString struct {
	// digits always has len == capacity; every element is 0 or 1.
	digits []uint8
	length int
}

// New returns an all-zero BitString whose capacity and length are both capacity.
func New(capacity int) (*BitString, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidCapacity, capacity, MaxCapacity)
	}

	return &BitString{
		digits: make([]uint8, capacity),
		length: capacity,
	}, nil
}

// Parse builds a BitString from a literal such as "10101010".
// Capacity and length both equal len(literal).
func Parse(literal string) (*BitString, error) {
	if len(literal) == 0 || len(literal) > MaxCapacity {
		return nil, fmt.Errorf("%w: length %d not in [1, %d]", ErrInvalidLiteral, len(literal), MaxCapacity)
	}

	digits, err := parseDigits(literal)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, literal)
	}

	return &BitString{
		digits: digits,
		length: len(digits),
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(literal string) *BitString {
	b, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return b
}

// fromParts builds a result value. Callers guarantee capacity >= len(visible)
// and that visible holds only 0 and 1. Padding beyond the window is zero.
func fromParts(capacity int, visible []uint8) *BitString {
	digits := make([]uint8, capacity)
	copy(digits, visible)
	return &BitString{
		digits: digits,
		length: len(visible),
	}
}

func parseDigits(s string) ([]uint8, error) {
	digits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			digits[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, s[i], i)
		}
	}
	return digits, nil
}

// String renders the visible window as '0' and '1' characters.
func (b *BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for _, d := range b.digits[:b.length] {
		sb.WriteByte('0' + d)
	}
	return sb.String()
}

// Cap returns the fixed capacity.
func (b *BitString) Cap() int { return len(b.digits) }

// Len returns the current logical length.
func (b *BitString) Len() int { return b.length }

// Get returns the digit at index i.
func (b *BitString) Get(i int) (int, error) {
	if i < 0 || i >= b.length {
		return 0, &IndexError{Index: i, Length: b.length}
	}
	return int(b.digits[i]), nil
}

// Set assigns v (0 or 1) to the digit at index i.
func (b *BitString) Set(i, v int) error {
	if i < 0 || i >= b.length {
		return &IndexError{Index: i, Length: b.length}
	}
	if v != 0 && v != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, v)
	}
	b.digits[i] = uint8(v)
	return nil
}

// SetLen changes the logical length.
//
// Growing zeroes only the slots in [Len(), n). Shrinking leaves the hidden
// slots untouched, so a later growth that stops short of the old length
// exposes them again unchanged.
func (b *BitString) SetLen(n int) error {
	if n < 0 || n > len(b.digits) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidLength, n, len(b.digits))
	}
	if n > b.length {
		clear(b.digits[b.length:n])
	}
	b.length = n
	return nil
}

// Equal reports whether both values have the same visible digits.
// Capacity and hidden slots are ignored.
func (b *BitString) Equal(other *BitString) bool {
	if other == nil || b.length != other.length {
		return false
	}
	for i := 0; i < b.length; i++ {
		if b.digits[i] != other.digits[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, hidden slots included.
func (b *BitString) Clone() *BitString {
	digits := make([]uint8, len(b.digits))
	copy(digits, b.digits)
	return &BitString{
		digits: digits,
		length: b.length,
	}
}

// OnesCount returns the number of visible digits set to 1.
func (b *BitString) OnesCount() int {
	var n int
	for _, d := range b.digits[:b.length] {
		n += int(d)
	}
	return n
}

// And returns the elementwise conjunction of b and other.
func (b *BitString) And(other *BitString) (*BitString, error) {
	return b.combine(other, func(x, y uint8) uint8 { return x & y })
}

// Or returns the elementwise disjunction of b and other.
func (b *BitString) Or(other *BitString) (*BitString, error) {
	return b.combine(other, func(x, y uint8) uint8 { return x | y })
}

// Xor returns the elementwise exclusive or of b and other.
func (b *BitString) Xor(other *BitString) (*BitString, error) {
	return b.combine(other, func(x, y uint8) uint8 { return x ^ y })
}

// combine applies op over the shared visible window. The result's capacity is
// the shared length, not either operand's capacity.
func (b *BitString) combine(other *BitString, op func(x, y uint8) uint8) (*BitString, error) {
	if other == nil {
		return nil, &LengthMismatchError{Left: b.length, Right: -1}
	}
	if b.length != other.length {
		return nil, &LengthMismatchError{Left: b.length, Right: other.length}
	}

	out := make([]uint8, b.length)
	for i := range out {
		out[i] = op(b.digits[i], other.digits[i])
	}
	return fromParts(b.length, out), nil
}

// Not returns the complement of the visible window, keeping capacity and length.
func (b *BitString) Not() *BitString {
	out := make([]uint8, b.length)
	for i := range out {
		out[i] = 1 - b.digits[i]
	}
	return fromParts(len(b.digits), out)
}

// ShiftLeft moves the visible digits n places towards index 0, filling the
// tail with zeros. Capacity and length are preserved.
func (b *BitString) ShiftLeft(n int) (*BitString, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShiftAmount, n)
	}

	out := make([]uint8, b.length)
	if n < b.length {
		copy(out, b.digits[n:b.length])
	}
	return fromParts(len(b.digits), out), nil
}

// ShiftRight moves the visible digits n places away from index 0, filling the
// head with zeros. Capacity and length are preserved.
func (b *BitString) ShiftRight(n int) (*BitString, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShiftAmount, n)
	}

	out := make([]uint8, b.length)
	if n < b.length {
		copy(out[n:], b.digits[:b.length-n])
	}
	return fromParts(len(b.digits), out), nil
}
