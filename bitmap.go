package bitstring

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap returns the positions of the visible digits that are 1.
func (b *BitString) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for i, d := range b.digits[:b.length] {
		if d == 1 {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// FromBitmap builds a BitString of the given length whose 1 digits are the
// members of rb. length doubles as capacity and must lie in [1, MaxCapacity].
func FromBitmap(rb *roaring.Bitmap, length int) (*BitString, error) {
	b, err := New(length)
	if err != nil {
		return nil, err
	}
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}

	if maxPos := int(rb.Maximum()); maxPos >= length {
		return nil, &IndexError{Index: maxPos, Length: length}
	}

	it := rb.Iterator()
	for it.HasNext() {
		b.digits[it.Next()] = 1
	}
	return b, nil
}
