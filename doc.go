// Package bitstring provides a fixed-capacity bit string value type.
//
// A BitString owns up to MaxCapacity binary digits. Its capacity is fixed at
// construction; its length (the visible window) can be moved anywhere in
// [0, capacity] with SetLen.
//
// # Quick Start
//
//	b, _ := bitstring.New(8)          // "00000000"
//	_ = b.Set(0, 1)                   // "10000000"
//	c := bitstring.MustParse("10101010")
//
//	and, _ := b.And(c)                // operands must share a length
//	inv := c.Not()
//	left, _ := c.ShiftLeft(2)         // "10101000"
//
// # Length vs Capacity
//
// Shrinking the length hides digits without clearing them. Growing it zeroes
// only the slots that become visible again:
//
//	b := bitstring.MustParse("1111")
//	_ = b.SetLen(2)                   // "11"
//	_ = b.SetLen(4)                   // "1100"
//
// Binary operators return a value whose capacity equals the shared length.
// Not and the shifts keep the receiver's capacity and length.
//
// # Serialization
//
// A snapshot records size (capacity), count (length) and bits (the visible
// digits). XML is the default encoding:
//
//	doc, _ := b.ToXML()
//	// <BitString><size>8</size><count>6</count><bits>101010</bits></BitString>
//	restored, _ := bitstring.FromXML(doc)
//
// Other codecs are selected with WithCodec, and Save/Load write a single
// snapshot to any blobstore.Store:
//
//	store := blobstore.NewLocalStore("./data")
//	err := bitstring.Save(ctx, store, "mask.json", b, bitstring.WithCodec(codec.JSON{}))
//
// # Errors
//
// Every failure wraps one of the Err* sentinels and is reported before any
// mutation happens. Use errors.Is to classify them.
package bitstring
