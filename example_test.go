package bitstring_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitstring"
	"github.com/hupe1980/bitstring/blobstore"
	"github.com/hupe1980/bitstring/codec"
)

// Example walks through construction, the operators and XML serialization.
func Example() {
	b1, err := bitstring.New(8)
	if err != nil {
		log.Fatal(err)
	}
	for _, i := range []int{0, 2, 4, 6} {
		if err := b1.Set(i, 1); err != nil {
			log.Fatal(err)
		}
	}
	b2 := bitstring.MustParse("10101010")

	d, _ := b1.Get(2)
	and, _ := b1.And(b2)
	or, _ := b1.Or(b2)
	xor, _ := b1.Xor(b2)
	left, _ := b1.ShiftLeft(2)
	right, _ := b1.ShiftRight(2)

	fmt.Println("b1:       ", b1)
	fmt.Println("b2:       ", b2)
	fmt.Println("cap b1:   ", b1.Cap())
	fmt.Println("b1[2]:    ", d)
	fmt.Println("AND:      ", and)
	fmt.Println("OR:       ", or)
	fmt.Println("XOR:      ", xor)
	fmt.Println("NOT b1:   ", b1.Not())
	fmt.Println("shift L 2:", left)
	fmt.Println("shift R 2:", right)

	if err := b1.SetLen(6); err != nil {
		log.Fatal(err)
	}
	fmt.Println("len 6:    ", b1)

	doc, err := b1.ToXML()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(doc)

	b3, err := bitstring.FromXML(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("loaded:   ", b3, b3.Cap())

	// Output:
	// b1:        10101010
	// b2:        10101010
	// cap b1:    8
	// b1[2]:     1
	// AND:       10101010
	// OR:        10101010
	// XOR:       00000000
	// NOT b1:    01010101
	// shift L 2: 10101000
	// shift R 2: 00101010
	// len 6:     101010
	// <BitString><size>8</size><count>6</count><bits>101010</bits></BitString>
	// loaded:    101010 8
}

// ExampleBitString_SetLen shows that shrinking hides digits and growing
// zeroes only the newly visible slots.
func ExampleBitString_SetLen() {
	b := bitstring.MustParse("1111")

	_ = b.SetLen(2)
	fmt.Println(b)
	_ = b.SetLen(4)
	fmt.Println(b)

	err := b.SetLen(5)
	fmt.Println(errors.Is(err, bitstring.ErrInvalidLength))
	// Output:
	// 11
	// 1100
	// true
}

func ExampleBitString_And() {
	a := bitstring.MustParse("1010")
	b := bitstring.MustParse("0101")

	and, _ := a.And(b)
	fmt.Println(and)

	_, err := a.And(bitstring.MustParse("10101"))
	fmt.Println(err)
	// Output:
	// 0000
	// length mismatch: 4 vs 5
}

func ExampleSave() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	b := bitstring.MustParse("0110")
	if err := bitstring.Save(ctx, store, "mask.json", b, bitstring.WithCodec(codec.JSON{})); err != nil {
		log.Fatal(err)
	}

	raw, _ := store.Get(ctx, "mask.json")
	fmt.Println(string(raw))

	loaded, err := bitstring.Load(ctx, store, "mask.json", bitstring.WithCodec(codec.JSON{}))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(loaded)
	// Output:
	// {"size":"4","count":"4","bits":"0110"}
	// 0110
}
