// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a growable sequence of individual bits, built up MSB-first.
// It underlies segment headers and payloads before they are packed
// into codeword bytes.
type Bits struct {
	b    []byte
	nbit int
}

// Len returns the number of bits appended to b so far.
func (b *Bits) Len() int { return b.nbit }

// AppendBits appends the length least-significant bits of value to b,
// in MSB-first order. 0 <= length <= 31 and value < 1<<length are
// required; violating either is a programmer error and AppendBits
// panics with ValueOutOfRange.
func (b *Bits) AppendBits(value uint32, length int) {
	if length < 0 || length > 31 || value>>uint(length) != 0 {
		panic(errf(ValueOutOfRange,
			"appendBits: value %d does not fit in %d bits", value, length))
	}
	for i := length - 1; i >= 0; i-- {
		bit := byte(value>>uint(i)) & 1
		if b.nbit&7 == 0 {
			b.b = append(b.b, 0)
		}
		b.b[len(b.b)-1] |= bit << uint(7-b.nbit&7)
		b.nbit++
	}
}

// AppendBytes appends each byte of p as 8 bits.
func (b *Bits) AppendBytes(p []byte) {
	for _, v := range p {
		b.AppendBits(uint32(v), 8)
	}
}

// PackedBytes returns the bits packed into bytes, MSB-first, zero
// padded in the final byte if Len is not a multiple of 8.
func (b *Bits) PackedBytes() []byte {
	return b.b
}

// BitAt returns bit i (0 or 1) of b.
func (b *Bits) BitAt(i int) uint32 {
	return uint32(b.b[i>>3]>>uint(7-i&7)) & 1
}

// AppendBuffer appends every bit of other to b, preserving order.
func (b *Bits) AppendBuffer(other *Bits) {
	for i := 0; i < other.nbit; i++ {
		b.AppendBits(other.BitAt(i), 1)
	}
}
