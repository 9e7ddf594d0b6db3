package gf256

import "testing"

func TestMulIdentities(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := Mul(uint8(x), 1); got != uint8(x) {
			t.Errorf("Mul(%d,1) = %d, want %d", x, got, x)
		}
		if got := Mul(uint8(x), 0); got != 0 {
			t.Errorf("Mul(%d,0) = %d, want 0", x, got)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 11 {
			if a, b := Mul(uint8(x), uint8(y)), Mul(uint8(y), uint8(x)); a != b {
				t.Fatalf("Mul(%d,%d)=%d != Mul(%d,%d)=%d", x, y, a, y, x, b)
			}
		}
	}
}

func TestMulAssociative(t *testing.T) {
	for x := 0; x < 256; x += 13 {
		for y := 0; y < 256; y += 17 {
			for z := 0; z < 256; z += 23 {
				a := Mul(Mul(uint8(x), uint8(y)), uint8(z))
				b := Mul(uint8(x), Mul(uint8(y), uint8(z)))
				if a != b {
					t.Fatalf("associativity fails for %d,%d,%d: %d != %d", x, y, z, a, b)
				}
			}
		}
	}
}

func TestDivisorLength(t *testing.T) {
	for d := 1; d <= 68; d++ {
		if got := len(Divisor(d)); got != d {
			t.Errorf("len(Divisor(%d)) = %d, want %d", d, got, d)
		}
	}
}

func TestDivisorPanicsOutOfRange(t *testing.T) {
	for _, d := range []int{0, -1, 256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Divisor(%d) did not panic", d)
				}
			}()
			Divisor(d)
		}()
	}
}

func TestRemainderRoundTrip(t *testing.T) {
	data := []uint8{0x40, 0x9, 0x11, 0xec, 0xc8, 0x11, 0xd3, 0x32}
	div := Divisor(10)
	rem := Remainder(data, div)
	if len(rem) != len(div) {
		t.Fatalf("len(rem) = %d, want %d", len(rem), len(div))
	}
	full := append(append([]uint8{}, data...), rem...)
	rem2 := Remainder(full, div)
	for i, b := range rem2 {
		if b != 0 {
			t.Errorf("Remainder(data||rem, div)[%d] = %d, want 0", i, b)
		}
	}
}
