package coding

import "testing"

func TestAppendBitsGrowsByLength(t *testing.T) {
	var b Bits
	for _, n := range []int{0, 1, 3, 8, 16, 31} {
		before := b.Len()
		b.AppendBits(0, n)
		if got := b.Len() - before; got != n {
			t.Errorf("AppendBits(_, %d): length grew by %d, want %d", n, got, n)
		}
	}
}

func TestAppendBitsPacking(t *testing.T) {
	var b Bits
	b.AppendBits(0b101, 3)
	b.AppendBits(0b11001, 5)
	got := b.PackedBytes()
	want := []byte{0b10111001}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("PackedBytes() = %08b, want %08b", got, want)
	}
}

func TestAppendBitsOutOfRangePanics(t *testing.T) {
	cases := []struct {
		value  uint32
		length int
	}{
		{1, -1},
		{1, 32},
		{1 << 3, 3}, // value >= 2^length
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("AppendBits(%d, %d) did not panic", c.value, c.length)
				}
			}()
			var b Bits
			b.AppendBits(c.value, c.length)
		}()
	}
}
