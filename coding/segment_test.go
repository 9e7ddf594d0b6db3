package coding

import "testing"

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	if _, err := MakeNumeric("12a45"); err == nil {
		t.Fatal("MakeNumeric(\"12a45\") succeeded, want InvalidArgument error")
	}
}

func TestMakeNumericModeIndicator(t *testing.T) {
	seg, err := MakeNumeric("12345")
	if err != nil {
		t.Fatal(err)
	}
	if seg.Mode.indicator != 0b0001 {
		t.Errorf("mode indicator = %04b, want 0001", seg.Mode.indicator)
	}
	if seg.NumChars != 5 {
		t.Errorf("NumChars = %d, want 5", seg.NumChars)
	}
}

func TestMakeAlphanumericRejects(t *testing.T) {
	if _, err := MakeAlphanumeric("hello"); err == nil {
		t.Fatal("MakeAlphanumeric(\"hello\") (lowercase) succeeded, want error")
	}
	if _, err := MakeAlphanumeric("HELLO"); err != nil {
		t.Fatalf("MakeAlphanumeric(\"HELLO\") failed: %v", err)
	}
}

func TestMakeSegmentsChoosesMode(t *testing.T) {
	cases := []struct {
		text string
		mode Mode
	}{
		{"12345", ModeNumeric},
		{"HELLO WORLD", ModeAlphanumeric},
		{"abc", ModeByte},
	}
	for _, c := range cases {
		segs := MakeSegments(c.text)
		if len(segs) != 1 {
			t.Fatalf("MakeSegments(%q): got %d segments, want 1", c.text, len(segs))
		}
		if segs[0].Mode != c.mode {
			t.Errorf("MakeSegments(%q): mode = %v, want %v", c.text, segs[0].Mode, c.mode)
		}
	}
}

func TestMakeSegmentsEmpty(t *testing.T) {
	if segs := MakeSegments(""); segs != nil {
		t.Errorf("MakeSegments(\"\") = %v, want nil", segs)
	}
}

func TestMakeBytesUsesUTF8(t *testing.T) {
	seg := MakeBytes([]byte("abc"))
	if seg.NumChars != 3 {
		t.Errorf("NumChars = %d, want 3", seg.NumChars)
	}
	want := []byte{0x61, 0x62, 0x63}
	got := seg.bits.PackedBytes()
	if len(got) != len(want) {
		t.Fatalf("payload = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("payload[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestTotalBitsOverflow(t *testing.T) {
	seg, err := MakeNumeric("0")
	if err != nil {
		t.Fatal(err)
	}
	seg.NumChars = 1 << 10 // exceeds the 10-bit numeric count field of version 1
	if _, ok := totalBits([]Segment{seg}, 1); ok {
		t.Error("totalBits did not report overflow for an oversized NumChars")
	}
}

func TestMakeEciWireForms(t *testing.T) {
	cases := []struct {
		val     int
		nbits   int
		wantErr bool
	}{
		{0, 8, false},
		{127, 8, false},
		{128, 16, false},
		{16383, 16, false},
		{16384, 24, false},
		{999999, 24, false},
		{1000000, 0, true},
		{-1, 0, true},
	}
	for _, c := range cases {
		seg, err := MakeEci(c.val)
		if c.wantErr {
			if err == nil {
				t.Errorf("MakeEci(%d) succeeded, want error", c.val)
			}
			continue
		}
		if err != nil {
			t.Fatalf("MakeEci(%d): %v", c.val, err)
		}
		if got := seg.bits.nbit; got != c.nbits {
			t.Errorf("MakeEci(%d): %d bits, want %d", c.val, got, c.nbits)
		}
	}
}
