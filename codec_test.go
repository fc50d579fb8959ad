package px

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// mustBuffer builds a buffer from explicit rows for tests.
func mustBuffer(t *testing.T, rows [][]uint8) *Buffer {
	t.Helper()
	b, err := NewBuffer(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	for y, row := range rows {
		for x, v := range row {
			b.Set(x, y, v)
		}
	}
	return b
}

func TestEncodePlain(t *testing.T) {
	b := mustBuffer(t, [][]uint8{
		{1, 0},
		{0, 0},
	})
	// Index 1 maps to alphabet position 1, 'B'; index 0 to 'A'.
	if got, want := Encode(b, false), "2x2:BAAA"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestDecodePlain(t *testing.T) {
	b, err := Decode("2x2:BAAA")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := [][]uint8{{1, 0}, {0, 0}}
	for y, row := range want {
		for x, v := range row {
			if b.At(x, y) != v {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, b.At(x, y), v)
			}
		}
	}
}

// TestEncodeRLE verifies the smart-compress choice and the run format:
// a 5x2 all-transparent buffer is one 10-run, and the RLE form wins.
func TestEncodeRLE(t *testing.T) {
	b, _ := NewBuffer(5, 2)
	if got, want := Encode(b, true), "5x2:RLE:10A"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
	// Without the compress flag the plain form must come back.
	if got, want := Encode(b, false), "5x2:AAAAAAAAAA"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

// TestEncodeRLE_LongRun checks the split law at the 99 boundary: 150 equal
// cells encode as a 99-run followed by a 51-run.
func TestEncodeRLE_LongRun(t *testing.T) {
	b, _ := NewBuffer(10, 15)
	if got, want := Encode(b, true), "10x15:RLE:99A51A"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

// TestEncodeRLE_NotBeneficial: alternating cells make RLE strictly longer,
// so compression must not be applied even when requested.
func TestEncodeRLE_NotBeneficial(t *testing.T) {
	b, _ := NewBuffer(4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			b.Set(x, y, uint8((x+y)%2))
		}
	}
	got := Encode(b, true)
	if strings.Contains(got, "RLE:") {
		t.Errorf("Encode = %q, want uncompressed form", got)
	}
}

// TestEncode_CompressNeverLonger is the smart-compress monotonicity
// property: the compressed call never yields a longer string.
func TestEncode_CompressNeverLonger(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		b := randomBuffer(rng)
		plain := Encode(b, false)
		smart := Encode(b, true)
		if len(smart) > len(plain) {
			t.Fatalf("compressed form longer: %d > %d", len(smart), len(plain))
		}
	}
}

func randomBuffer(rng *rand.Rand) *Buffer {
	w := MinSize + rng.Intn(30)
	h := MinSize + rng.Intn(30)
	b, _ := NewBuffer(w, h)
	// A mix of flat regions and noise exercises both codec branches.
	if rng.Intn(2) == 0 {
		b.Fill(uint8(rng.Intn(PaletteSize)))
	}
	for i := 0; i < rng.Intn(w*h); i++ {
		b.Set(rng.Intn(w), rng.Intn(h), uint8(rng.Intn(PaletteSize)))
	}
	return b
}

// TestRoundTrip is the codec round-trip contract over random buffers, for
// both compress flags.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		b := randomBuffer(rng)
		for _, compress := range []bool{false, true} {
			got, err := Decode(Encode(b, compress))
			if err != nil {
				t.Fatalf("Decode(Encode(b, %v)): %v", compress, err)
			}
			if !got.Equal(b) {
				t.Fatalf("round trip (compress=%v) lost data for %dx%d buffer",
					compress, b.Width(), b.Height())
			}
		}
	}
}

// TestRoundTrip_LongRuns covers runs crossing the 99 record boundary.
func TestRoundTrip_LongRuns(t *testing.T) {
	for _, n := range []int{98, 99, 100, 128} {
		b, err := NewBuffer(n, n)
		if err != nil {
			t.Fatalf("NewBuffer(%d): %v", n, err)
		}
		b.Fill(3)
		got, err := Decode(Encode(b, true))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !got.Equal(b) {
			t.Errorf("round trip lost data at %dx%d", n, n)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	var (
		dimErr  *DimensionError
		lenErr  *LengthMismatchError
		charErr *InvalidCharacterError
		runErr  *MalformedRunError
	)
	tests := []struct {
		name string
		in   string
		as   any
	}{
		{"no colon", "2x2BAAA", &dimErr},
		{"no x in header", "22:BAAA", &dimErr},
		{"non-numeric width", "ax2:BAAA", &dimErr},
		{"non-numeric height", "2xb:BAAA", &dimErr},
		{"width too small", "1x4:AAAA", &dimErr},
		{"width too large", "129x2:AA", &dimErr},
		{"height too small", "4x1:AAAA", &dimErr},
		{"data too short", "2x2:AAA", &lenErr},
		{"data too long", "2x2:AAAAA", &lenErr},
		{"invalid character", "2x2:AA.A", &charErr},
		{"rle trailing fragment", "2x2:RLE:04A9", &runErr},
		{"rle non-digit count", "2x2:RLE:x4A", &runErr},
		{"rle zero count", "2x2:RLE:00A04A", &runErr},
		{"rle invalid character", "2x2:RLE:04.", &charErr},
		{"rle length mismatch", "2x2:RLE:03A", &lenErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(tt.in)
			if err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tt.in)
			}
			if b != nil {
				t.Errorf("Decode(%q) returned a buffer alongside an error", tt.in)
			}
			if !errors.As(err, tt.as) {
				t.Errorf("Decode(%q) error %T (%v), want %T", tt.in, err, err, tt.as)
			}
		})
	}
}

// TestDecode_LeavesExistingBufferUntouched: a decode failure must not
// disturb buffers the caller already holds.
func TestDecode_LeavesExistingBufferUntouched(t *testing.T) {
	existing := mustBuffer(t, [][]uint8{{1, 2}, {3, 4}})
	snapshot := existing.Clone()
	if _, err := Decode("2x2:!!!!"); err == nil {
		t.Fatal("Decode succeeded, want error")
	}
	if !existing.Equal(snapshot) {
		t.Error("existing buffer changed during failed decode")
	}
}

// TestRLESplitLaw: a run of length n encodes as ceil(n/99) records and
// decodes back to exactly n cells.
func TestRLESplitLaw(t *testing.T) {
	for _, n := range []int{1, 50, 99, 100, 149, 198, 297} {
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = 'C'
		}
		runs := encodeRuns(raw)
		wantRecords := (n + maxRun - 1) / maxRun
		if len(runs) != wantRecords*3 {
			t.Errorf("n=%d: %d record bytes, want %d", n, len(runs), wantRecords*3)
		}
		cells, err := decodeRuns(string(runs))
		if err != nil {
			t.Fatalf("n=%d: decodeRuns: %v", n, err)
		}
		if len(cells) != n {
			t.Errorf("n=%d: decoded %d cells", n, len(cells))
		}
		for _, v := range cells {
			if v != 2 { // 'C' is alphabet position 2
				t.Fatalf("n=%d: decoded cell %d, want 2", n, v)
			}
		}
	}
}

func TestAlphabetBijection(t *testing.T) {
	if len(alphabet) != PaletteSize {
		t.Fatalf("alphabet has %d symbols, want %d", len(alphabet), PaletteSize)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if seen[c] {
			t.Fatalf("duplicate alphabet symbol %q", c)
		}
		seen[c] = true
		if int(alphaIndex[c]) != i {
			t.Errorf("alphaIndex[%q] = %d, want %d", c, alphaIndex[c], i)
		}
	}
}
