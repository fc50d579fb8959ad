package px

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// alphabet is the fixed 64-symbol encoding alphabet. Cell index i maps to
// alphabet[i]; the mapping is a bijection with [0, 63] and index 0
// (Transparent) maps to 'A'.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// rleMarker prefixes the data section of run-length-encoded text.
const rleMarker = "RLE:"

// maxRun is the largest repetition a single 3-character RLE record can
// express. Longer logical runs split into consecutive records.
const maxRun = 99

// alphaIndex maps a data character back to its palette index, or -1.
var alphaIndex [256]int8

func init() {
	for i := range alphaIndex {
		alphaIndex[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		alphaIndex[alphabet[i]] = int8(i)
	}
}

// Encode serializes a buffer into the text format:
//
//	"{width}x{height}:{data}"        one character per cell, row-major
//	"{width}x{height}:RLE:{runs}"    3-character records: 2-digit count + char
//
// With compress set, the RLE form is used only when it is strictly shorter
// than the plain form (marker included); the choice is a pure function of
// the data. Round-trip contract: Decode(Encode(b, c)) equals b for every
// valid buffer and either compress flag.
func Encode(b *Buffer, compress bool) string {
	raw := make([]byte, len(b.cells))
	for i, c := range b.cells {
		raw[i] = alphabet[c&indexMask]
	}
	header := fmt.Sprintf("%dx%d:", b.width, b.height)
	if compress {
		runs := encodeRuns(raw)
		if len(rleMarker)+len(runs) < len(raw) {
			Logger().Debug("px: encode chose RLE", slog.Int("raw", len(raw)), slog.Int("rle", len(runs)))
			return header + rleMarker + string(runs)
		}
	}
	return header + string(raw)
}

// encodeRuns run-length encodes raw data. Each record is exactly 3 bytes:
// a 2-digit decimal count in [01, 99] followed by the repeated character.
func encodeRuns(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		ch := raw[i]
		n := 1
		for i+n < len(raw) && raw[i+n] == ch {
			n++
		}
		i += n
		for n > 0 {
			r := n
			if r > maxRun {
				r = maxRun
			}
			out = append(out, byte('0'+r/10), byte('0'+r%10), ch)
			n -= r
		}
	}
	return out
}

// Decode parses the text format back into a buffer. It validates the
// dimension header (each dimension in [MinSize, MaxSize]), every data
// character, and the decoded length against width*height; it never
// truncates or pads. All failures are recoverable: Decode allocates a
// fresh buffer and leaves any existing one untouched.
//
// Errors are *DimensionError, *LengthMismatchError, *InvalidCharacterError
// or *MalformedRunError.
func Decode(text string) (*Buffer, error) {
	header, rest, ok := strings.Cut(text, ":")
	if !ok {
		return nil, &DimensionError{Header: text}
	}
	ws, hs, ok := strings.Cut(header, "x")
	if !ok {
		return nil, &DimensionError{Header: header}
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil {
		return nil, &DimensionError{Header: header}
	}
	if !validSize(w) || !validSize(h) {
		return nil, &DimensionError{Width: w, Height: h}
	}

	var (
		data []uint8
		err  error
	)
	if strings.HasPrefix(rest, rleMarker) {
		data, err = decodeRuns(rest[len(rleMarker):])
	} else {
		data, err = decodeRaw(rest)
	}
	if err != nil {
		return nil, err
	}
	if len(data) != w*h {
		return nil, &LengthMismatchError{Want: w * h, Got: len(data)}
	}
	return &Buffer{width: w, height: h, cells: data}, nil
}

// decodeRaw maps one character per cell back to palette indices.
func decodeRaw(s string) ([]uint8, error) {
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		v := alphaIndex[s[i]]
		if v < 0 {
			return nil, &InvalidCharacterError{Char: s[i], Pos: i}
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// decodeRuns expands fixed 3-character RLE records. A trailing fragment
// shorter than a full record is an error, never silently dropped.
func decodeRuns(s string) ([]uint8, error) {
	if len(s)%3 != 0 {
		return nil, &MalformedRunError{Pos: len(s) - len(s)%3, Reason: "truncated record"}
	}
	out := make([]uint8, 0, len(s)/3)
	for i := 0; i < len(s); i += 3 {
		d0, d1 := s[i], s[i+1]
		if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' {
			return nil, &MalformedRunError{Pos: i, Reason: fmt.Sprintf("count %q is not 2 decimal digits", s[i:i+2])}
		}
		n := int(d0-'0')*10 + int(d1-'0')
		if n == 0 {
			return nil, &MalformedRunError{Pos: i, Reason: "zero run count"}
		}
		v := alphaIndex[s[i+2]]
		if v < 0 {
			return nil, &InvalidCharacterError{Char: s[i+2], Pos: i + 2}
		}
		for ; n > 0; n-- {
			out = append(out, uint8(v))
		}
	}
	return out, nil
}
