package px

import "fmt"

// DimensionError reports buffer dimensions outside [MinSize, MaxSize], or a
// dimension header that could not be parsed at all (Header non-empty).
type DimensionError struct {
	Width  int
	Height int
	Header string // raw header text when parsing failed
}

func (e *DimensionError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("px: malformed dimension header %q", e.Header)
	}
	return fmt.Sprintf("px: dimensions %dx%d outside [%d, %d]", e.Width, e.Height, MinSize, MaxSize)
}

// LengthMismatchError reports decoded pixel data whose length does not match
// width*height.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("px: pixel data length %d, want %d", e.Got, e.Want)
}

// InvalidCharacterError reports a data character outside the 64-symbol
// alphabet. Pos is the byte offset within the data section.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("px: invalid data character %q at offset %d", e.Char, e.Pos)
}

// MalformedRunError reports an RLE record that is truncated or whose count
// is not a 2-digit decimal in [01, 99]. Pos is the byte offset of the
// offending record within the RLE data section.
type MalformedRunError struct {
	Pos    int
	Reason string
}

func (e *MalformedRunError) Error() string {
	return fmt.Sprintf("px: malformed RLE record at offset %d: %s", e.Pos, e.Reason)
}
