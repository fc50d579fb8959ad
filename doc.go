// Package px provides an indexed-color pixel drawing engine for Go.
//
// # Overview
//
// px maintains a small paletted raster buffer (up to 128x128 cells, 64
// colors, index 0 reserved for transparency) and mutates it through
// interactive drawing tools that follow a uniform press/drag/release/cancel
// gesture lifecycle. Buffers serialize to a compact, human-diffable text
// format with an optional run-length-encoded layer.
//
// # Quick Start
//
//	import "github.com/gopx/px"
//
//	ed, _ := px.NewEditor(32, 32)
//	ed.SetTool(px.ToolBrush)
//	ed.SetColor(5)
//
//	// One gesture: press, drag, release.
//	ed.PointerDown(4, 4, px.ButtonPrimary)
//	ed.PointerMove(20, 12)
//	ed.PointerUp(20, 12)
//
//	fmt.Println(ed.Save()) // "32x32:..." text form
//
// # Architecture
//
// The engine is organized into:
//   - Buffer: the owned grid of palette indices
//   - Codec: Encode/Decode between buffers and the text format
//   - Selection: optional rectangular region of interest plus move capture
//   - Session: the tool gesture state machine driving raster algorithms
//   - Editor: the top-level context object tying the above together
//
// The terminal front-end lives in cmd/pixed; the library itself never talks
// to a display.
//
// # Coordinate System
//
// Grid coordinates with origin (0,0) at the top-left, X increasing right,
// Y increasing down. All rectangle bounds are inclusive.
//
// # Text Format
//
//	"{width}x{height}:{one char per cell, row-major}"
//	"{width}x{height}:RLE:{[2-digit count][char] runs}"
//
// See Encode and Decode for the exact contract.
package px

// Version is the current version of the library.
const Version = "0.2.0"
