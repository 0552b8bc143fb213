// Package vt implements a virtual terminal buffer: a rectangular grid of
// styled cells driven by a byte-level ANSI/VT escape-sequence parser. It
// replays recorded terminal output into an in-memory buffer for playback,
// navigation, and snapshotting; it never writes to a physical terminal.
package vt

// Color is a tagged terminal color: the default color, one of the 16
// named ANSI colors, a 256-color palette index, or a 24-bit RGB triple.
type Color struct {
	Kind    ColorKind
	Named   NamedColor
	Indexed uint8
	R, G, B uint8
}

// ColorKind discriminates the variant held by a Color.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// NamedColor enumerates the 16 standard ANSI colors (8 normal + 8 bright).
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// DefaultColor is the zero-value Color: "use the terminal's default".
var DefaultColor = Color{Kind: ColorDefault}

// NamedColorOf builds a Color from one of the 16 standard colors.
func NamedColorOf(n NamedColor) Color { return Color{Kind: ColorNamed, Named: n} }

// IndexedColor builds a Color from a 256-color palette index.
func IndexedColor(i uint8) Color { return Color{Kind: ColorIndexed, Indexed: i} }

// RGBColor builds a 24-bit truecolor Color.
func RGBColor(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// CellStyle holds the SGR attributes in effect when a Cell was written.
type CellStyle struct {
	Fg, Bg                                Color
	Bold, Dim, Italic, Underline, Reverse bool
}

// DefaultStyle is the all-attributes-off style with both colors default.
var DefaultStyle = CellStyle{}

// Cell is the unit of the screen buffer: one Unicode scalar plus the style
// in effect when it was written. Width-2 grapheme clusters (CJK, emoji)
// occupy two adjacent cells; the right-hand cell is a continuation
// sentinel holding a space with the same style as its partner.
type Cell struct {
	Char  rune
	Style CellStyle
}

// DefaultCell is a blank cell: a space in the default style.
var DefaultCell = Cell{Char: ' ', Style: DefaultStyle}

// continuationCell returns the right-hand sentinel for a width-2 rune
// written with the given style.
func continuationCell(style CellStyle) Cell {
	return Cell{Char: ' ', Style: style}
}
