package vt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TerminalBuffer is a rectangular grid of cells with a cursor, a scroll
// region, and a one-slot saved-cursor stack. It is the sole owner of its
// cell grid; Process mutates the grid only for the duration of a single
// call and String and the other snapshot methods return freshly
// allocated copies, so no shared mutable references ever escape.
type TerminalBuffer struct {
	width, height int
	rows          [][]Cell

	cursorRow, cursorCol int
	savedCursor          *[2]int

	scrollTop, scrollBottom int

	currentStyle CellStyle

	parser parser

	// onDrop, when set, is called for each unrecognized C0 control byte
	// or DEL in the ground state. Used by callers that want trace-level
	// visibility into exotic input; nil by default (drop silently).
	onDrop func(b byte)
}

// NewTerminalBuffer constructs a buffer of the given dimensions. Both
// width and height must be at least 1.
func NewTerminalBuffer(width, height int) *TerminalBuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	tb := &TerminalBuffer{
		width:        width,
		height:       height,
		scrollTop:    0,
		scrollBottom: height - 1,
		currentStyle: DefaultStyle,
	}
	tb.rows = make([][]Cell, height)
	for i := range tb.rows {
		tb.rows[i] = newBlankRow(width)
	}
	tb.parser = newParser(tb)
	return tb
}

// SetOnDrop registers a callback invoked for each unrecognized C0
// control byte or DEL that the parser drops in the ground state. Other
// dropped bytes (stray bytes inside a CSI sequence, unsupported ESC
// finals, invalid UTF-8) are not reported. Callers that want trace-level
// visibility into exotic input (e.g. logging to activitylog) set this;
// it is nil by default.
func (tb *TerminalBuffer) SetOnDrop(fn func(b byte)) {
	tb.onDrop = fn
}

func newBlankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = DefaultCell
	}
	return row
}

// Width returns the buffer's column count.
func (tb *TerminalBuffer) Width() int { return tb.width }

// Height returns the buffer's row count.
func (tb *TerminalBuffer) Height() int { return tb.height }

// CursorRow returns the cursor's current row, 0-indexed.
func (tb *TerminalBuffer) CursorRow() int { return tb.cursorRow }

// CursorCol returns the cursor's current column, 0-indexed. After a
// write to the last column the internal column rests one past the edge
// (autowrap is deferred until the next printable); the observer reports
// the last column in that state.
func (tb *TerminalBuffer) CursorCol() int {
	if tb.cursorCol >= tb.width {
		return tb.width - 1
	}
	return tb.cursorCol
}

// Process advances buffer state by feeding it bytes from a child's PTY
// output, dispatching through the escape-sequence parser.
func (tb *TerminalBuffer) Process(data []byte) {
	for _, b := range data {
		tb.parser.feed(b)
	}
}

// String renders the buffer as a newline-joined snapshot: each row is
// trimmed of trailing spaces, and trailing blank rows are dropped.
// Callers that need exact column widths should read Cells directly.
func (tb *TerminalBuffer) String() string {
	lines := make([]string, tb.height)
	for i, row := range tb.rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Char)
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	last := len(lines) - 1
	for last >= 0 && lines[last] == "" {
		last--
	}
	return strings.Join(lines[:last+1], "\n")
}

// Cells returns a freshly allocated copy of row r, or nil if r is out of
// bounds.
func (tb *TerminalBuffer) Cells(r int) []Cell {
	if r < 0 || r >= tb.height {
		return nil
	}
	out := make([]Cell, tb.width)
	copy(out, tb.rows[r])
	return out
}

// Resize reshapes the buffer, preserving as much content as possible:
// existing rows/columns are copied into the new grid truncated or padded
// as needed. The cursor is clamped into the new bounds and the scroll
// region resets to the full screen.
func (tb *TerminalBuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	newRows := make([][]Cell, height)
	for i := range newRows {
		newRows[i] = newBlankRow(width)
		if i < len(tb.rows) {
			copyWidth := width
			if len(tb.rows[i]) < copyWidth {
				copyWidth = len(tb.rows[i])
			}
			copy(newRows[i][:copyWidth], tb.rows[i][:copyWidth])
		}
	}
	tb.rows = newRows
	tb.width = width
	tb.height = height
	tb.scrollTop = 0
	tb.scrollBottom = height - 1

	if tb.cursorRow >= height {
		tb.cursorRow = height - 1
	}
	if tb.cursorCol >= width {
		tb.cursorCol = width - 1
	}
	if tb.savedCursor != nil {
		r, c := tb.savedCursor[0], tb.savedCursor[1]
		if r >= height {
			r = height - 1
		}
		if c >= width {
			c = width - 1
		}
		tb.savedCursor = &[2]int{r, c}
	}
}

// runeWidth returns the display width (1 or 2) of a printable rune.
func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// writePrintable writes r at the cursor, autowrapping first if the cursor
// sits at the right edge, then advances the cursor by the rune's display
// width (1 or 2 cells).
func (tb *TerminalBuffer) writePrintable(r rune) {
	w := runeWidth(r)
	if tb.cursorCol >= tb.width {
		tb.carriageReturnLineFeed()
	}
	if tb.cursorCol+w > tb.width && w == 2 {
		// Not enough room for a wide rune: wrap first.
		tb.carriageReturnLineFeed()
	}
	tb.setCell(tb.cursorRow, tb.cursorCol, Cell{Char: r, Style: tb.currentStyle})
	tb.cursorCol++
	if w == 2 && tb.cursorCol < tb.width {
		tb.setCell(tb.cursorRow, tb.cursorCol, continuationCell(tb.currentStyle))
		tb.cursorCol++
	}
}

func (tb *TerminalBuffer) setCell(row, col int, c Cell) {
	if row < 0 || row >= tb.height || col < 0 || col >= tb.width {
		return
	}
	tb.rows[row][col] = c
}

// carriageReturnLineFeed performs the autowrap-before-write move: column
// resets to 0 and the row advances, scrolling the active region if the
// cursor was on the bottom margin.
func (tb *TerminalBuffer) carriageReturnLineFeed() {
	tb.cursorCol = 0
	tb.lineFeed()
}

// lineFeed advances the cursor one row, scrolling the scroll region up by
// one line if the cursor was already on scrollBottom.
func (tb *TerminalBuffer) lineFeed() {
	if tb.cursorRow == tb.scrollBottom {
		tb.scrollRegionUp(1)
		return
	}
	if tb.cursorRow < tb.height-1 {
		tb.cursorRow++
	}
}

// scrollRegionUp shifts rows [scrollTop+1, scrollBottom] up by n into
// [scrollTop, scrollBottom-n], blanking the n rows that scrolled in at
// the bottom. Content outside [scrollTop, scrollBottom] is untouched.
func (tb *TerminalBuffer) scrollRegionUp(n int) {
	top, bot := tb.scrollTop, tb.scrollBottom
	if top >= bot || bot >= tb.height {
		return
	}
	regionHeight := bot - top + 1
	if n > regionHeight {
		n = regionHeight
	}
	for i := 0; i < n; i++ {
		for r := top; r < bot; r++ {
			tb.rows[r] = tb.rows[r+1]
		}
		tb.rows[bot] = newBlankRow(tb.width)
	}
}

// scrollRegionDown shifts rows [scrollTop, scrollBottom-n] down by n into
// [scrollTop+n, scrollBottom], blanking the n rows that scrolled in at the
// top. Content outside [scrollTop, scrollBottom] is untouched.
func (tb *TerminalBuffer) scrollRegionDown(n int) {
	top, bot := tb.scrollTop, tb.scrollBottom
	if top >= bot || bot >= tb.height {
		return
	}
	regionHeight := bot - top + 1
	if n > regionHeight {
		n = regionHeight
	}
	for i := 0; i < n; i++ {
		for r := bot; r > top; r-- {
			tb.rows[r] = tb.rows[r-1]
		}
		tb.rows[top] = newBlankRow(tb.width)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
