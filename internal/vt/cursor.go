package vt

// Cursor movement and positioning handlers: CSI A/B/C/D (relative moves),
// CSI H/f (absolute position), CSI G/d (absolute column/row), and the
// save/restore pair (CSI s/u and their DEC aliases ESC 7/ESC 8).

// handleCursorUp moves the cursor up by n rows (CSI A), saturating at row 0.
func (tb *TerminalBuffer) handleCursorUp(n int) {
	tb.cursorRow = clamp(tb.cursorRow-n, 0, tb.height-1)
}

// handleCursorDown moves the cursor down by n rows (CSI B), saturating at
// the last row.
func (tb *TerminalBuffer) handleCursorDown(n int) {
	tb.cursorRow = clamp(tb.cursorRow+n, 0, tb.height-1)
}

// handleCursorForward moves the cursor forward by n columns (CSI C),
// saturating at the last column.
func (tb *TerminalBuffer) handleCursorForward(n int) {
	tb.cursorCol = clamp(tb.cursorCol+n, 0, tb.width-1)
}

// handleCursorBack moves the cursor back by n columns (CSI D), saturating
// at column 0.
func (tb *TerminalBuffer) handleCursorBack(n int) {
	tb.cursorCol = clamp(tb.cursorCol-n, 0, tb.width-1)
}

// handleCursorPosition sets the cursor to a 1-indexed (row, col), clamped
// into bounds (CSI H / CSI f).
func (tb *TerminalBuffer) handleCursorPosition(row, col int) {
	tb.cursorRow = clamp(row-1, 0, tb.height-1)
	tb.cursorCol = clamp(col-1, 0, tb.width-1)
}

// handleCursorColumn sets the cursor's column, 1-indexed (CSI G).
func (tb *TerminalBuffer) handleCursorColumn(col int) {
	tb.cursorCol = clamp(col-1, 0, tb.width-1)
}

// handleCursorRowAbs sets the cursor's row, 1-indexed (CSI d).
func (tb *TerminalBuffer) handleCursorRowAbs(row int) {
	tb.cursorRow = clamp(row-1, 0, tb.height-1)
}

// handleSaveCursor stores the current cursor position in the one-slot
// save stack (CSI s).
func (tb *TerminalBuffer) handleSaveCursor() {
	tb.savedCursor = &[2]int{tb.cursorRow, tb.cursorCol}
}

// handleRestoreCursor restores the saved cursor position, clamped to the
// buffer's current dimensions in case a resize happened in between (CSI
// u).
func (tb *TerminalBuffer) handleRestoreCursor() {
	if tb.savedCursor == nil {
		return
	}
	tb.cursorRow = clamp(tb.savedCursor[0], 0, tb.height-1)
	tb.cursorCol = clamp(tb.savedCursor[1], 0, tb.width-1)
}

// handleDECSaveCursor is the ESC 7 alias for CSI s.
func (tb *TerminalBuffer) handleDECSaveCursor() { tb.handleSaveCursor() }

// handleDECRestoreCursor is the ESC 8 alias for CSI u.
func (tb *TerminalBuffer) handleDECRestoreCursor() { tb.handleRestoreCursor() }
