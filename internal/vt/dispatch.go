package vt

// dispatchCSI routes a completed CSI sequence to its handler group by
// final byte.
func (p *parser) dispatchCSI(final byte) {
	n := int(p.param(0, 1))

	switch final {
	// Cursor movement.
	case 'A':
		p.tb.handleCursorUp(n)
	case 'B':
		p.tb.handleCursorDown(n)
	case 'C':
		p.tb.handleCursorForward(n)
	case 'D':
		p.tb.handleCursorBack(n)
	case 'H', 'f':
		row := int(p.param(0, 1))
		col := int(p.param(1, 1))
		p.tb.handleCursorPosition(row, col)
	case 'G':
		p.tb.handleCursorColumn(int(p.param(0, 1)))
	case 'd':
		p.tb.handleCursorRowAbs(int(p.param(0, 1)))
	case 's':
		p.tb.handleSaveCursor()
	case 'u':
		p.tb.handleRestoreCursor()

	// Editing.
	case 'J':
		p.tb.handleEraseDisplay(int(p.param(0, 0)))
	case 'K':
		p.tb.handleEraseLine(int(p.param(0, 0)))
	case 'L':
		p.tb.handleInsertLines(n)
	case 'M':
		p.tb.handleDeleteLines(n)
	case '@':
		p.tb.handleInsertChars(n)
	case 'P':
		p.tb.handleDeleteChars(n)
	case 'X':
		p.tb.handleEraseChars(n)

	// Scroll region.
	case 'r':
		top := int(p.param(0, 1))
		bot, ok := p.rawParam(1)
		bottom := int(bot)
		if !ok || bottom == 0 {
			bottom = p.tb.height
		}
		p.tb.handleSetScrollRegion(top, bottom)
	case 'S':
		p.tb.handleScrollUp(n)
	case 'T':
		p.tb.handleScrollDown(n)

	// Style.
	case 'm':
		p.tb.handleSGR(p.params)
	}
}
