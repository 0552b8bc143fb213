package vt

// Erase and insert/delete handlers: CSI J (erase display), CSI K (erase
// line), CSI L/M (insert/delete lines), CSI @/P (insert/delete chars),
// and CSI X (erase chars in place).

// handleEraseDisplay implements CSI J. Mode 0 erases cursor→end-of-screen,
// mode 1 erases start-of-screen→cursor, modes 2 and 3 clear the screen.
func (tb *TerminalBuffer) handleEraseDisplay(mode int) {
	switch mode {
	case 0:
		tb.eraseToEOS()
	case 1:
		tb.eraseFromSOS()
	case 2, 3:
		tb.clearScreen()
	}
}

func (tb *TerminalBuffer) eraseToEOS() {
	tb.eraseToEOL()
	for r := tb.cursorRow + 1; r < tb.height; r++ {
		tb.rows[r] = newBlankRow(tb.width)
	}
}

func (tb *TerminalBuffer) eraseFromSOS() {
	tb.eraseFromSOL()
	for r := 0; r < tb.cursorRow; r++ {
		tb.rows[r] = newBlankRow(tb.width)
	}
}

func (tb *TerminalBuffer) clearScreen() {
	for r := range tb.rows {
		tb.rows[r] = newBlankRow(tb.width)
	}
}

// handleEraseLine implements CSI K. Mode 0 erases cursor→end-of-line,
// mode 1 erases start-of-line→cursor, mode 2 erases the whole line.
func (tb *TerminalBuffer) handleEraseLine(mode int) {
	switch mode {
	case 0:
		tb.eraseToEOL()
	case 1:
		tb.eraseFromSOL()
	case 2:
		tb.eraseEntireLine()
	}
}

func (tb *TerminalBuffer) eraseToEOL() {
	if tb.cursorRow < 0 || tb.cursorRow >= tb.height {
		return
	}
	row := tb.rows[tb.cursorRow]
	for c := tb.cursorCol; c < tb.width; c++ {
		row[c] = DefaultCell
	}
}

func (tb *TerminalBuffer) eraseFromSOL() {
	if tb.cursorRow < 0 || tb.cursorRow >= tb.height {
		return
	}
	row := tb.rows[tb.cursorRow]
	end := tb.cursorCol
	if end >= tb.width {
		end = tb.width - 1
	}
	for c := 0; c <= end; c++ {
		row[c] = DefaultCell
	}
}

func (tb *TerminalBuffer) eraseEntireLine() {
	if tb.cursorRow < 0 || tb.cursorRow >= tb.height {
		return
	}
	tb.rows[tb.cursorRow] = newBlankRow(tb.width)
}

// inScrollRegion reports whether the cursor currently sits within
// [scrollTop, scrollBottom]. CSI L/M are no-ops when it does not.
func (tb *TerminalBuffer) inScrollRegion() bool {
	return tb.cursorRow >= tb.scrollTop && tb.cursorRow <= tb.scrollBottom
}

// handleInsertLines implements CSI L: insert n blank lines at the
// cursor's row, shifting lines below down within the scroll region;
// lines shifted past scrollBottom are discarded.
func (tb *TerminalBuffer) handleInsertLines(n int) {
	if !tb.inScrollRegion() {
		return
	}
	bot := tb.scrollBottom
	if n > bot-tb.cursorRow+1 {
		n = bot - tb.cursorRow + 1
	}
	for i := 0; i < n; i++ {
		for r := bot; r > tb.cursorRow; r-- {
			tb.rows[r] = tb.rows[r-1]
		}
		tb.rows[tb.cursorRow] = newBlankRow(tb.width)
	}
}

// handleDeleteLines implements CSI M: delete n lines at the cursor's row,
// shifting lines below up within the scroll region and blanking the
// vacated rows at scrollBottom.
func (tb *TerminalBuffer) handleDeleteLines(n int) {
	if !tb.inScrollRegion() {
		return
	}
	bot := tb.scrollBottom
	if n > bot-tb.cursorRow+1 {
		n = bot - tb.cursorRow + 1
	}
	for i := 0; i < n; i++ {
		for r := tb.cursorRow; r < bot; r++ {
			tb.rows[r] = tb.rows[r+1]
		}
		tb.rows[bot] = newBlankRow(tb.width)
	}
}

// handleInsertChars implements CSI @: insert n blank cells at the
// cursor's column, shifting the rest of the row right and dropping
// whatever falls off the end. The cursor does not move.
func (tb *TerminalBuffer) handleInsertChars(n int) {
	if tb.cursorRow < 0 || tb.cursorRow >= tb.height {
		return
	}
	row := tb.rows[tb.cursorRow]
	col := tb.cursorCol
	if col >= tb.width {
		return
	}
	if n > tb.width-col {
		n = tb.width - col
	}
	copy(row[col+n:], row[col:tb.width-n])
	for c := col; c < col+n; c++ {
		row[c] = DefaultCell
	}
}

// handleDeleteChars implements CSI P: delete n cells at the cursor's
// column, shifting the rest of the row left and blanking the vacated
// cells at the end. The cursor does not move.
func (tb *TerminalBuffer) handleDeleteChars(n int) {
	if tb.cursorRow < 0 || tb.cursorRow >= tb.height {
		return
	}
	row := tb.rows[tb.cursorRow]
	col := tb.cursorCol
	if col >= tb.width {
		return
	}
	if n > tb.width-col {
		n = tb.width - col
	}
	copy(row[col:], row[col+n:])
	for c := tb.width - n; c < tb.width; c++ {
		row[c] = DefaultCell
	}
}

// handleEraseChars implements CSI X: replace n cells at the cursor with
// blanks, without moving the cursor.
func (tb *TerminalBuffer) handleEraseChars(n int) {
	if tb.cursorRow < 0 || tb.cursorRow >= tb.height {
		return
	}
	row := tb.rows[tb.cursorRow]
	for i := 0; i < n; i++ {
		col := tb.cursorCol + i
		if col >= tb.width {
			break
		}
		row[col] = DefaultCell
	}
}
