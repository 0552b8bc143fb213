package vt

// Scroll-region handlers: CSI r (DECSTBM), CSI S/T (pan), and ESC M
// (reverse index).

// handleSetScrollRegion implements DECSTBM (CSI t;b r). Parameters are
// 1-indexed. A region with top >= bottom, or out of bounds, is ignored.
// On a successful set, the cursor moves to (top, 0).
func (tb *TerminalBuffer) handleSetScrollRegion(top, bottom int) {
	newTop := top - 1
	newBottom := bottom - 1
	if newTop < 0 {
		newTop = 0
	}
	if newTop >= newBottom || newBottom >= tb.height {
		return
	}
	tb.scrollTop = newTop
	tb.scrollBottom = newBottom
	tb.cursorRow = newTop
	tb.cursorCol = 0
}

// handleScrollUp implements CSI S: scroll the region up (pan down) by n.
func (tb *TerminalBuffer) handleScrollUp(n int) {
	tb.scrollRegionUp(n)
}

// handleScrollDown implements CSI T: scroll the region down (pan up) by n.
func (tb *TerminalBuffer) handleScrollDown(n int) {
	tb.scrollRegionDown(n)
}

// handleReverseIndex implements ESC M: move the cursor up one row,
// scrolling the region down if the cursor was at its top margin.
func (tb *TerminalBuffer) handleReverseIndex() {
	switch {
	case tb.cursorRow > tb.scrollTop:
		tb.cursorRow--
	case tb.cursorRow == tb.scrollTop:
		tb.scrollRegionDown(1)
	default:
		if tb.cursorRow > 0 {
			tb.cursorRow--
		}
	}
}
