package vt

// handleSGR implements CSI...m (Select Graphic Rendition). An empty or
// all-zero parameter list resets to the default style. Extended color
// forms 38;5;n / 48;5;n (indexed) and 38;2;r;g;b / 48;2;r;g;b (truecolor)
// consume their following parameters.
func (tb *TerminalBuffer) handleSGR(params []uint16) {
	if len(params) == 0 {
		tb.currentStyle = DefaultStyle
		return
	}
	s := tb.currentStyle
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s = DefaultStyle
		case p == 1:
			s.Bold = true
		case p == 2:
			s.Dim = true
		case p == 3:
			s.Italic = true
		case p == 4:
			s.Underline = true
		case p == 7:
			s.Reverse = true
		case p == 22:
			s.Bold, s.Dim = false, false
		case p == 23:
			s.Italic = false
		case p == 24:
			s.Underline = false
		case p == 27:
			s.Reverse = false
		case p >= 30 && p <= 37:
			s.Fg = NamedColorOf(NamedColor(p - 30))
		case p == 38:
			consumed := tb.consumeExtendedColor(params[i+1:], &s.Fg)
			i += consumed
		case p == 39:
			s.Fg = DefaultColor
		case p >= 40 && p <= 47:
			s.Bg = NamedColorOf(NamedColor(p - 40))
		case p == 48:
			consumed := tb.consumeExtendedColor(params[i+1:], &s.Bg)
			i += consumed
		case p == 49:
			s.Bg = DefaultColor
		case p >= 90 && p <= 97:
			s.Fg = NamedColorOf(NamedColor(p - 90 + 8))
		case p >= 100 && p <= 107:
			s.Bg = NamedColorOf(NamedColor(p - 100 + 8))
		}
	}
	tb.currentStyle = s
}

// consumeExtendedColor parses the parameters following a 38/48 selector
// (which chooses indexed or truecolor mode) and writes the resulting
// Color into out. It returns how many additional parameters were
// consumed so the caller's loop index can skip past them.
func (tb *TerminalBuffer) consumeExtendedColor(rest []uint16, out *Color) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			*out = IndexedColor(uint8(rest[1]))
			return 2
		}
		return 1
	case 2:
		if len(rest) >= 4 {
			*out = RGBColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]))
			return 4
		}
		return len(rest)
	}
	return 1
}
