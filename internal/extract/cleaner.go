package extract

import "strings"

// ContentCleaner strips ANSI escape sequences, C0 control characters
// (other than newline, carriage return, and tab), and the configured
// glyph classes (spinners, box drawing, progress-bar blocks) from every
// event's data. Glyphs in preservedGlyphs are never stripped, even when
// their owning class is enabled, since they carry semantic meaning
// (success/failure/recording markers) rather than decorating a frame.
//
// This is the one stage where a per-event failure is recovered locally
// rather than aborting the run: a malformed escape sequence that
// never reaches a valid final byte is dropped along with the rest of
// that event's data (a newline does not end it), and the next event is
// scanned from a clean state, so the damage stays inside one event.
func ContentCleaner(cfg Config, events []Event, log Logger) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind != Output && e.Kind != Input {
			out = append(out, e)
			continue
		}
		cleaned, ok := cleanContent(cfg, e.Data)
		if !ok {
			log.Warnf("content-cleaner: dropped unterminated escape sequence in event at t=%v", e.Time)
		}
		e.Data = cleaned
		out = append(out, e)
	}
	return out
}

const (
	cleanGround = iota
	cleanEscape
	cleanCSI
	cleanOSC
	cleanOSCEsc
)

func cleanContent(cfg Config, s string) (string, bool) {
	if !cfg.StripANSI {
		return stripGlyphsAndControls(cfg, s), true
	}

	var b strings.Builder
	b.Grow(len(s))
	state := cleanGround
	wellFormed := true
	skipSpace := false

	for _, r := range s {
		switch state {
		case cleanGround:
			if r == 0x1B {
				state = cleanEscape
				continue
			}
			writeCleanRune(cfg, &b, r, &skipSpace)
		case cleanEscape:
			switch r {
			case '[':
				state = cleanCSI
			case ']':
				state = cleanOSC
			default:
				// Two-byte escape (ESC 7, ESC 8, ESC M, ...): consume and
				// return to ground without emitting anything.
				state = cleanGround
			}
		case cleanCSI:
			if r >= 0x40 && r <= 0x7E {
				state = cleanGround
			}
		case cleanOSC:
			switch r {
			case 0x07:
				state = cleanGround
			case 0x1B:
				state = cleanOSCEsc
			}
		case cleanOSCEsc:
			if r == '\\' {
				state = cleanGround
			} else {
				state = cleanOSC
			}
		}
	}
	if state != cleanGround {
		wellFormed = false
	}
	return b.String(), wellFormed
}

func stripGlyphsAndControls(cfg Config, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	skipSpace := false
	for _, r := range s {
		writeCleanRune(cfg, &b, r, &skipSpace)
	}
	return b.String()
}

// writeCleanRune emits r unless it belongs to a stripped class. A
// stripped spinner also swallows one immediately following space, so
// "⠸ done" cleans to "done" rather than " done" — the O(1) lookahead
// is the skipSpace flag.
func writeCleanRune(cfg Config, b *strings.Builder, r rune, skipSpace *bool) {
	if *skipSpace {
		*skipSpace = false
		if r == ' ' {
			return
		}
	}
	if r == '\n' || r == '\r' || r == '\t' {
		b.WriteRune(r)
		return
	}
	if cfg.StripControl && (r < 0x20 || r == 0x7F) {
		return
	}
	if preservedGlyphs[r] {
		b.WriteRune(r)
		return
	}
	if cfg.StripSpinners && spinnerGlyphs[r] {
		*skipSpace = true
		return
	}
	if cfg.StripBoxDrawing && boxDrawingGlyphs[r] {
		return
	}
	if cfg.StripProgressBlocks && progressBlockGlyphs[r] {
		return
	}
	b.WriteRune(r)
}
