package extract

import "strings"

// DeduplicateProgressLines collapses in-place progress redraws. A
// terminal line that gets rewritten with bare "\r" (no newline) — a
// spinner, a percentage counter, a progress bar — arrives as one long
// logical line with several "\r"-separated frames; only the last frame
// is ever visible on screen, so that is all this keeps.
func DeduplicateProgressLines(cfg Config, events []Event, log Logger) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind != Output && e.Kind != Input {
			out = append(out, e)
			continue
		}
		e.Data = dedupeProgressFrames(e.Data)
		out = append(out, e)
	}
	return out
}

func dedupeProgressFrames(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
			lines[i] = line[idx+1:]
		}
	}
	return strings.Join(lines, "\n")
}
