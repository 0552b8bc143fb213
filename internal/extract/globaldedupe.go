package extract

import (
	"fmt"
	"strings"
)

// GlobalDeduplicator tracks how many times each distinct line has been
// seen across the entire recording. Once a line crosses
// cfg.MaxLineRepeats occurrences — a build tool re-printing the same
// warning on every file, a retry loop logging the same error — further
// repetitions are replaced with a short pointer back to the first
// occurrence instead of paying for the text again.
func GlobalDeduplicator(cfg Config, events []Event, log Logger) []Event {
	counts := make(map[string]int)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind != Output && e.Kind != Input {
			out = append(out, e)
			continue
		}
		e.Data = dedupeGlobalLines(cfg, e.Data, counts)
		out = append(out, e)
	}
	return out
}

func dedupeGlobalLines(cfg Config, s string, counts map[string]int) string {
	if !strings.Contains(s, "\n") {
		return dedupeOneLine(cfg, s, counts)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = dedupeOneLine(cfg, line, counts)
	}
	return strings.Join(lines, "\n")
}

func dedupeOneLine(cfg Config, line string, counts map[string]int) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return line
	}
	counts[trimmed]++
	n := counts[trimmed]
	if n <= cfg.MaxLineRepeats {
		return line
	}
	return fmt.Sprintf("[seen %d× earlier]", n)
}
