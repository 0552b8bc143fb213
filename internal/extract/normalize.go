package extract

import "strings"

// NormalizeWhitespace trims trailing whitespace from every line,
// collapses runs of spaces and tabs down to a single space, and caps
// consecutive blank lines at cfg.MaxConsecutiveNewlines.
func NormalizeWhitespace(cfg Config, events []Event, log Logger) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind != Output && e.Kind != Input {
			out = append(out, e)
			continue
		}
		e.Data = normalizeWhitespace(cfg, e.Data)
		out = append(out, e)
	}
	return out
}

func normalizeWhitespace(cfg Config, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = collapseSpacesAndTabs(strings.TrimRight(line, " \t"))
	}

	blank := 0
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > cfg.MaxConsecutiveNewlines {
				continue
			}
		} else {
			blank = 0
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// collapseSpacesAndTabs squeezes interior whitespace runs down to one
// space. Leading indentation is kept verbatim: the file-dump heuristic
// downstream reads indentation structure, and squeezing it here would
// blind that stage.
func collapseSpacesAndTabs(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	inRun := false
	leading := true
	for _, r := range line {
		if r == ' ' || r == '\t' {
			if leading {
				b.WriteRune(r)
				continue
			}
			if inRun {
				continue
			}
			inRun = true
			b.WriteByte(' ')
			continue
		}
		leading = false
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
