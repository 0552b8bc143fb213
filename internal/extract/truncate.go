package extract

import (
	"fmt"
	"strings"
)

// BlockTruncator bounds the size of any logical output block: a maximal
// run of consecutive output events, ignoring their timing. A run whose
// combined payload exceeds cfg.MaxBlockSize bytes is replaced by a
// single event keeping the first and last cfg.TruncationContextLines
// lines with a sentinel in between recording how much was elided. The
// replacement event's time is the run's total delta, so every event
// after the run keeps its cumulative timestamp.
func BlockTruncator(cfg Config, events []Event, log Logger) []Event {
	out := make([]Event, 0, len(events))
	i := 0
	for i < len(events) {
		if events[i].Kind != Output {
			out = append(out, events[i])
			i++
			continue
		}
		j := i + 1
		size := len(events[i].Data)
		totalTime := events[i].Time
		for j < len(events) && events[j].Kind == Output {
			size += len(events[j].Data)
			totalTime += events[j].Time
			j++
		}
		if size <= cfg.MaxBlockSize {
			out = append(out, events[i:j]...)
			i = j
			continue
		}
		var b strings.Builder
		b.Grow(size)
		for _, e := range events[i:j] {
			b.WriteString(e.Data)
		}
		merged := events[i]
		merged.Time = totalTime
		merged.Data = truncateBlock(cfg, b.String())
		out = append(out, merged)
		i = j
	}
	return out
}

func truncateBlock(cfg Config, s string) string {
	lines := strings.Split(s, "\n")
	ctx := cfg.TruncationContextLines
	if len(lines) <= 2*ctx {
		return s
	}

	head := lines[:ctx]
	tail := lines[len(lines)-ctx:]
	elidedLines := lines[ctx : len(lines)-ctx]

	elidedBytes := 0
	for _, l := range elidedLines {
		elidedBytes += len(l) + 1
	}

	sentinel := fmt.Sprintf("[… %d lines / %d bytes elided …]", len(elidedLines), elidedBytes)

	result := make([]string, 0, len(head)+len(tail)+1)
	result = append(result, head...)
	result = append(result, sentinel)
	result = append(result, tail...)
	return strings.Join(result, "\n")
}
