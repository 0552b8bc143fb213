package extract

// EventCoalescer merges runs of consecutive same-kind events whose
// cleaned data is byte-identical and whose inter-arrival time is under
// CoalesceTimeThreshold: the tail events' times are added onto the head
// and their (identical) data is discarded. TUI frameworks redraw the
// same frame many times per second; this folds a redraw burst into one
// event without losing any of the elapsed time.
func EventCoalescer(cfg Config, events []Event, log Logger) []Event {
	if len(events) == 0 {
		return events
	}
	out := make([]Event, 0, len(events))
	curr := events[0]
	for _, e := range events[1:] {
		if e.Kind == curr.Kind && (e.Kind == Output || e.Kind == Input) &&
			e.Time < cfg.CoalesceTimeThreshold && e.Data == curr.Data {
			curr.Time += e.Time
			continue
		}
		out = append(out, curr)
		curr = e
	}
	out = append(out, curr)
	return out
}
