package extract

import "math"

// AnalysisSegment is a contiguous run of events separated from its
// neighbors by a silent gap of at least cfg.SegmentTimeGap. Segments
// give a long recording natural chunk boundaries for navigation and for
// bounding how much of a transcript gets handed to an LLM at once.
type AnalysisSegment struct {
	StartTime     float64
	EndTime       float64
	Events        []Event
	TokenEstimate int
}

// Segment splits a cleaned event stream into AnalysisSegments at
// boundaries where the gap to the previous event's cumulative time is
// at least cfg.SegmentTimeGap. A single segment's TokenEstimate is
// ⌈bytes/4⌉ over the concatenated Data of its events, the same
// rule-of-thumb used throughout the pipeline's budgeting.
func Segment(cfg Config, events []Event) []AnalysisSegment {
	if len(events) == 0 {
		return nil
	}

	var segments []AnalysisSegment
	cumulative := 0.0
	segStart := 0
	segStartTime := events[0].Time

	flush := func(end int, endTime float64) {
		chunk := events[segStart:end]
		segments = append(segments, AnalysisSegment{
			StartTime:     segStartTime,
			EndTime:       endTime,
			Events:        chunk,
			TokenEstimate: estimateTokens(chunk),
		})
	}

	for i, e := range events {
		if i > 0 && e.Time >= cfg.SegmentTimeGap {
			flush(i, cumulative)
			segStart = i
			segStartTime = cumulative + e.Time
		}
		cumulative += e.Time
	}
	flush(len(events), cumulative)
	return segments
}

func estimateTokens(events []Event) int {
	bytes := 0
	for _, e := range events {
		bytes += len(e.Data)
	}
	return int(math.Ceil(float64(bytes) / 4))
}
