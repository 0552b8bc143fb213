// Package markers inserts and lists named bookmarks in a cast file
// without disturbing the relative-delta timing of the events around
// them.
package markers

import (
	"fmt"

	"castrec/internal/asciicast"
)

// Marker is a marker event reported with its absolute (cumulative)
// timestamp rather than its raw delta, since callers listing markers
// want "at 00:42" not "0.3s after the previous event".
type Marker struct {
	Time  float64
	Label string
}

// AddMarker loads the cast file at path, inserts a marker event at
// absolute time tAbs with the given label, and rewrites the file.
//
// The marker is inserted immediately before the first event whose
// cumulative time is ≥ tAbs (or at the end, if none qualifies). Its
// own delta is tAbs minus the cumulative time of the event before it;
// that same delta is then subtracted from the following event's time,
// so the cumulative time of every event after the marker — and the
// recording's total duration — is unchanged.
func AddMarker(path string, tAbs float64, label string) error {
	if tAbs < 0 {
		return fmt.Errorf("markers: t_abs must be non-negative, got %v", tAbs)
	}
	if label == "" {
		return fmt.Errorf("markers: label must not be empty")
	}

	f, err := asciicast.ParseFile(path)
	if err != nil {
		return err
	}

	cumulative := f.CumulativeTimes()
	idx := len(f.Events)
	for i, c := range cumulative {
		if c >= tAbs {
			idx = i
			break
		}
	}

	prevCumulative := 0.0
	if idx > 0 {
		prevCumulative = cumulative[idx-1]
	}
	markerDelta := tAbs - prevCumulative

	marker := asciicast.Event{Time: markerDelta, Kind: asciicast.Marker, Data: label}

	events := make([]asciicast.Event, 0, len(f.Events)+1)
	events = append(events, f.Events[:idx]...)
	events = append(events, marker)
	if idx < len(f.Events) {
		following := f.Events[idx]
		following.Time -= markerDelta
		events = append(events, following)
		events = append(events, f.Events[idx+1:]...)
	}
	f.Events = events

	return asciicast.WriteFile(path, f)
}

// ListMarkers returns every marker event in path, each reported with
// its cumulative (absolute) timestamp.
func ListMarkers(path string) ([]Marker, error) {
	f, err := asciicast.ParseFile(path)
	if err != nil {
		return nil, err
	}
	cumulative := f.CumulativeTimes()

	var out []Marker
	for i, e := range f.Events {
		if e.Kind == asciicast.Marker {
			out = append(out, Marker{Time: cumulative[i], Label: e.Data})
		}
	}
	return out, nil
}
