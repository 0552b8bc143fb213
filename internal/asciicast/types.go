// Package asciicast implements the asciicast v3 on-disk and wire codec:
// a header line followed by newline-delimited JSON event records. See
// https://docs.asciinema.org/manual/asciicast/v3/ for the upstream format
// this is a v3-only, Go-native reimplementation of.
package asciicast

import "encoding/json"

// EventKind discriminates the four event types asciicast v3 records.
type EventKind string

const (
	Output EventKind = "o"
	Input  EventKind = "i"
	Marker EventKind = "m"
	Resize EventKind = "r"
)

// Event is a single timestamped record. Time is a relative delta in
// seconds since the previous event (non-negative); Data's meaning
// depends on Kind — output/input text, a marker label, or "COLSxROWS"
// for a resize.
type Event struct {
	Time float64
	Kind EventKind
	Data string
}

// MarshalJSON encodes an Event as its wire form: a 3-element JSON array.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{e.Time, string(e.Kind), e.Data})
}

// UnmarshalJSON decodes an Event from its 3-element JSON array wire form.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw [3]json.RawMessage
	// Decode into a slice first since an array literal may have extra
	// elements in principle; only the first three are meaningful.
	var arr []json.RawMessage
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	if len(arr) < 3 {
		return errEventTooShort
	}
	raw[0], raw[1], raw[2] = arr[0], arr[1], arr[2]

	var t float64
	if err := json.Unmarshal(raw[0], &t); err != nil {
		return errEventBadTime
	}
	var kind string
	if err := json.Unmarshal(raw[1], &kind); err != nil {
		return errEventBadKind
	}
	if !validKind(kind) {
		return &UnknownEventKindError{Kind: kind}
	}
	var data string
	if err := json.Unmarshal(raw[2], &data); err != nil {
		return errEventBadData
	}
	e.Time = t
	e.Kind = EventKind(kind)
	e.Data = data
	return nil
}

func validKind(k string) bool {
	switch EventKind(k) {
	case Output, Input, Marker, Resize:
		return true
	}
	return false
}

// TermInfo describes the recorded terminal's dimensions, carried in the
// header.
type TermInfo struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Header is the asciicast v3 header line: the first non-empty line of a
// cast file.
type Header struct {
	Version       int       `json:"version"`
	Term          *TermInfo `json:"term,omitempty"`
	IdleTimeLimit float64   `json:"idle_time_limit,omitempty"`
	Title         string    `json:"title,omitempty"`
	Timestamp     int64     `json:"timestamp,omitempty"`
}

// File is a complete in-memory asciicast recording: a header plus its
// ordered events. File owns its events; transforms over it should
// produce fresh event slices rather than mutate in place.
type File struct {
	Header Header
	Events []Event
}

// Outputs returns the subset of events with Kind == Output, in order.
// It is a derived view and does not mutate the file.
func (f *File) Outputs() []Event {
	return filterKind(f.Events, Output)
}

// Markers returns the subset of events with Kind == Marker, in order.
func (f *File) Markers() []Event {
	return filterKind(f.Events, Marker)
}

func filterKind(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// CumulativeTimes returns, for each event in order, the sum of its time
// delta and all preceding deltas — the event's absolute time since
// recording start.
func (f *File) CumulativeTimes() []float64 {
	out := make([]float64, len(f.Events))
	var sum float64
	for i, e := range f.Events {
		sum += e.Time
		out[i] = sum
	}
	return out
}
