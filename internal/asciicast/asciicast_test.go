package asciicast

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseStringBasic(t *testing.T) {
	content := `{"version":3,"term":{"cols":80,"rows":24}}
[0.5,"o","hello "]
[0.3,"o","world!"]
[0.1,"m","marker label"]
`
	f, err := ParseString(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Header.Version != 3 {
		t.Fatalf("version = %d, want 3", f.Header.Version)
	}
	if len(f.Events) != 3 {
		t.Fatalf("events = %d, want 3", len(f.Events))
	}
	if f.Events[2].Kind != Marker || f.Events[2].Data != "marker label" {
		t.Errorf("events[2] = %+v", f.Events[2])
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	content := "{\"version\":3}\n[0.1,\"o\",\"hello\"]\n\n[0.2,\"o\",\" world\"]\n"
	f, err := ParseString(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(f.Events))
	}
}

func TestParseRejectsWrongVersion(t *testing.T) {
	_, err := ParseString(`{"version":2}`)
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestParseRejectsUnknownEventKind(t *testing.T) {
	content := "{\"version\":3}\n[0.1,\"z\",\"???\"]\n"
	_, err := ParseString(content)
	if err == nil {
		t.Fatal("expected error for unknown event kind")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Line != 2 {
		t.Errorf("line = %d, want 2", pe.Line)
	}
}

func TestCumulativeTimesNonDecreasing(t *testing.T) {
	f := &File{Events: []Event{{Time: 0.5}, {Time: 1.0}, {Time: 0.3}}}
	times := f.CumulativeTimes()
	want := []float64{0.5, 1.5, 1.8}
	for i := range want {
		if diff := times[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("cumulative[%d] = %v, want %v", i, times[i], want[i])
		}
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			t.Fatalf("cumulative times decreased at %d", i)
		}
	}
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	orig := &File{
		Header: Header{Version: 3, Term: &TermInfo{Cols: 80, Rows: 24}},
		Events: []Event{
			{Time: 0.5, Kind: Output, Data: "hi"},
			{Time: 1.25, Kind: Input, Data: "y\n"},
			{Time: 0.0, Kind: Resize, Data: "100x50"},
		},
	}
	path := filepath.Join(t.TempDir(), "session.cast")
	if err := WriteFile(path, orig); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got.Header.Version != orig.Header.Version {
		t.Errorf("version mismatch")
	}
	if !reflect.DeepEqual(got.Events, orig.Events) {
		t.Errorf("events = %+v, want %+v", got.Events, orig.Events)
	}
}

func TestLiveReaderHoldsPartialTrailingLine(t *testing.T) {
	lr := NewLiveReader()
	if err := lr.Feed([]byte("{\"version\":3}\n[0.1,\"o\",\"abc")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lr.Events()) != 0 {
		t.Fatalf("expected 0 events before the line terminates, got %d", len(lr.Events()))
	}
	if err := lr.Feed([]byte("\"]\n")); err != nil {
		t.Fatalf("unexpected error on completion: %v", err)
	}
	if len(lr.Events()) != 1 {
		t.Fatalf("expected 1 event after completion, got %d", len(lr.Events()))
	}
}

func TestOutputsAndMarkersViewsDoNotMutate(t *testing.T) {
	f := &File{Events: []Event{
		{Kind: Output, Data: "a"},
		{Kind: Marker, Data: "m1"},
		{Kind: Output, Data: "b"},
	}}
	outs := f.Outputs()
	if len(outs) != 2 {
		t.Fatalf("outputs = %d, want 2", len(outs))
	}
	if len(f.Events) != 3 {
		t.Fatalf("Outputs() mutated the underlying event slice")
	}
}
