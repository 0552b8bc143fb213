package markers

import (
	"path/filepath"
	"testing"

	"castrec/internal/asciicast"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	f := &asciicast.File{
		Header: asciicast.Header{Version: 3},
		Events: []asciicast.Event{
			{Time: 1.0, Kind: asciicast.Output, Data: "a"},
			{Time: 2.0, Kind: asciicast.Output, Data: "b"},
			{Time: 3.0, Kind: asciicast.Output, Data: "c"},
		},
	}
	path := filepath.Join(t.TempDir(), "session.cast")
	if err := asciicast.WriteFile(path, f); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestAddMarkerPreservesTotalDuration(t *testing.T) {
	path := writeFixture(t)

	// cumulative times before marker: 1.0, 3.0, 6.0
	if err := AddMarker(path, 2.0, "checkpoint"); err != nil {
		t.Fatalf("AddMarker: %v", err)
	}

	f, err := asciicast.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	cumulative := f.CumulativeTimes()
	total := cumulative[len(cumulative)-1]
	if diff := total - 6.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("total cumulative time = %v, want 6.0", total)
	}

	found := false
	for i, e := range f.Events {
		if e.Kind == asciicast.Marker {
			found = true
			if diff := cumulative[i] - 2.0; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("marker cumulative time = %v, want 2.0", cumulative[i])
			}
		}
	}
	if !found {
		t.Fatal("expected a marker event in the rewritten file")
	}
}

func TestAddMarkerRejectsNegativeTime(t *testing.T) {
	path := writeFixture(t)
	if err := AddMarker(path, -1, "bad"); err == nil {
		t.Fatal("expected an error for negative t_abs")
	}
}

func TestAddMarkerRejectsEmptyLabel(t *testing.T) {
	path := writeFixture(t)
	if err := AddMarker(path, 1.0, ""); err == nil {
		t.Fatal("expected an error for an empty label")
	}
}

func TestListMarkersReturnsCumulativeTimestamps(t *testing.T) {
	path := writeFixture(t)
	if err := AddMarker(path, 2.0, "checkpoint"); err != nil {
		t.Fatalf("AddMarker: %v", err)
	}
	got, err := ListMarkers(path)
	if err != nil {
		t.Fatalf("ListMarkers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d markers, want 1", len(got))
	}
	if got[0].Label != "checkpoint" {
		t.Errorf("label = %q, want checkpoint", got[0].Label)
	}
}
