package extract

import (
	"strings"
	"testing"
)

func TestFileDumpFilterShortCatDumpPassesThrough(t *testing.T) {
	events := []Event{
		{Kind: Output, Data: "cat config.yaml\nkey: value"},
	}
	got := FileDumpFilter(DefaultConfig(), events, NopLogger{})
	if got[0].Data != "cat config.yaml\nkey: value" {
		t.Errorf("short cat dump should pass through unchanged below the context-line count, got %q", got[0].Data)
	}
}

func TestFileDumpFilterElidesLongIndentedSource(t *testing.T) {
	var b strings.Builder
	b.WriteString("func example() {\n")
	for i := 0; i < 78; i++ {
		b.WriteString("  do(something)\n")
	}
	b.WriteString("}\n")
	events := []Event{{Kind: Output, Data: b.String()}}
	got := FileDumpFilter(DefaultConfig(), events, NopLogger{})
	if !strings.Contains(got[0].Data, "elided") {
		t.Errorf("expected a long uniformly-indented run to be elided, got %q", got[0].Data)
	}
}

func TestFileDumpFilterLeavesOrdinaryLogsAlone(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 80; i++ {
		b.WriteString("GET /api/widgets 200 12ms\n")
	}
	events := []Event{{Kind: Output, Data: b.String()}}
	got := FileDumpFilter(DefaultConfig(), events, NopLogger{})
	if strings.Contains(got[0].Data, "elided") {
		t.Errorf("ordinary flat log lines should not trip the file-dump heuristic, got %q", got[0].Data)
	}
}
