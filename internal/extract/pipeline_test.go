package extract

import (
	"strings"
	"testing"
)

func TestPipelineRunRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimilarityThreshold = 2.0
	_, err := DefaultPipeline().Run(cfg, nil, NopLogger{})
	if err == nil {
		t.Fatal("expected an error for an out-of-range config")
	}
}

func TestPipelineRunCleansAndDedupes(t *testing.T) {
	events := []Event{
		{Time: 0, Kind: Output, Data: "\x1b[2K\rDownloading 10%\r"},
		{Time: 0.01, Kind: Output, Data: "\x1b[2K\rDownloading 100%\n"},
		{Time: 0.01, Kind: Output, Data: "   \n"},
		{Time: 0.01, Kind: Output, Data: "done\n"},
	}
	cfg := DefaultConfig()
	cfg.DedupeProgress = true
	got, err := DefaultPipeline().Run(cfg, events, NopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var all strings.Builder
	for _, e := range got {
		all.WriteString(e.Data)
	}
	if strings.Contains(all.String(), "\x1b") {
		t.Errorf("expected all escape sequences stripped, got %q", all.String())
	}
	if !strings.Contains(all.String(), "done") {
		t.Errorf("expected 'done' to survive the pipeline, got %q", all.String())
	}
	if strings.Contains(all.String(), "10%") {
		t.Errorf("expected the superseded progress frame to be dropped, got %q", all.String())
	}
}

func TestPipelineSpinnerProgressCollapsesToFinalFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DedupeProgress = true
	events := []Event{
		{Time: 0.1, Kind: Output, Data: "⠋ working\r⠙ working\r⠹ working\r⠸ done\n"},
	}
	got, err := DefaultPipeline().Run(cfg, events, NopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(got), got)
	}
	if got[0].Data != "done\n" {
		t.Errorf("got %q, want %q", got[0].Data, "done\n")
	}
}

func TestPipelineRunNeverGrowsByteSize(t *testing.T) {
	events := []Event{
		{Time: 0, Kind: Output, Data: "hello\x1b[31m world\x1b[0m\n"},
		{Time: 0.01, Kind: Output, Data: "hello\x1b[31m world\x1b[0m\n"},
	}
	inputBytes := 0
	for _, e := range events {
		inputBytes += len(e.Data)
	}
	got, err := DefaultPipeline().Run(DefaultConfig(), events, NopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outputBytes := 0
	for _, e := range got {
		outputBytes += len(e.Data)
	}
	if outputBytes > inputBytes {
		t.Errorf("pipeline grew the stream: in=%d out=%d", inputBytes, outputBytes)
	}
}
