package extract

import "testing"

func cleanOne(cfg Config, data string) string {
	out := ContentCleaner(cfg, []Event{{Kind: Output, Data: data}}, NopLogger{})
	return out[0].Data
}

func TestContentCleanerStripsANSI(t *testing.T) {
	cfg := DefaultConfig()
	got := cleanOne(cfg, "\x1b[31mred\x1b[0m text")
	if got != "red text" {
		t.Errorf("got %q", got)
	}
}

func TestContentCleanerStripsOSC(t *testing.T) {
	cfg := DefaultConfig()
	got := cleanOne(cfg, "\x1b]0;title\x07visible")
	if got != "visible" {
		t.Errorf("got %q", got)
	}
}

func TestContentCleanerKeepsNewlineCarriageReturnTab(t *testing.T) {
	cfg := DefaultConfig()
	got := cleanOne(cfg, "a\nb\rc\td")
	if got != "a\nb\rc\td" {
		t.Errorf("got %q", got)
	}
}

func TestContentCleanerDropsOtherControls(t *testing.T) {
	cfg := DefaultConfig()
	got := cleanOne(cfg, "a\x07b\x00c")
	if got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestContentCleanerStripsSpinnersButKeepsCheckmarks(t *testing.T) {
	cfg := DefaultConfig()
	got := cleanOne(cfg, "⠋ loading ✓ done")
	if got != "loading ✓ done" {
		t.Errorf("got %q", got)
	}
}

func TestContentCleanerHonorsDisabledFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StripBoxDrawing = false
	got := cleanOne(cfg, "┌──┐")
	if got != "┌──┐" {
		t.Errorf("got %q, want box-drawing preserved", got)
	}
}

func TestContentCleanerAnsiDisabledPassesThrough(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StripANSI = false
	data := "\x1b[31mred\x1b[0m"
	got := cleanOne(cfg, data)
	if got == "red" {
		t.Errorf("expected escape bytes preserved when StripANSI is false, got %q", got)
	}
}
