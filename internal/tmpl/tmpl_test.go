package tmpl

import (
	"testing"
	"time"
)

func testContext() *Context {
	started := time.Date(2026, 8, 2, 14, 30, 5, 0, time.UTC)
	return NewContext("claude", "/home/dev/myproject", started)
}

func TestRenderDefaultTemplate(t *testing.T) {
	got, err := Render("", testContext())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "myproject_2026-08-02_14-30-05"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCustomTemplate(t *testing.T) {
	got, err := Render("{{.AgentName}}-{{.Date}}", testContext())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "claude-2026-08-02" {
		t.Errorf("got %q", got)
	}
}

func TestRenderRejectsBadTemplate(t *testing.T) {
	if _, err := Render("{{.Unclosed", testContext()); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestNewContextRootDirectory(t *testing.T) {
	ctx := NewContext("a", "/", time.Now())
	if ctx.Directory != "root" {
		t.Errorf("Directory = %q, want root", ctx.Directory)
	}
}
