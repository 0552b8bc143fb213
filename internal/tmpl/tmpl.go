// Package tmpl renders the recording filename template: the
// text/template-driven naming scheme that turns an agent name and a
// recording start time into a path under the storage root.
package tmpl

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// DefaultTemplate is the out-of-the-box naming scheme: directory name,
// date, and time, underscore-separated.
const DefaultTemplate = "{{.Directory}}_{{.Date}}_{{.Time}}"

// Context is the data available to a filename template.
type Context struct {
	AgentName string
	Directory string
	Date      string
	Time      string
	StartedAt time.Time
}

// NewContext builds a Context for a recording of agent starting at t,
// run from workDir.
func NewContext(agentName, workDir string, t time.Time) *Context {
	return &Context{
		AgentName: agentName,
		Directory: baseName(workDir),
		Date:      t.Format("2006-01-02"),
		Time:      t.Format("15-04-05"),
		StartedAt: t,
	}
}

func baseName(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "root"
	}
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	return path[i+1:]
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}

// Render expands templateText against ctx. An empty templateText falls
// back to DefaultTemplate.
func Render(templateText string, ctx *Context) (string, error) {
	if templateText == "" {
		templateText = DefaultTemplate
	}
	t, err := template.New("name").Funcs(funcMap()).Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("tmpl: parse: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, ctx); err != nil {
		return "", fmt.Errorf("tmpl: execute: %w", err)
	}
	return b.String(), nil
}
