// Package analyzer runs the extraction pipeline (internal/extract) over
// a parsed cast file and, when requested, resolves and invokes an
// external LLM-agent binary over the cleaned transcript. The binary is
// resolved by cascade: explicit config, then the first of
// claude/codex/gemini on PATH, then "claude".
package analyzer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"castrec/internal/asciicast"
	"castrec/internal/castrecerr"
	"castrec/internal/extract"
)

// candidateAgents is the PATH-search order used when no agent binary is
// configured explicitly.
var candidateAgents = []string{"claude", "codex", "gemini"}

// fallbackAgent is used when none of candidateAgents is found on PATH
// and none was configured explicitly.
const fallbackAgent = "claude"

// Result is the outcome of analyzing a single recording: the cleaned
// event stream, its segmentation, and (if an agent ran) its raw output.
type Result struct {
	Events      []asciicast.Event
	Segments    []extract.AnalysisSegment
	AgentOutput string
}

// Analyzer runs the extraction pipeline and, optionally, an LLM-agent
// pass over a cast file.
type Analyzer struct {
	Pipeline    extract.Pipeline
	Config      extract.Config
	Logger      extract.Logger
	AgentBinary string // explicit override; empty triggers the PATH cascade
	LookPath    func(string) (string, error)
}

// New constructs an Analyzer with the default pipeline and extraction
// config.
func New() *Analyzer {
	return &Analyzer{
		Pipeline: extract.DefaultPipeline(),
		Config:   extract.DefaultConfig(),
		LookPath: exec.LookPath,
	}
}

// Analyze parses path, runs the extraction pipeline, and segments the
// result. It does not invoke an agent; call AnalyzeWithAgent for that.
func (a *Analyzer) Analyze(path string) (*Result, error) {
	file, err := asciicast.ParseFile(path)
	if err != nil {
		return nil, err
	}
	cleaned, err := a.Pipeline.Run(a.Config, file.Events, a.Logger)
	if err != nil {
		return nil, err
	}
	segments := extract.Segment(a.Config, cleaned)
	return &Result{Events: cleaned, Segments: segments}, nil
}

// ResolveAgentBinary returns the name of the LLM-agent binary to
// invoke: the explicit override if set, else the first of
// candidateAgents found on PATH, else fallbackAgent. It does not verify
// that fallbackAgent itself is runnable — that surfaces as an
// *castrecerr.AgentError at invocation time.
func (a *Analyzer) ResolveAgentBinary() string {
	if a.AgentBinary != "" {
		return a.AgentBinary
	}
	lookPath := a.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, candidate := range candidateAgents {
		if _, err := lookPath(candidate); err == nil {
			return candidate
		}
	}
	return fallbackAgent
}

// AnalyzeWithAgent runs Analyze and then pipes the cleaned transcript
// into the resolved agent binary, capturing its stdout as
// Result.AgentOutput. A missing binary or non-zero exit surfaces as an
// *castrecerr.AgentError naming the agent.
func (a *Analyzer) AnalyzeWithAgent(ctx context.Context, path string) (*Result, error) {
	result, err := a.Analyze(path)
	if err != nil {
		return nil, err
	}

	agent := a.ResolveAgentBinary()
	lookPath := a.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	binPath, err := lookPath(agent)
	if err != nil {
		return nil, &castrecerr.AgentError{Agent: agent, Err: err}
	}

	var transcript bytes.Buffer
	for _, e := range result.Events {
		transcript.WriteString(e.Data)
	}

	cmd := exec.CommandContext(ctx, binPath)
	cmd.Stdin = bytes.NewReader(transcript.Bytes())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &castrecerr.AgentError{Agent: agent, Err: fmt.Errorf("%w: %s", err, stderr.String())}
	}
	result.AgentOutput = stdout.String()
	return result, nil
}
