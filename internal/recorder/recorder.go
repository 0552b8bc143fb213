// Package recorder PTY-wraps a child process, writes its stdout/stdin
// as asciicast v3 events under a reclock lock, and keeps the child from
// surviving as an orphan via the guard package.
package recorder

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"golang.org/x/term"

	"castrec/internal/asciicast"
	"castrec/internal/castrecerr"
	"castrec/internal/guard"
	"castrec/internal/reclock"
	"castrec/internal/tmpl"
)

// Options configures a recording run.
type Options struct {
	// StorageRoot is the directory recordings are written under, one
	// subdirectory per agent name (<storage_root>/<agent>/<name>.cast).
	StorageRoot string
	// NameTemplate renders the ".cast"-less filename stem; empty uses
	// tmpl.DefaultTemplate.
	NameTemplate string
	// Name, if set, is used verbatim as the filename stem instead of
	// rendering NameTemplate.
	Name string
	// Cols/Rows seed the header's terminal size; zero means "query the
	// attached terminal, falling back to 80x24".
	Cols, Rows int
	// Stdin/Stdout are the streams attached to the spawned child's PTY;
	// the child's stderr shares the PTY and reaches Stdout, so Stderr is
	// not written to. Default to os.Stdin/os.Stdout/os.Stderr.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Recorder spawns a PTY-wrapped child and records its session to a
// ".cast" file.
type Recorder struct {
	opts Options
}

// New constructs a Recorder with the given options, filling in any
// zero-valued stream fields from the process's own stdio.
func New(opts Options) *Recorder {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Recorder{opts: opts}
}

// Record spawns argv[0] with argv[1:] under a PTY, records the session
// to <StorageRoot>/<agent>/<name>.cast, and returns that path once the
// child exits (or is killed by the guard). The lock file is held for
// the duration of the recording and removed on return.
func (r *Recorder) Record(agent string, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("recorder: argv must have at least one element")
	}

	cols, rows := r.size()
	dir := filepath.Join(r.opts.StorageRoot, agent)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("recorder: create storage dir %s: %w", dir, err)
	}

	stem, err := r.renderName(dir, agent)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, stem+".cast")

	fl, err := reclock.WriteLock(path)
	if err != nil {
		return "", err
	}
	defer reclock.RemoveLock(fl, path)

	cmd := exec.Command(argv[0], argv[1:]...)
	ptm, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return "", fmt.Errorf("recorder: spawn %s: %w", argv[0], err)
	}

	f, err := os.Create(path)
	if err != nil {
		ptm.Close()
		return "", fmt.Errorf("recorder: create %s: %w", path, err)
	}

	writer := &syncWriter{w: asciicast.NewWriter(f)}
	header := asciicast.Header{
		Version:   3,
		Term:      &asciicast.TermInfo{Cols: cols, Rows: rows},
		Title:     agent,
		Timestamp: time.Now().Unix(),
	}
	if err := writer.WriteHeader(header); err != nil {
		ptm.Close()
		f.Close()
		return "", err
	}

	g := guard.New()
	g.RegisterSignals()
	defer g.Stop()

	clock := newDeltaClock()

	restore := setRawMode(r.opts.Stdin)
	defer restore()

	done := make(chan struct{})
	outputDone := make(chan struct{})
	go r.copyInput(ptm, clock, writer, done)
	go func() {
		r.copyOutput(ptm, clock, writer)
		close(outputDone)
	}()

	waitErr := g.WaitOrKill(cmd)
	close(done)
	// ptm.Read unblocks with an error once the child exits and the PTY
	// slave closes, so copyOutput normally drains the child's final
	// output and returns on its own; Close is only forced after a grace
	// period, for a slave still held open (e.g. by a killed child's own
	// descendants).
	select {
	case <-outputDone:
	case <-time.After(2 * time.Second):
	}
	ptm.Close()
	<-outputDone

	writer.Flush()
	f.Close()

	// An interrupt or a dead parent takes priority over the child's own
	// exit status: WaitOrKill's Kill makes cmd.Wait return a plain
	// *exec.ExitError indistinguishable from a normal non-zero exit, so
	// the guard's own flag is the only reliable signal that this was a
	// deliberate stop rather than the child's own choice to fail.
	if g.IsInterrupted() {
		return path, castrecerr.ErrInterrupted
	}
	if waitErr != nil {
		if _, ok := waitErr.(*exec.ExitError); !ok {
			return path, waitErr
		}
	}
	return path, nil
}

// syncWriter serializes concurrent WriteEvent calls from the input and
// output copy goroutines onto the single underlying asciicast.Writer.
type syncWriter struct {
	mu sync.Mutex
	w  *asciicast.Writer
}

func (s *syncWriter) WriteHeader(h asciicast.Header) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.WriteHeader(h)
}

func (s *syncWriter) WriteEvent(e asciicast.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.WriteEvent(e)
}

func (s *syncWriter) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// renderName expands the configured name template against dir's
// existing recordings. Templates that reference {{randomName}} or
// {{autoIncrement .Directory}} (see tmpl.NameFuncs) get a name that is
// already collision-free by construction; for templates that don't
// (including DefaultTemplate, which is timestamp-based), a same-second
// collision is disambiguated with a UUID suffix rather than clobbering
// the existing recording.
func (r *Recorder) renderName(dir, agent string) (string, error) {
	if r.opts.Name != "" {
		return r.opts.Name, nil
	}
	existing, err := existingStems(dir)
	if err != nil {
		return "", err
	}
	generateName := func() string { return uuid.NewString()[:8] }
	wd, err := os.Getwd()
	if err != nil {
		wd = dir
	}
	ctx := tmpl.NewContext(agent, wd, time.Now())
	stem, err := tmpl.RenderWithExtraFuncs(r.opts.NameTemplate, ctx, tmpl.NameFuncs(generateName, existing))
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(filepath.Join(dir, stem+".cast")); err != nil {
		return stem, nil
	}
	return fmt.Sprintf("%s-%s", stem, generateName()), nil
}

// existingStems lists the ".cast"-less filename stems already present
// in dir, for NameFuncs' collision avoidance.
func existingStems(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	stems := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ext := filepath.Ext(name); ext == ".cast" {
			stems = append(stems, strings.TrimSuffix(name, ext))
		}
	}
	return stems, nil
}

func (r *Recorder) size() (cols, rows int) {
	if r.opts.Cols > 0 && r.opts.Rows > 0 {
		return r.opts.Cols, r.opts.Rows
	}
	if f, ok := r.opts.Stdout.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			return w, h
		}
	}
	return 80, 24
}

func setRawMode(in io.Reader) func() {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return func() {}
	}
	return func() { term.Restore(int(f.Fd()), state) }
}

// copyOutput streams PTY output to the attached terminal and records
// each read as an Output event.
func (r *Recorder) copyOutput(ptm *os.File, clock *deltaClock, w *syncWriter) {
	buf := make([]byte, 32*1024)
	for {
		n, err := ptm.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			r.opts.Stdout.Write(buf[:n])
			w.WriteEvent(asciicast.Event{Time: clock.tick(), Kind: asciicast.Output, Data: chunk})
		}
		if err != nil {
			return
		}
	}
}

// copyInput streams attached stdin to the PTY and records each write
// as an Input event, until done is closed.
func (r *Recorder) copyInput(ptm *os.File, clock *deltaClock, w *syncWriter, done <-chan struct{}) {
	buf := make([]byte, 4096)
	type readResult struct {
		n   int
		err error
	}
	results := make(chan readResult, 1)
	read := func() { n, err := r.opts.Stdin.Read(buf); results <- readResult{n, err} }
	go read()
	for {
		select {
		case <-done:
			return
		case res := <-results:
			if res.n > 0 {
				chunk := string(buf[:res.n])
				ptm.Write(buf[:res.n])
				w.WriteEvent(asciicast.Event{Time: clock.tick(), Kind: asciicast.Input, Data: chunk})
			}
			if res.err != nil {
				return
			}
			go read()
		}
	}
}

// deltaClock converts wall-clock reads into the non-negative, relative
// deltas asciicast v3 events require.
type deltaClock struct {
	last time.Time
}

func newDeltaClock() *deltaClock { return &deltaClock{last: time.Now()} }

func (c *deltaClock) tick() float64 {
	now := time.Now()
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		d = 0
	}
	return d
}
