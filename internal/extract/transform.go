package extract

import "castrec/internal/asciicast"

// Event is the extraction pipeline's working unit: an asciicast event
// carried through the chain of transforms below.
type Event = asciicast.Event

// Re-exported so transform implementations in this package can compare
// against e.Kind without importing asciicast directly.
const (
	Output = asciicast.Output
	Input  = asciicast.Input
	Marker = asciicast.Marker
	Resize = asciicast.Resize
)

// Logger receives warnings from transforms that recover from a per-event
// failure. A bad event is skipped with a warning, never fatal to the run.
type Logger interface {
	Warnf(format string, args ...any)
}

// NopLogger discards every message. The zero value is ready to use.
type NopLogger struct{}

func (NopLogger) Warnf(string, ...any) {}

// Transform is one stage of the extraction pipeline: (config, events) →
// events. A Transform must never introduce new events and must never
// grow the total byte size of the stream; it may only drop, merge, or
// shrink.
type Transform func(cfg Config, events []Event, log Logger) []Event

// namedTransform pairs a Transform with a name, used for gating on the
// matching Config boolean and for diagnostics.
type namedTransform struct {
	name    string
	enabled func(Config) bool
	run     Transform
}

// Pipeline is the fixed-order chain of transforms applied to a raw event
// stream before segmentation.
type Pipeline struct {
	stages []namedTransform
}

// DefaultPipeline returns the fixed transform order: cleaner,
// dedupe-progress, normalize-whitespace, filter-empty,
// similarity-collapse, event-coalesce, global-dedupe, windowed-dedupe,
// block-truncate, file-dump filter.
func DefaultPipeline() Pipeline {
	return Pipeline{stages: []namedTransform{
		{"content-cleaner", func(Config) bool { return true }, ContentCleaner},
		{"dedupe-progress", func(c Config) bool { return c.DedupeProgress }, DeduplicateProgressLines},
		{"normalize-whitespace", func(c Config) bool { return c.NormalizeWhitespace }, NormalizeWhitespace},
		{"filter-empty", func(Config) bool { return true }, FilterEmptyEvents},
		{"similarity-collapse", func(c Config) bool { return c.CollapseSimilar }, SimilarityFilter},
		{"event-coalesce", func(c Config) bool { return c.CoalesceEvents }, EventCoalescer},
		{"global-dedupe", func(Config) bool { return true }, GlobalDeduplicator},
		{"windowed-dedupe", func(Config) bool { return true }, WindowedLineDeduplicator},
		{"block-truncate", func(c Config) bool { return c.TruncateLargeBlocks }, BlockTruncator},
		{"file-dump-filter", func(Config) bool { return true }, FileDumpFilter},
	}}
}

// Run validates cfg up front, then folds every enabled stage over
// events in order, returning the fully cleaned stream.
func (p Pipeline) Run(cfg Config, events []Event, log Logger) ([]Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = NopLogger{}
	}
	out := events
	for _, stage := range p.stages {
		if !stage.enabled(cfg) {
			continue
		}
		out = stage.run(cfg, out, log)
	}
	return out, nil
}
