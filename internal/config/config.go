// Package config loads castrec's on-disk configuration: the storage
// root for recordings, the filename template, and analysis defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"castrec/internal/extract"
)

// Config is castrec's persisted configuration, loaded from
// ~/.castrec/config.yaml.
type Config struct {
	// StorageRoot is the directory recordings are written under, one
	// subdirectory per agent name. Defaults to ~/.castrec/recordings.
	StorageRoot string `yaml:"storage_root"`

	// NameTemplate is the text/template expression used to name new
	// recordings (see internal/tmpl). Empty uses tmpl.DefaultTemplate.
	NameTemplate string `yaml:"name_template"`

	// Agent configures the analyzer's LLM-agent binary resolution.
	Agent AgentConfig `yaml:"agent"`

	// Extraction overrides the extraction pipeline's defaults. Any
	// zero-valued field keeps extract.DefaultConfig()'s value — Load
	// merges onto the defaults rather than replacing them wholesale.
	Extraction ExtractionOverrides `yaml:"extraction"`
}

// AgentConfig controls how the analyzer resolves which LLM-agent
// binary to invoke.
type AgentConfig struct {
	// Binary, if set, is used verbatim and the PATH cascade is skipped.
	Binary string `yaml:"binary"`
}

// ExtractionOverrides mirrors extract.Config but with pointer/zero
// semantics so an absent YAML key doesn't clobber a default.
type ExtractionOverrides struct {
	DedupeProgress      *bool    `yaml:"dedupe_progress"`
	NormalizeWhitespace *bool    `yaml:"normalize_whitespace"`
	CollapseSimilar     *bool    `yaml:"collapse_similar"`
	SimilarityThreshold *float64 `yaml:"similarity_threshold"`
	SegmentTimeGap      *float64 `yaml:"segment_time_gap"`
	MaxLineRepeats      *int     `yaml:"max_line_repeats"`
	TruncateLargeBlocks *bool    `yaml:"truncate_large_blocks"`
	MaxBlockSize        *int     `yaml:"max_block_size"`
}

// Apply layers o onto extract.DefaultConfig(), returning the merged
// pipeline configuration.
func (o ExtractionOverrides) Apply() extract.Config {
	cfg := extract.DefaultConfig()
	if o.DedupeProgress != nil {
		cfg.DedupeProgress = *o.DedupeProgress
	}
	if o.NormalizeWhitespace != nil {
		cfg.NormalizeWhitespace = *o.NormalizeWhitespace
	}
	if o.CollapseSimilar != nil {
		cfg.CollapseSimilar = *o.CollapseSimilar
	}
	if o.SimilarityThreshold != nil {
		cfg.SimilarityThreshold = *o.SimilarityThreshold
	}
	if o.SegmentTimeGap != nil {
		cfg.SegmentTimeGap = *o.SegmentTimeGap
	}
	if o.MaxLineRepeats != nil {
		cfg.MaxLineRepeats = *o.MaxLineRepeats
	}
	if o.TruncateLargeBlocks != nil {
		cfg.TruncateLargeBlocks = *o.TruncateLargeBlocks
	}
	if o.MaxBlockSize != nil {
		cfg.MaxBlockSize = *o.MaxBlockSize
	}
	return cfg
}

// ConfigDir returns castrec's configuration directory (~/.castrec).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".castrec")
	}
	return filepath.Join(home, ".castrec")
}

// DefaultStorageRoot returns the default recordings directory,
// ~/.castrec/recordings.
func DefaultStorageRoot() string {
	return filepath.Join(ConfigDir(), "recordings")
}

// Load reads castrec's config from ~/.castrec/config.yaml. If the file
// does not exist, it returns a Config with only the built-in defaults.
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(ConfigDir(), "config.yaml"))
}

// LoadFrom reads castrec's config from the given path. If the file
// does not exist, it returns a Config with only the built-in defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{StorageRoot: DefaultStorageRoot()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.StorageRoot == "" {
		cfg.StorageRoot = DefaultStorageRoot()
	}
	if err := cfg.Extraction.Apply().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
