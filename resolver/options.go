package resolver

import (
	"fmt"

	"github.com/apiweld/apiweld/welderrors"
)

// Option is a function that configures a welding run.
type Option func(*weldConfig) error

// weldConfig holds configuration for one Weld call.
type weldConfig struct {
	filePath string

	baseDir            string
	logger             Logger
	maxPasses          int
	maxFileSize        int64
	maxCachedDocuments int
	disableSynthesis   bool
	disableNormalizers bool
}

// Weld resolves the reference graph rooted at a document using functional
// options.
//
// Example:
//
//	result, err := resolver.Weld(
//	    resolver.WithFilePath("specification/api.yaml"),
//	    resolver.WithLogger(resolver.NewSlogAdapter(nil)),
//	)
func Weld(opts ...Option) (*Result, error) {
	cfg := &weldConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("resolver: invalid options: %w", err)
		}
	}
	if cfg.filePath == "" {
		return nil, &welderrors.ConfigError{Option: "WithFilePath", Message: "no root document specified"}
	}

	w := &Welder{
		BaseDir:            cfg.baseDir,
		Logger:             cfg.logger,
		MaxPasses:          cfg.maxPasses,
		MaxFileSize:        cfg.maxFileSize,
		MaxCachedDocuments: cfg.maxCachedDocuments,
		DisableSynthesis:   cfg.disableSynthesis,
		DisableNormalizers: cfg.disableNormalizers,
	}
	return w.Weld(cfg.filePath)
}

// WithFilePath sets the root document path. Required.
func WithFilePath(path string) Option {
	return func(cfg *weldConfig) error {
		if path == "" {
			return fmt.Errorf("file path must not be empty")
		}
		cfg.filePath = path
		return nil
	}
}

// WithBaseDir sets the directory external references resolve against.
// Defaults to the root document's directory.
func WithBaseDir(dir string) Option {
	return func(cfg *weldConfig) error {
		cfg.baseDir = dir
		return nil
	}
}

// WithLogger sets the structured logger for the run.
func WithLogger(logger Logger) Option {
	return func(cfg *weldConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithMaxPasses bounds the rewrite fixed-point iteration.
// Must be at least 1. Defaults to DefaultMaxPasses.
func WithMaxPasses(n int) Option {
	return func(cfg *weldConfig) error {
		if n < 1 {
			return fmt.Errorf("max passes must be at least 1, got %d", n)
		}
		cfg.maxPasses = n
		return nil
	}
}

// WithMaxFileSize limits the size in bytes of referenced files.
func WithMaxFileSize(n int64) Option {
	return func(cfg *weldConfig) error {
		if n < 1 {
			return fmt.Errorf("max file size must be positive, got %d", n)
		}
		cfg.maxFileSize = n
		return nil
	}
}

// WithoutSynthesis disables injection of the well-known fallback definitions.
func WithoutSynthesis() Option {
	return func(cfg *weldConfig) error {
		cfg.disableSynthesis = true
		return nil
	}
}

// WithoutNormalizers disables the post-resolution response deduplication and
// text sanitization passes.
func WithoutNormalizers() Option {
	return func(cfg *weldConfig) error {
		cfg.disableNormalizers = true
		return nil
	}
}
