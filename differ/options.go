package differ

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fresha/openapi-diff/oaserrors"
	"github.com/fresha/openapi-diff/parser"
)

// Option is a function that configures a diff operation
type Option func(*diffConfig) error

// diffConfig holds configuration for a diff operation
type diffConfig struct {
	// Source input (exactly one must be set)
	sourceFilePath *string
	sourceParsed   *parser.ParseResult

	// Target input (exactly one must be set)
	targetFilePath *string
	targetParsed   *parser.ParseResult

	validateStructure bool
	logger            parser.Logger
	color             *bool
}

// DiffWithOptions parses the inputs that are given as files, concurrently,
// and compares them.
//
// Example:
//
//	d, err := differ.DiffWithOptions(
//	    differ.WithSourceFilePath("api-v1.yaml"),
//	    differ.WithTargetFilePath("api-v2.yaml"),
//	)
//
// The Differ is returned alongside a Calculate error so that callers can
// still inspect what was recorded.
func DiffWithOptions(opts ...Option) (*Differ, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	source, target, err := load(cfg)
	if err != nil {
		return nil, err
	}

	d := New(source.Document, target.Document, opts...)
	if err := d.Calculate(); err != nil {
		return d, err
	}
	return d, nil
}

// LoadPair parses the source and target files concurrently. Structural
// validation failures recorded by the parser are returned as an error.
func LoadPair(sourcePath, targetPath string, opts ...parser.Option) (source, target *parser.ParseResult, err error) {
	var g errgroup.Group
	g.Go(func() error {
		r, err := parseFile("source", sourcePath, opts)
		source = r
		return err
	})
	g.Go(func() error {
		r, err := parseFile("target", targetPath, opts)
		target = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

// load resolves both inputs, parsing the file-based ones in parallel.
func load(cfg *diffConfig) (source, target *parser.ParseResult, err error) {
	popts := []parser.Option{parser.WithValidateStructure(cfg.validateStructure)}
	if cfg.logger != nil {
		popts = append(popts, parser.WithLogger(cfg.logger))
	}

	source, target = cfg.sourceParsed, cfg.targetParsed
	var g errgroup.Group
	if cfg.sourceFilePath != nil {
		g.Go(func() error {
			r, err := parseFile("source", *cfg.sourceFilePath, popts)
			source = r
			return err
		})
	}
	if cfg.targetFilePath != nil {
		g.Go(func() error {
			r, err := parseFile("target", *cfg.targetFilePath, popts)
			target = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

func parseFile(role, path string, opts []parser.Option) (*parser.ParseResult, error) {
	all := make([]parser.Option, 0, len(opts)+1)
	all = append(all, parser.WithFilePath(path))
	all = append(all, opts...)

	result, err := parser.ParseWithOptions(all...)
	if err != nil {
		return nil, fmt.Errorf("differ: failed to parse %s: %w", role, err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("differ: %s document %s is invalid: %w", role, path, errors.Join(result.Errors...))
	}
	return result, nil
}

// collectOptions applies every option, joining the errors of those that
// reject their argument. Rejected options leave cfg untouched.
func collectOptions(opts []Option) (*diffConfig, error) {
	cfg := &diffConfig{}
	var errs []error
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return cfg, errors.Join(errs...)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*diffConfig, error) {
	cfg, err := collectOptions(opts)
	if err != nil {
		return nil, err
	}

	sourceCount := 0
	if cfg.sourceFilePath != nil {
		sourceCount++
	}
	if cfg.sourceParsed != nil {
		sourceCount++
	}
	if sourceCount == 0 {
		return nil, &oaserrors.ConfigError{Option: "source", Message: "must specify a source (use WithSourceFilePath or WithSourceParsed)"}
	}
	if sourceCount > 1 {
		return nil, &oaserrors.ConfigError{Option: "source", Message: "must specify exactly one source"}
	}

	targetCount := 0
	if cfg.targetFilePath != nil {
		targetCount++
	}
	if cfg.targetParsed != nil {
		targetCount++
	}
	if targetCount == 0 {
		return nil, &oaserrors.ConfigError{Option: "target", Message: "must specify a target (use WithTargetFilePath or WithTargetParsed)"}
	}
	if targetCount > 1 {
		return nil, &oaserrors.ConfigError{Option: "target", Message: "must specify exactly one target"}
	}

	return cfg, nil
}

// WithSourceFilePath specifies a file path as the source (old) document
func WithSourceFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.sourceFilePath = &path
		return nil
	}
}

// WithSourceParsed specifies an already parsed source document
func WithSourceParsed(result *parser.ParseResult) Option {
	return func(cfg *diffConfig) error {
		if result == nil || result.Document == nil {
			return &oaserrors.ConfigError{Option: "WithSourceParsed", Message: "parse result has no document"}
		}
		cfg.sourceParsed = result
		return nil
	}
}

// WithTargetFilePath specifies a file path as the target (new) document
func WithTargetFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.targetFilePath = &path
		return nil
	}
}

// WithTargetParsed specifies an already parsed target document
func WithTargetParsed(result *parser.ParseResult) Option {
	return func(cfg *diffConfig) error {
		if result == nil || result.Document == nil {
			return &oaserrors.ConfigError{Option: "WithTargetParsed", Message: "parse result has no document"}
		}
		cfg.targetParsed = result
		return nil
	}
}

// WithValidateStructure enables structural validation of file inputs
func WithValidateStructure(enabled bool) Option {
	return func(cfg *diffConfig) error {
		cfg.validateStructure = enabled
		return nil
	}
}

// WithLogger sets the logger for progress messages
func WithLogger(l parser.Logger) Option {
	return func(cfg *diffConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithColor forces colored output of Print on or off. By default color is
// used only when the writer is a terminal and NO_COLOR is unset.
func WithColor(enabled bool) Option {
	return func(cfg *diffConfig) error {
		cfg.color = &enabled
		return nil
	}
}
