package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fresha/openapi-diff/differ"
	"github.com/fresha/openapi-diff/internal/cliutil"
	"github.com/fresha/openapi-diff/internal/config"
	"github.com/fresha/openapi-diff/internal/pathutil"
	"github.com/fresha/openapi-diff/internal/watch"
	"github.com/fresha/openapi-diff/parser"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	PrintVersion  bool
	UpdateVersion bool
	Verbose       bool
	Format        string
	Validate      bool
	NoColor       bool
	Watch         bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Defaults for --format and --no-color come from cfg.
func SetupDiffFlags(cfg *config.Config) (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("openapi-diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.BoolVar(&flags.PrintVersion, "print-version", false, "print only the computed next version")
	fs.BoolVar(&flags.UpdateVersion, "update-version", false, "rewrite info.version of <new> in place when it is outdated")
	fs.BoolVar(&flags.Verbose, "verbose", false, "debug logging to stderr")
	fs.BoolVar(&flags.Verbose, "v", false, "debug logging to stderr")
	fs.StringVar(&flags.Format, "format", cfg.Format, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the structure of both documents")
	fs.BoolVar(&flags.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&flags.Watch, "watch", false, "re-run whenever either document changes")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: openapi-diff [flags] <old> <new>\n\n")
		cliutil.Writef(fs.Output(), "Compare two versions of an OpenAPI 3 document and propose the next version.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nSeverities:\n")
		cliutil.Writef(fs.Output(), "  major  Breaking changes: removed paths, operations or properties, type changes\n")
		cliutil.Writef(fs.Output(), "  minor  Additive changes: new paths, operations, optional parameters\n")
		cliutil.Writef(fs.Output(), "  patch  Documentation changes: descriptions, summaries\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  openapi-diff api-old.yaml api.yaml\n")
		cliutil.Writef(fs.Output(), "  openapi-diff --print-version api-old.yaml api.yaml\n")
		cliutil.Writef(fs.Output(), "  openapi-diff --update-version api-old.yaml api.yaml\n")
		cliutil.Writef(fs.Output(), "  openapi-diff --format json old.json new.json | jq '.new_version'\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    No differences found (always with --print-version, --update-version or --watch)\n")
		cliutil.Writef(fs.Output(), "  1    Differences found\n")
		cliutil.Writef(fs.Output(), "  2    The documents could not be compared\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  %s, %s and %s are read from the environment or a %s file.\n",
			config.EnvFormat, config.EnvNoColor, config.EnvWatchDebounce, config.DefaultDotEnv)
	}

	return fs, flags
}

// diffRun holds everything one comparison needs.
type diffRun struct {
	oldPath, newPath string
	flags            *DiffFlags
	logger           parser.Logger
	stdout           io.Writer
}

// HandleDiff executes the diff command. It returns ErrDifferencesFound when
// the documents differ and no version flag was given.
func HandleDiff(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.DefaultDotEnv)
	if err != nil {
		return err
	}

	fs, flags := SetupDiffFlags(cfg)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected exactly two documents, got %d", fs.NArg())
	}
	if err := config.ValidateFormat(flags.Format); err != nil {
		return err
	}
	if flags.PrintVersion && flags.UpdateVersion {
		return fmt.Errorf("--print-version and --update-version cannot be combined")
	}

	run := &diffRun{
		oldPath: fs.Arg(0),
		newPath: fs.Arg(1),
		flags:   flags,
		logger:  parser.NewTextLogger(stderr, flags.Verbose),
		stdout:  stdout,
	}

	if !flags.Watch {
		found, err := run.execute()
		if err != nil {
			return err
		}
		if found && !flags.PrintVersion && !flags.UpdateVersion {
			return ErrDifferencesFound
		}
		return nil
	}
	return run.watch(ctx, cfg.WatchDebounce, stderr)
}

// execute compares the documents once and writes the requested output. It
// reports whether any difference was found.
func (r *diffRun) execute() (bool, error) {
	source, target, err := differ.LoadPair(r.oldPath, r.newPath,
		parser.WithValidateStructure(r.flags.Validate),
		parser.WithLogger(r.logger),
	)
	if err != nil {
		return false, err
	}

	opts := []differ.Option{differ.WithLogger(r.logger)}
	if r.flags.NoColor {
		opts = append(opts, differ.WithColor(false))
	}
	d := differ.New(source.Document, target.Document, opts...)
	if err := d.Calculate(); err != nil {
		return false, err
	}
	found := len(d.Items()) > 0

	switch {
	case r.flags.PrintVersion:
		cliutil.Writeln(r.stdout, d.NewVersion())
	case r.flags.UpdateVersion:
		if d.OutdatedVersion() {
			if err := rewriteVersion(target, d.NewVersion()); err != nil {
				return found, err
			}
			r.logger.Info("updated info.version", "file", r.newPath, "version", d.NewVersion())
		}
		cliutil.Writeln(r.stdout, d.NewVersion())
	case r.flags.Format == config.FormatJSON || r.flags.Format == config.FormatYAML:
		if err := OutputStructured(r.stdout, d.Report(), r.flags.Format); err != nil {
			return found, err
		}
	default:
		d.Print(r.stdout)
		if found {
			cliutil.Writef(r.stdout, "\n")
			d.Summary(r.stdout)
		}
	}
	return found, nil
}

// rewriteVersion replaces info.version in the target's source file, keeping
// its format and permissions.
func rewriteVersion(target *parser.ParseResult, version string) error {
	path, perm, err := pathutil.ResolveRewriteTarget(target.SourcePath)
	if err != nil {
		return err
	}
	data, err := parser.SetInfoVersion(target.Raw, target.SourceFormat, version)
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", target.SourcePath, err)
	}
	if err := os.WriteFile(path, data, perm); err != nil { //nolint:gosec // path validated by ResolveRewriteTarget
		return fmt.Errorf("writing %s: %w", target.SourcePath, err)
	}
	return nil
}

// watch runs the comparison once, then again after every change to either
// document, until ctx is cancelled. Failures are reported and the loop goes on.
func (r *diffRun) watch(ctx context.Context, debounce time.Duration, stderr io.Writer) error {
	w, err := watch.New([]string{r.oldPath, r.newPath}, debounce, r.logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	once := func(context.Context) {
		if _, err := r.execute(); err != nil {
			cliutil.Writef(stderr, "Error: %v\n", err)
		}
		cliutil.Writef(stderr, "Watching %s and %s for changes...\n", r.oldPath, r.newPath)
	}
	once(ctx)
	return w.Run(ctx, once)
}
