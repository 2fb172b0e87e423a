// Package commands provides CLI command handlers for openapi-diff.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/fresha/openapi-diff/internal/cliutil"
	"github.com/fresha/openapi-diff/internal/config"
)

// Exit codes of the openapi-diff binary.
const (
	ExitOK          = 0
	ExitDifferences = 1
	ExitError       = 2
)

// ErrDifferencesFound is returned by HandleDiff when the documents differ.
// It is a result, not a failure: main maps it to ExitDifferences without
// printing anything.
var ErrDifferencesFound = errors.New("differences found")

// ExitCode maps the error returned by a handler to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrDifferencesFound):
		return ExitDifferences
	default:
		return ExitError
	}
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case config.FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case config.FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s", out)
	return nil
}
