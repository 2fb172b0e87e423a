package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	openapidiff "github.com/fresha/openapi-diff"
	"github.com/fresha/openapi-diff/cmd/openapi-diff/commands"
	"github.com/fresha/openapi-diff/internal/cliutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches to a subcommand, or to the diff command when the first
// argument is not one, and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return commands.ExitError
	}

	var err error
	switch args[0] {
	case "version", "--version":
		cliutil.Writef(stdout, "openapi-diff\n%s\n", openapidiff.BuildInfo())
		return commands.ExitOK
	case "help":
		printUsage(stdout)
		return commands.ExitOK
	case "mcp":
		err = commands.HandleMCP(ctx, args[1:], stderr)
	default:
		err = commands.HandleDiff(ctx, args, stdout, stderr)
	}

	code := commands.ExitCode(err)
	if code == commands.ExitError {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

func printUsage(w io.Writer) {
	cliutil.Writef(w, `openapi-diff - semantic versioning for OpenAPI 3 documents

Usage:
  openapi-diff [flags] <old> <new>
  openapi-diff <command>

Commands:
  version    Show build information
  mcp        Serve the diff and parse tools over MCP on stdio
  help       Show this help message

Run 'openapi-diff -h' for the diff flags.
`)
}
