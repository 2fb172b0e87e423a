package commands

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/fresha/openapi-diff/internal/cliutil"
	"github.com/fresha/openapi-diff/internal/config"
	"github.com/fresha/openapi-diff/internal/mcpserver"
)

// HandleMCP serves the MCP tools on stdio until ctx is cancelled or the
// client disconnects.
func HandleMCP(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: openapi-diff mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the diff and parse tools over the Model Context Protocol on stdio.\n")
		cliutil.Writef(fs.Output(), "Settings are read from OPENAPI_DIFF_* environment variables or a %s file.\n", config.DefaultDotEnv)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(config.DefaultDotEnv)
	if err != nil {
		return err
	}
	return mcpserver.Run(ctx, cfg)
}
