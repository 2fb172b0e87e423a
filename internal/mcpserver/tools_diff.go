package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/fresha/openapi-diff/differ"
	"github.com/fresha/openapi-diff/parser"
)

type diffInput struct {
	Base     specInput `json:"base"     jsonschema:"The base/original OAS document"`
	Revision specInput `json:"revision" jsonschema:"The revised OAS document to compare against the base"`
}

type diffItem struct {
	Pointer  string `json:"pointer"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type diffOutput struct {
	Items           []diffItem    `json:"items,omitempty"`
	Counts          differ.Counts `json:"counts"`
	OutdatedVersion bool          `json:"outdated_version"`
	CurrentVersion  string        `json:"current_version"`
	NewVersion      string        `json:"new_version"`
	Summary         string        `json:"summary"`
}

func (s *Server) handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	var base, revision *parser.ParseResult
	var g errgroup.Group
	g.Go(func() error {
		r, err := s.resolve(input.Base)
		if err != nil {
			return fmt.Errorf("base: %w", err)
		}
		base = r
		return nil
	})
	g.Go(func() error {
		r, err := s.resolve(input.Revision)
		if err != nil {
			return fmt.Errorf("revision: %w", err)
		}
		revision = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return errResult(err), diffOutput{}, nil
	}

	d := differ.New(base.Document, revision.Document)
	if err := d.Calculate(); err != nil {
		return errResult(err), diffOutput{}, nil
	}

	output := diffOutput{
		Counts:          d.Counts(),
		OutdatedVersion: d.OutdatedVersion(),
		CurrentVersion:  revision.Document.InfoVersion(),
		NewVersion:      d.NewVersion(),
	}
	if n := len(d.Items()); n > 0 {
		output.Items = make([]diffItem, 0, n)
	}
	for _, item := range d.Items() {
		output.Items = append(output.Items, diffItem{
			Pointer:  item.Pointer(),
			Severity: item.Severity().String(),
			Message:  item.Message(),
		})
	}
	output.Summary = buildDiffSummary(d, output)

	return nil, output, nil
}

func buildDiffSummary(d *differ.Differ, output diffOutput) string {
	total := output.Counts.Total()
	if total == 0 {
		return "No changes detected; version " + output.NewVersion + " is current."
	}

	var buf bytes.Buffer
	buf.WriteString(formatCount(total, "change"))
	buf.WriteString(" found")
	if output.Counts.Major > 0 {
		buf.WriteString(" (" + formatCount(output.Counts.Major, "breaking change") + ")")
	}
	fmt.Fprintf(&buf, ". Next version: %s.\n", output.NewVersion)
	d.Summary(&buf)
	return buf.String()
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
