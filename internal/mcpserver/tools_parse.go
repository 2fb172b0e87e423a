package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fresha/openapi-diff/parser"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to parse"`
}

type parseOutput struct {
	OpenAPI        string         `json:"openapi"`
	Title          string         `json:"title"`
	Version        string         `json:"version"`
	ID             string         `json:"x_id,omitempty"`
	Format         string         `json:"format"`
	PathCount      int            `json:"path_count"`
	OperationCount int            `json:"operation_count"`
	SchemaCount    int            `json:"schema_count"`
	SchemaKinds    map[string]int `json:"schema_kinds,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
}

func (s *Server) handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := s.resolve(input.Spec)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	doc := result.Document
	output := parseOutput{
		OpenAPI:        result.Version,
		Version:        doc.InfoVersion(),
		Format:         string(result.SourceFormat),
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
		SchemaKinds:    result.Stats.SchemaKinds,
		Warnings:       result.Warnings,
	}
	if doc.Info != nil {
		output.Title = doc.Info.Title
	}
	if id, ok := doc.Info.Extension(parser.ExtensionID); ok && id != nil {
		output.ID = fmt.Sprint(id)
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}

	return nil, output, nil
}
