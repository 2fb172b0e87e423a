package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/fresha/openapi-diff/oaserrors"
)

// DefaultMaxFileSize is the largest document the parser accepts by default.
const DefaultMaxFileSize int64 = 32 << 20

// Parser handles OpenAPI document parsing.
type Parser struct {
	// ValidateStructure runs full structural validation after decoding.
	// Validation failures are reported in ParseResult.Errors; they do not
	// fail the parse.
	ValidateStructure bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
	// MaxFileSize is the maximum document size in bytes (0 means DefaultMaxFileSize).
	MaxFileSize int64
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) log() Logger {
	return loggerOrNop(p.Logger)
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// ParseResult contains a parsed OpenAPI document and metadata about its source.
//
// Callers should treat ParseResult as read-only; documents may be cached and
// shared between comparisons.
type ParseResult struct {
	// SourcePath is the path the document was read from. For in-memory input
	// it is "ParseBytes.yaml", "ParseBytes.json" or the name set with WithSourceName.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML).
	SourceFormat SourceFormat
	// Version is the document's "openapi" field (e.g., "3.0.3").
	Version string
	// Document is the decoded document.
	Document *Document
	// Errors contains validation errors; parse failures are returned directly.
	Errors []error
	// Warnings contains non-fatal issues found while decoding.
	Warnings []string
	// LoadTime is the time taken to read the source.
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes.
	SourceSize int64
	// Stats counts paths, operations and schemas.
	Stats DocumentStats
	// Raw holds the source bytes, used when rewriting info.version in place.
	Raw []byte
}

// Parse reads and parses the OpenAPI document at specPath.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an OpenAPI document from an io.Reader.
// The SourcePath of the result is ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, p.maxFileSize()+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data, "")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses an OpenAPI document from a byte slice.
// The SourcePath of the result is ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parse(data, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) readFile(specPath string) ([]byte, error) {
	info, err := os.Stat(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if info.Size() > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    specPath,
			Message: fmt.Sprintf("file size %s exceeds limit of %s", FormatBytes(info.Size()), FormatBytes(p.maxFileSize())),
		}
	}
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return data, nil
}

func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	if int64(len(data)) > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: fmt.Sprintf("document size exceeds limit of %s", FormatBytes(p.maxFileSize())),
		}
	}

	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: detectFormatFromContent(data),
		SourceSize:   int64(len(data)),
		Errors:       make([]error, 0),
		Warnings:     make([]string, 0),
		Raw:          data,
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "failed to parse YAML/JSON", Cause: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}
	body := root.Content[0]
	if body.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    body.Line,
			Column:  body.Column,
			Message: "document root must be a mapping",
		}
	}

	version, line, err := detectVersion(body)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Line: line, Message: err.Error()}
	}
	result.Version = version

	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: fmt.Sprintf("failed to decode OAS %s document structure", version),
			Cause:   err,
		}
	}
	result.Document = &doc
	result.Stats = GetDocumentStats(&doc)
	result.Warnings = append(result.Warnings, checkStructure(&doc)...)

	p.log().Debug("decoded document",
		"path", sourcePath,
		"format", result.SourceFormat,
		"openapi", version,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount)

	if p.ValidateStructure {
		if err := Validate(context.Background(), data); err != nil {
			result.Errors = append(result.Errors, &oaserrors.ValidationError{Path: sourcePath, Cause: err})
		}
	}

	return result, nil
}

// detectVersion reads the "openapi" field of the root mapping.
func detectVersion(body *yaml.Node) (string, int, error) {
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, val := body.Content[i], body.Content[i+1]
		switch key.Value {
		case "openapi":
			if !IsSupportedVersion(val.Value) {
				return "", val.Line, fmt.Errorf("unsupported OpenAPI version: %s (only 3.x versions are supported)", val.Value)
			}
			return val.Value, val.Line, nil
		case "swagger":
			return "", val.Line, fmt.Errorf("unsupported OpenAPI version: swagger %s (only 3.x versions are supported)", val.Value)
		}
	}
	return "", 0, fmt.Errorf("missing openapi version field")
}

// checkStructure reports inexpensive structural problems as warnings.
func checkStructure(doc *Document) []string {
	var warnings []string
	if doc.Info == nil {
		return append(warnings, "info object is missing")
	}
	if doc.Info.Title == "" {
		warnings = append(warnings, "info.title is empty")
	}
	if doc.Info.Version == "" {
		warnings = append(warnings, "info.version is empty")
	}
	for path := range doc.Paths.Items {
		if !strings.HasPrefix(path, "/") {
			warnings = append(warnings, fmt.Sprintf("path %q does not begin with a slash", path))
		}
	}
	return warnings
}
