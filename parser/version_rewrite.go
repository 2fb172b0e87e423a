package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.yaml.in/yaml/v4"
)

// ErrNoInfoVersion is returned by SetInfoVersion when the document has no
// info.version scalar to rewrite.
var ErrNoInfoVersion = errors.New("parser: info.version not found")

// SetInfoVersion returns a copy of data with the info.version value replaced.
// Every other byte of the document is kept: key order, comments, indentation
// and the quoting style of the version itself. A SourceFormatUnknown format
// is detected from the content.
func SetInfoVersion(data []byte, format SourceFormat, version string) ([]byte, error) {
	if format == SourceFormatUnknown || format == "" {
		format = detectFormatFromContent(data)
	}
	switch format {
	case SourceFormatJSON:
		return setJSONInfoVersion(data, version)
	case SourceFormatYAML:
		return setYAMLInfoVersion(data, version)
	default:
		return nil, fmt.Errorf("parser: cannot rewrite version in %s document", format)
	}
}

func setJSONInfoVersion(data []byte, version string) ([]byte, error) {
	if !gjson.GetBytes(data, "info.version").Exists() {
		return nil, ErrNoInfoVersion
	}
	out, err := sjson.SetBytes(data, "info.version", version)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to rewrite info.version: %w", err)
	}
	return out, nil
}

func setYAMLInfoVersion(data []byte, version string) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parser: failed to parse YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, ErrNoInfoVersion
	}
	node := mappingValue(mappingValue(root.Content[0], "info"), "version")
	if node == nil || node.Kind != yaml.ScalarNode {
		return nil, ErrNoInfoVersion
	}

	start, err := offsetOf(data, node.Line, node.Column)
	if err != nil {
		return nil, err
	}
	end, err := scalarEnd(data, start, node)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(data) - (end - start) + len(version) + 2)
	out.Write(data[:start])
	out.WriteString(quoteScalar(version, node.Style))
	out.Write(data[end:])
	return out.Bytes(), nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// offsetOf converts a 1-based line and rune column into a byte offset.
func offsetOf(data []byte, line, column int) (int, error) {
	off := 0
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(data[off:], '\n')
		if i < 0 {
			return 0, fmt.Errorf("parser: line %d is out of range", line)
		}
		off += i + 1
	}
	for c := 1; c < column; c++ {
		if off >= len(data) || data[off] == '\n' {
			return 0, fmt.Errorf("parser: column %d is out of range on line %d", column, line)
		}
		_, size := utf8.DecodeRune(data[off:])
		off += size
	}
	return off, nil
}

// scalarEnd returns the byte offset just past the scalar starting at start.
func scalarEnd(data []byte, start int, node *yaml.Node) (int, error) {
	switch node.Style {
	case yaml.DoubleQuotedStyle:
		for i := start + 1; i < len(data); i++ {
			switch data[i] {
			case '\\':
				i++
			case '"':
				return i + 1, nil
			}
		}
	case yaml.SingleQuotedStyle:
		for i := start + 1; i < len(data); i++ {
			if data[i] != '\'' {
				continue
			}
			if i+1 < len(data) && data[i+1] == '\'' {
				i++
				continue
			}
			return i + 1, nil
		}
	case 0:
		if bytes.HasPrefix(data[start:], []byte(node.Value)) {
			return start + len(node.Value), nil
		}
	}
	return 0, fmt.Errorf("parser: unsupported info.version scalar at line %d", node.Line)
}

func quoteScalar(v string, style yaml.Style) string {
	switch style {
	case yaml.DoubleQuotedStyle:
		return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
	case yaml.SingleQuotedStyle:
		return `'` + strings.ReplaceAll(v, `'`, `''`) + `'`
	default:
		return v
	}
}
