package driver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"skibidi/interpreter-go/pkg/ast"
)

// Format identifies how an AST document is serialized.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("program %s: unsupported file type %q (want .json, .yml or .yaml)", path, filepath.Ext(path))
	}
}

// LoadProgram reads and decodes the AST document at path.
func LoadProgram(path string) (ast.Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("program: read %s: %w", path, err)
	}
	node, err := DecodeProgram(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", path, err)
	}
	return node, nil
}

// DecodeProgram decodes a single AST document from r.
func DecodeProgram(r io.Reader, format Format) (ast.Node, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("document is empty")
			}
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if err := expectEOF(decoder.Decode); err != nil {
			return nil, err
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("document is empty")
			}
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		if err := expectEOF(decoder.Decode); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
	if raw == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return DecodeNode(raw)
}

// expectEOF rejects anything after the first value: further JSON values,
// garbage, or additional YAML documents.
func expectEOF(decode func(any) error) error {
	var extra any
	if err := decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("document has trailing content")
	}
	return nil
}
