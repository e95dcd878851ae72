package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lox/interpreter-go/pkg/ast"
)

// Format names the serialization of a program document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported program file %s (expected .json, .yml or .yaml)", path)
	}
}

// LoadProgram reads and decodes a program document from disk.
func LoadProgram(path string) ([]ast.Stmt, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}
	stmts, err := DecodeProgram(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode program %s: %w", path, err)
	}
	return stmts, nil
}

// DecodeProgram decodes a program document: either a Program node or a bare
// list of statement nodes.
func DecodeProgram(data []byte, format Format) ([]ast.Stmt, error) {
	raw, err := unmarshalDocument(data, format)
	if err != nil {
		return nil, err
	}
	switch doc := raw.(type) {
	case []any:
		return decodeStatements(doc)
	case map[string]any:
		node, err := decodeNode(doc)
		if err != nil {
			return nil, err
		}
		switch n := node.(type) {
		case *ast.Program:
			return n.Statements, nil
		case ast.Stmt:
			return []ast.Stmt{n}, nil
		default:
			return nil, fmt.Errorf("document root must be a program or statement, found %s", node.NodeType())
		}
	case nil:
		return nil, fmt.Errorf("empty document")
	default:
		return nil, fmt.Errorf("document root must be an object or list, found %T", raw)
	}
}

// DecodeExpression decodes a single expression node.
func DecodeExpression(data []byte, format Format) (ast.Expr, error) {
	raw, err := unmarshalDocument(data, format)
	if err != nil {
		return nil, err
	}
	return decodeExpr(raw)
}

func unmarshalDocument(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
	return raw, nil
}
