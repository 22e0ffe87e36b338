package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/token"

	"github.com/matzehuels/graphlight/pkg/errors"
)

// Format is a document encoding.
type Format string

// Supported document encodings.
const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatGraph6 Format = "graph6"
)

// DetectFormat picks the document encoding from a file extension.
// Unknown extensions are read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".g6", ".graph6":
		return FormatGraph6
	default:
		return FormatJSON
	}
}

// ReadDocument decodes a document in the given format from r.
//
// YAML is converted to JSON first, so both encodings accept the same shapes.
// A graph6 stream holds a single graph6 string. Decoding failures are
// INVALID_INPUT errors. ReadDocument does not close r.
func ReadDocument(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	switch format {
	case FormatGraph6:
		s := strings.TrimSpace(string(data))
		s = strings.TrimPrefix(s, ">>graph6<<")
		if s == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "empty graph6 input")
		}
		return &Document{Graph6: s}, nil
	case FormatYAML:
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
		}
	case FormatJSON:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}

	var doc Document
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", format)
	}
	return &doc, nil
}

// yamlToJSON converts a YAML document to JSON. Flow collections left open
// at the end of the input are errors; the YAML decoder would otherwise close
// them silently.
func yamlToJSON(data []byte) ([]byte, error) {
	if err := checkFlowCollections(data); err != nil {
		return nil, err
	}
	return yaml.YAMLToJSON(data)
}

// checkFlowCollections reports the first unbalanced "[", "]", "{" or "}".
func checkFlowCollections(data []byte) error {
	var open []*token.Token
	for _, tk := range lexer.Tokenize(string(data)) {
		switch tk.Type {
		case token.SequenceStartType, token.MappingStartType:
			open = append(open, tk)
		case token.SequenceEndType, token.MappingEndType:
			if len(open) == 0 {
				return fmt.Errorf("line %d: unexpected %s", tk.Position.Line, flowBracket(tk.Type))
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		tk := open[len(open)-1]
		return fmt.Errorf("line %d, column %d: unclosed %s", tk.Position.Line, tk.Position.Column, flowBracket(tk.Type))
	}
	return nil
}

func flowBracket(t token.Type) string {
	switch t {
	case token.SequenceStartType:
		return `"["`
	case token.SequenceEndType:
		return `"]"`
	case token.MappingStartType:
		return `"{"`
	default:
		return `"}"`
	}
}

// ImportFile reads the document at path, choosing the encoding by extension.
// A missing file is a FILE_NOT_FOUND error.
func ImportFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadDocument(f, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
