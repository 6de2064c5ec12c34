package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fundsflow/fundsflow/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an import file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported import file %q: expected .json, .yaml or .yml", filepath.Base(path))
	}
}

// Parse decodes a single fund tree. The document is the root node itself,
// with amounts in paise. Unknown fields are rejected so that typos such as
// "alocated" do not silently drop data.
func Parse(data []byte, format Format) (*domain.FundNode, error) {
	var root domain.FundNode
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&root); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		if dec.More() {
			return nil, errors.New("parsing import file: more than one JSON document")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("parsing import file: document is empty")
			}
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown import format %q", format)
	}
	return &root, nil
}

// LoadTree reads and parses the tree at path without validating it.
func LoadTree(path string) (*domain.FundNode, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}
