// Package exporters renders parsed documents to output formats.
package exporters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
)

// ForFormat returns the exporter for an output format name.
func ForFormat(format string) (domain.Exporter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return NewTextExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	case "pdf":
		return NewPDFExporter(), nil
	case "docx", "word":
		return NewDocxExporter(), nil
	case "confluence", "adf":
		return NewADFExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: text, json, pdf, docx, confluence)", domain.ErrUnsupportedFormat, format)
	}
}

// documentTitle returns the file name of the parsed source.
func documentTitle(doc *domain.ParsedDocument) string {
	if doc.Source == "" {
		return "Untitled"
	}

	return filepath.Base(doc.Source)
}

// documentSummary returns a one-line description of the document shape.
func documentSummary(doc *domain.ParsedDocument) string {
	if doc.Concatenated {
		return fmt.Sprintf("Format: %s, concatenated", doc.Format)
	}

	return fmt.Sprintf("Format: %s, %d rows", doc.Format, doc.Len())
}

// jsonValue converts decoded YAML into a value encoding/json accepts.
// Mappings with non-string keys become map[string]any keyed by fmt.Sprint.
func jsonValue(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = jsonValue(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonValue(item)
		}

		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonValue(item)
		}

		return out
	default:
		return v
	}
}

// jsonItems applies jsonValue to every item, keeping nil as nil.
func jsonItems(items []any) []any {
	if items == nil {
		return nil
	}

	out := make([]any, len(items))
	for i, item := range items {
		out[i] = jsonValue(item)
	}

	return out
}
