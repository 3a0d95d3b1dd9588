package exporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
)

const jsonFormat = "json"

// JSONExporter writes the parsed document as a JSON object.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the output format name.
func (e *JSONExporter) Format() string {
	return jsonFormat
}

type jsonDocument struct {
	Source       string   `json:"source"`
	Format       string   `json:"format"`
	Concatenated bool     `json:"concatenated"`
	Text         *string  `json:"text,omitempty"`
	Rows         []string `json:"rows,omitempty"`
	Items        []any    `json:"items,omitempty"`
}

// Export encodes doc as indented JSON.
func (e *JSONExporter) Export(doc *domain.ParsedDocument, output io.Writer) error {
	out := jsonDocument{
		Source:       doc.Source,
		Format:       doc.Format,
		Concatenated: doc.Concatenated,
		Items:        jsonItems(doc.Items),
	}

	if doc.Concatenated {
		out.Text = &doc.Text
	} else {
		out.Rows = doc.Rows
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
