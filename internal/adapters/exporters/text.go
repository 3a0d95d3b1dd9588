package exporters

import (
	"io"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
)

const textFormat = "text"

// TextExporter writes the flattened text as is, one row per line.
type TextExporter struct{}

// NewTextExporter creates a new text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Format returns the output format name.
func (e *TextExporter) Format() string {
	return textFormat
}

// Export writes every string of doc, terminating each with a newline
// unless it already ends with one.
func (e *TextExporter) Export(doc *domain.ParsedDocument, output io.Writer) error {
	for _, s := range doc.Strings() {
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}

		if _, err := io.WriteString(output, s); err != nil {
			return err
		}
	}

	return nil
}
