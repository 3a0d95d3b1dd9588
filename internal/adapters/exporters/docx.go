package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const docxFormat = "docx"

// DocxExporter renders parsed documents as Word (DOCX) files.
type DocxExporter struct{}

// NewDocxExporter creates a new DOCX exporter.
func NewDocxExporter() *DocxExporter {
	return &DocxExporter{}
}

// Format returns the output format name.
func (e *DocxExporter) Format() string {
	return docxFormat
}

// Export writes doc as a DOCX document with one paragraph per line.
func (e *DocxExporter) Export(doc *domain.ParsedDocument, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	e.addTitle(document, doc)
	e.addRows(document, doc)

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (e *DocxExporter) addTitle(document *docx.RootDoc, doc *domain.ParsedDocument) {
	_, _ = document.AddHeading(documentTitle(doc), 0)
	document.AddParagraph(documentSummary(doc))
	document.AddEmptyParagraph()
}

func (e *DocxExporter) addRows(document *docx.RootDoc, doc *domain.ParsedDocument) {
	for i, s := range doc.Strings() {
		if !doc.Concatenated {
			_, _ = document.AddHeading(fmt.Sprintf("Row %d", i+1), 2)
		}

		// Word paragraphs do not carry line breaks.
		for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
			document.AddParagraph(line)
		}
	}
}
