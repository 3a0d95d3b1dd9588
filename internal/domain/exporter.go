package domain

import "io"

// Exporter renders a parsed document to an output format.
type Exporter interface {
	// Export writes doc to output.
	Export(doc *ParsedDocument, output io.Writer) error

	// Format returns the output format name (e.g., "pdf", "docx").
	Format() string
}
