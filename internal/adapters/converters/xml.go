package converters

import (
	"fmt"
	"io"
	"os"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/GabrielNunesIT/doc-flattener/internal/xmltable"
)

const xmlFormat = "xml"

// TableLoader loads an XML document as a table.
type TableLoader interface {
	Load(r io.Reader, opts xmltable.Options) (*xmltable.Table, error)
}

// XMLOptions configures an XMLConverter.
type XMLOptions struct {
	ConcatRows bool
	ColJoiner  string
	RowJoiner  string

	// LibraryOptions is forwarded to the table loader; see xmltable.ParseOptions for the keys.
	LibraryOptions map[string]any
}

// DefaultXMLOptions returns the default XML converter options.
func DefaultXMLOptions() XMLOptions {
	return XMLOptions{
		ConcatRows:     true,
		ColJoiner:      defaultColJoiner,
		RowJoiner:      defaultRowJoiner,
		LibraryOptions: map[string]any{},
	}
}

// Kind implements domain.ConverterOptions.
func (XMLOptions) Kind() domain.Kind {
	return domain.KindXML
}

// XMLConverter flattens tabular XML files into text rows.
type XMLConverter struct {
	opts   XMLOptions
	table  xmltable.Options
	loader TableLoader
}

// NewXMLConverter creates a new XML converter. It fails with
// domain.ErrDependencyMissing when loader is nil and with
// domain.ErrInvalidOption when the library options are rejected.
func NewXMLConverter(opts XMLOptions, loader TableLoader) (*XMLConverter, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: xml table loader", domain.ErrDependencyMissing)
	}

	table, err := xmltable.ParseOptions(opts.LibraryOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOption, err)
	}

	return &XMLConverter{opts: opts, table: table, loader: loader}, nil
}

// Format returns the source format name.
func (c *XMLConverter) Format() string {
	return xmlFormat
}

// ParseFile loads the XML file at path as a table and joins its cells.
// The error mode is not consulted.
func (c *XMLConverter) ParseFile(path string, _ domain.ErrorMode) (*domain.ParsedDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := c.loader.Load(file, c.table)
	if err != nil {
		return nil, parseError(path, xmlFormat, err)
	}

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = row.Strings()
	}

	return assemble(path, xmlFormat, joinRows(rows, c.opts.ColJoiner), c.opts.ConcatRows, c.opts.RowJoiner), nil
}
