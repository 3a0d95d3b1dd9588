// Package converters provides implementations for flattening structured files into text rows.
package converters

import (
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
)

const (
	defaultColJoiner = ", "
	defaultRowJoiner = "\n"
)

// joinRows joins the cells of every row with colJoiner.
func joinRows(rows [][]string, colJoiner string) []string {
	lines := make([]string, len(rows))
	for i, cells := range rows {
		lines[i] = strings.Join(cells, colJoiner)
	}

	return lines
}

// assemble builds the parsed document, concatenating lines with rowJoiner when concat is set.
func assemble(path, format string, lines []string, concat bool, rowJoiner string) *domain.ParsedDocument {
	doc := &domain.ParsedDocument{
		Source:       path,
		Format:       format,
		Concatenated: concat,
	}

	if concat {
		doc.Text = strings.Join(lines, rowJoiner)
	} else {
		doc.Rows = lines
	}

	return doc
}

func parseError(path, format string, err error) error {
	return &domain.ParseError{Path: path, Format: format, Err: err}
}
