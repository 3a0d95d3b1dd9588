// Package domain provides core models and interfaces for the document flattener.
package domain

// ParsedDocument is the flattened result of a single ParseFile call.
type ParsedDocument struct {
	Source       string // path of the parsed file
	Format       string
	Concatenated bool

	// Text holds every row joined together when Concatenated is set.
	Text string

	// Rows holds one string per source row or item when Concatenated is unset.
	Rows []string

	// Items holds the raw deserialized values for formats that have them
	// (YAML). Only set when Concatenated is unset.
	Items []any
}

// Len returns the number of output strings.
func (d *ParsedDocument) Len() int {
	if d.Concatenated {
		return 1
	}

	return len(d.Rows)
}

// Strings returns the document as a list of strings: the joined text when
// concatenated, the rows otherwise.
func (d *ParsedDocument) Strings() []string {
	if d.Concatenated {
		return []string{d.Text}
	}

	return d.Rows
}
