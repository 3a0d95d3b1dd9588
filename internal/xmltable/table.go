// Package xmltable loads XML documents as flat tables: an XPath expression
// selects the row elements, and each row's attributes and child elements
// become its named columns.
package xmltable

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRows is returned when the row XPath selects nothing.
	ErrNoRows = errors.New("xpath does not select any elements")

	// ErrNoColumns is returned when no selected row has attributes or child elements.
	ErrNoColumns = errors.New("selected rows have no attributes or child elements")
)

// Cell is one named value of a row. Null cells carry the configured NA text.
type Cell struct {
	Name  string
	Value string
	Null  bool
}

// String returns the cell text.
func (c Cell) String() string {
	return c.Value
}

// Row is an ordered list of cells, one per table column.
type Row []Cell

// Strings returns the text of every cell in column order.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, cell := range r {
		out[i] = cell.String()
	}

	return out
}

// Table is the tabular view of an XML document.
type Table struct {
	Columns []string
	Rows    []Row
}

// Loader reads XML into tables. The zero value is ready to use.
type Loader struct{}

// Load parses r and extracts a table according to opts.
func (Loader) Load(r io.Reader, opts Options) (*Table, error) {
	doc, err := xmlquery.ParseWithOptions(r, xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict:        opts.Strict,
			CharsetReader: charset.NewReaderLabel,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read XML: %w", err)
	}

	expr, err := xpath.CompileWithNS(opts.XPath, opts.Namespaces)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", opts.XPath, err)
	}

	nodes, err := selectRows(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath %q: %w", opts.XPath, err)
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRows, opts.XPath)
	}

	records := make([]record, 0, len(nodes))
	columns := newColumnSet()

	for _, node := range nodes {
		rec := extractRecord(node, opts)
		for _, f := range rec {
			columns.add(f.name)
		}

		records = append(records, rec)
	}

	if columns.len() == 0 {
		return nil, ErrNoColumns
	}

	table := &Table{Columns: columns.names}

	for _, rec := range records {
		table.Rows = append(table.Rows, rec.row(columns.names, opts.NARep))
	}

	if len(opts.Names) > 0 {
		if len(opts.Names) != len(table.Columns) {
			return nil, fmt.Errorf("%d names given for %d columns", len(opts.Names), len(table.Columns))
		}

		table.rename(opts.Names)
	}

	return table, nil
}

func (t *Table) rename(names []string) {
	t.Columns = append([]string(nil), names...)

	for _, row := range t.Rows {
		for i := range row {
			row[i].Name = names[i]
		}
	}
}

// selectRows evaluates expr with the root element as the context node, so
// relative expressions such as "./*" address the root's children.
func selectRows(doc *xmlquery.Node, expr *xpath.Expr) ([]*xmlquery.Node, error) {
	nav := xmlquery.CreateXPathNavigator(doc)
	if !nav.MoveToChild() {
		return nil, errors.New("document has no root element")
	}

	for nav.Current().Type != xmlquery.ElementNode {
		if !nav.MoveToNext() {
			return nil, errors.New("document has no root element")
		}
	}

	var nodes []*xmlquery.Node

	iter := expr.Select(nav)
	for iter.MoveNext() {
		cur, ok := iter.Current().(*xmlquery.NodeNavigator)
		if !ok || cur.NodeType() != xpath.ElementNode || cur.Current().Type != xmlquery.ElementNode {
			return nil, errors.New("selects non-element nodes")
		}

		nodes = append(nodes, cur.Current())
	}

	return nodes, nil
}

type field struct {
	name  string
	value string
	null  bool
}

// record is a row before it is aligned to the table's columns.
type record []field

func (r record) lookup(name string) (field, bool) {
	for _, f := range r {
		if f.name == name {
			return f, true
		}
	}

	return field{}, false
}

func (r record) set(f field) record {
	for i := range r {
		if r[i].name == f.name {
			r[i] = f
			return r
		}
	}

	return append(r, f)
}

func (r record) row(columns []string, naRep string) Row {
	row := make(Row, len(columns))

	for i, name := range columns {
		f, ok := r.lookup(name)
		if !ok || f.null {
			row[i] = Cell{Name: name, Value: naRep, Null: true}
			continue
		}

		row[i] = Cell{Name: name, Value: f.value}
	}

	return row
}

func extractRecord(node *xmlquery.Node, opts Options) record {
	var rec record

	if !opts.ElemsOnly {
		for _, attr := range node.Attr {
			if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
				continue
			}

			value := strings.TrimSpace(attr.Value)
			rec = rec.set(field{name: attr.Name.Local, value: value, null: value == ""})
		}
	}

	if opts.AttrsOnly {
		return rec
	}

	if !opts.ElemsOnly {
		if text := directText(node); text != "" {
			rec = rec.set(field{name: node.Data, value: text})
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}

		text := directText(child)
		rec = rec.set(field{name: child.Data, value: text, null: text == ""})
	}

	return rec
}

// directText joins the text and CDATA children of n, ignoring nested elements.
func directText(n *xmlquery.Node) string {
	var b strings.Builder

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			b.WriteString(child.Data)
		}
	}

	return strings.TrimSpace(b.String())
}

type columnSet struct {
	names []string
	seen  map[string]struct{}
}

func newColumnSet() *columnSet {
	return &columnSet{seen: make(map[string]struct{})}
}

func (s *columnSet) add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}

	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s *columnSet) len() int {
	return len(s.names)
}
