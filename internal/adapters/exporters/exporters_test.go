package exporters

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsDoc() *domain.ParsedDocument {
	return &domain.ParsedDocument{
		Source: "/data/pairs.xml",
		Format: "xml",
		Rows:   []string{"x, 1", "y, 2"},
	}
}

func concatDoc() *domain.ParsedDocument {
	return &domain.ParsedDocument{
		Source:       "/data/items.yaml",
		Format:       "yaml",
		Concatenated: true,
		Text:         "a: 1\n\nb: 2\n",
	}
}

func TestForFormat(t *testing.T) {
	tests := map[string]string{
		"text":       "text",
		"TXT":        "text",
		"json":       "json",
		"pdf":        "pdf",
		"word":       "docx",
		"docx":       "docx",
		"adf":        "confluence",
		"confluence": "confluence",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := ForFormat(name)
			require.NoError(t, err)
			assert.Equal(t, want, e.Format())
		})
	}

	_, err := ForFormat("html")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestTextExporter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTextExporter().Export(rowsDoc(), &buf))
	assert.Equal(t, "x, 1\ny, 2\n", buf.String())

	buf.Reset()
	require.NoError(t, NewTextExporter().Export(concatDoc(), &buf))
	assert.Equal(t, "a: 1\n\nb: 2\n", buf.String())
}

func TestJSONExporter(t *testing.T) {
	doc := rowsDoc()
	doc.Items = []any{map[string]any{"a": 1}}

	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter().Export(doc, &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "/data/pairs.xml", got["source"])
	assert.Equal(t, false, got["concatenated"])
	assert.Equal(t, []any{"x, 1", "y, 2"}, got["rows"])
	assert.Equal(t, []any{map[string]any{"a": float64(1)}}, got["items"])
	assert.NotContains(t, got, "text")

	buf.Reset()
	require.NoError(t, NewJSONExporter().Export(concatDoc(), &buf))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "a: 1\n\nb: 2\n", got["text"])
}

func TestJSONExporter_NonStringKeys(t *testing.T) {
	doc := &domain.ParsedDocument{
		Source: "/data/items.yaml",
		Format: "yaml",
		Rows:   []string{"1: one\n", "nested:\n  true: [2]\n"},
		Items: []any{
			map[any]any{1: "one"},
			map[string]any{"nested": map[any]any{true: []any{map[any]any{2.5: nil}}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter().Export(doc, &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, []any{
		map[string]any{"1": "one"},
		map[string]any{"nested": map[string]any{"true": []any{map[string]any{"2.5": nil}}}},
	}, got["items"])
}

func TestADFExporter(t *testing.T) {
	doc := rowsDoc()
	doc.Rows = append(doc.Rows, "")

	var buf bytes.Buffer
	require.NoError(t, NewADFExporter().Export(doc, &buf))

	var got adfDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "doc", got.Type)
	assert.Equal(t, 1, got.Version)

	// title, summary, then heading + code block per row
	require.Len(t, got.Content, 2+2*3)
	assert.Equal(t, "pairs.xml", got.Content[0].Content[0].Text)
	assert.Equal(t, "Format: xml, 3 rows", got.Content[1].Content[0].Text)

	block := got.Content[3]
	assert.Equal(t, "codeBlock", block.Type)
	assert.Equal(t, "xml", block.Attrs.Language)
	assert.Equal(t, "x, 1", block.Content[0].Text)

	assert.Empty(t, got.Content[7].Content)
}

func TestPDFExporter(t *testing.T) {
	doc := rowsDoc()
	doc.Rows = append(doc.Rows, "café, 3")

	var buf bytes.Buffer
	require.NoError(t, NewPDFExporter().Export(doc, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestDocxExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDocxExporter().Export(concatDoc(), &buf))

	// DOCX files are zip archives.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}
