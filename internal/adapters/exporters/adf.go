package exporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
)

const adfFormat = "confluence"

// ADFExporter renders parsed documents as Atlassian Document Format (ADF) for Confluence.
type ADFExporter struct{}

// NewADFExporter creates a new ADF exporter.
func NewADFExporter() *ADFExporter {
	return &ADFExporter{}
}

// Format returns the output format name.
func (e *ADFExporter) Format() string {
	return adfFormat
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
	Marks   []adfMark `json:"marks,omitempty"`
}

type adfAttrs struct {
	Level    int    `json:"level,omitempty"`
	Language string `json:"language,omitempty"`
}

type adfMark struct {
	Type string `json:"type"`
}

// Export writes doc as ADF JSON: a title, a summary line and one code block per row.
func (e *ADFExporter) Export(doc *domain.ParsedDocument, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	adf.Content = append(adf.Content, e.heading(documentTitle(doc), 1))
	adf.Content = append(adf.Content, adfNode{
		Type: "paragraph",
		Content: []adfNode{
			e.boldText(documentSummary(doc)),
		},
	})

	for i, s := range doc.Strings() {
		if !doc.Concatenated {
			adf.Content = append(adf.Content, e.heading(fmt.Sprintf("Row %d", i+1), 3))
		}

		adf.Content = append(adf.Content, e.codeBlock(s, doc.Format))
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(adf); err != nil {
		return fmt.Errorf("failed to encode ADF: %w", err)
	}

	return nil
}

func (e *ADFExporter) heading(text string, level int) adfNode {
	return adfNode{
		Type:  "heading",
		Attrs: &adfAttrs{Level: level},
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (e *ADFExporter) boldText(text string) adfNode {
	return adfNode{
		Type: "text",
		Text: text,
		Marks: []adfMark{
			{Type: "strong"},
		},
	}
}

// codeBlock wraps text in a code block. ADF rejects empty text nodes, so an
// empty row yields an empty block.
func (e *ADFExporter) codeBlock(text, language string) adfNode {
	node := adfNode{
		Type:  "codeBlock",
		Attrs: &adfAttrs{Language: language},
	}

	if text != "" {
		node.Content = []adfNode{{Type: "text", Text: text}}
	}

	return node
}
