package exporters

import (
	"io"
	"strings"

	"github.com/GabrielNunesIT/doc-flattener/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFormat      = "pdf"
	pdfPageWidth   = 190.0
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
)

// PDFExporter renders parsed documents as PDF.
type PDFExporter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Format returns the output format name.
func (e *PDFExporter) Format() string {
	return pdfFormat
}

// Export writes doc as a PDF with a header followed by every row in a
// monospaced font.
func (e *PDFExporter) Export(doc *domain.ParsedDocument, output io.Writer) error {
	e.pdf = gofpdf.New("P", "mm", "A4", "")
	e.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	e.pdf.SetDrawColor(180, 180, 180)
	// Core fonts are cp1252; translate UTF-8 input.
	e.tr = e.pdf.UnicodeTranslatorFromDescriptor("")

	e.pdf.AddPage()
	e.addHeader(doc)

	for i, s := range doc.Strings() {
		if i > 0 {
			e.addDivider()
		}

		e.addRow(s)
	}

	return e.pdf.Output(output)
}

func (e *PDFExporter) addHeader(doc *domain.ParsedDocument) {
	e.pdf.SetFont("Arial", "B", 18)
	e.pdf.CellFormat(pdfPageWidth, 10, e.tr(documentTitle(doc)), "", 1, "", false, 0, "")

	e.pdf.SetFont("Arial", "", 10)
	e.pdf.SetTextColor(100, 100, 100)
	e.pdf.CellFormat(pdfPageWidth, 6, e.tr(documentSummary(doc)), "", 1, "", false, 0, "")
	e.pdf.SetTextColor(0, 0, 0)
	e.pdf.Ln(4)
}

func (e *PDFExporter) addRow(text string) {
	e.pdf.SetFont("Courier", "", 9)
	e.pdf.MultiCell(pdfPageWidth, pdfLineHeight, e.tr(strings.TrimRight(text, "\n")), "", "L", false)
}

func (e *PDFExporter) addDivider() {
	e.checkPageBreak(4)
	e.pdf.Ln(1)
	y := e.pdf.GetY()
	e.pdf.Line(pdfMarginLeft, y, pdfMarginLeft+pdfPageWidth, y)
	e.pdf.Ln(2)
}

func (e *PDFExporter) checkPageBreak(height float64) {
	_, pageHeight := e.pdf.GetPageSize()
	_, _, _, bottomMargin := e.pdf.GetMargins()

	if e.pdf.GetY()+height > pageHeight-bottomMargin-10 {
		e.pdf.AddPage()
	}
}
