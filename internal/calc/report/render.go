package report

import (
	"bytes"
	"log"

	"github.com/phpdave11/gofpdf"
)

// Artifact is a rendered report file.
type Artifact struct {
	Data []byte
	MIME string
	Ext  string
}

type Renderer interface {
	Render(doc Document) (Artifact, error)
}

// PDFRenderer lays the report out on A4 pages and embeds the diagram when
// the document carries one.
type PDFRenderer struct{}

func (PDFRenderer) Render(doc Document) (Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("Optika", true)
	if doc.ID != "" {
		pdf.SetSubject("report "+doc.ID, true)
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.Lines() {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}

	if len(doc.Diagram) > 0 {
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("diagram", opt, bytes.NewReader(doc.Diagram))
		pdf.Ln(4)
		pdf.ImageOptions("diagram", 10, pdf.GetY(), 150, 0, true, opt, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, err
	}
	return Artifact{Data: buf.Bytes(), MIME: "application/pdf", Ext: ".pdf"}, nil
}

type TextRenderer struct{}

func (TextRenderer) Render(doc Document) (Artifact, error) {
	return Artifact{Data: []byte(doc.Text()), MIME: "text/plain; charset=utf-8", Ext: ".txt"}, nil
}

// Generate tries each renderer in order and falls back to plain text, so a
// report is always produced.
func Generate(doc Document, renderers ...Renderer) Artifact {
	for _, r := range renderers {
		a, err := r.Render(doc)
		if err == nil {
			return a
		}
		log.Printf("report: %T failed for %s, trying next format: %v", r, doc.Kind, err)
	}
	a, _ := TextRenderer{}.Render(doc)
	return a
}
