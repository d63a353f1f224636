// Package render produces the generated certificate documents: a fixed
// one-page PDF layout with the parish heading and the record's fields.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/openparish/sacristy/internal/domain"
)

type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) BaptismCertificate(b domain.Baptism, p domain.Parish, d domain.Diocese) ([]byte, error) {
	doc := newCertificate("Certificate of Baptism", p, d)

	fullName := b.BaptismName
	if b.OtherNames != "" {
		fullName += " " + b.OtherNames
	}
	fullName += " " + b.Surname

	doc.subject(fullName)
	doc.row("Date of Birth", b.DateOfBirth)
	doc.row("Gender", b.Gender)
	doc.row("Father", b.FathersName)
	doc.row("Mother", b.MothersName)
	doc.row("Sponsors", b.SponsorNames)
	doc.row("Officiating Priest", b.OfficiatingPriest)
	doc.footer(fmt.Sprintf("Register entry no. %d", b.ID))

	return doc.bytes()
}

func (r *PDFRenderer) CommunionCertificate(c domain.Communion, b domain.Baptism, p domain.Parish, d domain.Diocese) ([]byte, error) {
	doc := newCertificate("Certificate of First Holy Communion", p, d)

	doc.subject(b.BaptismName + " " + b.Surname)
	doc.row("Date of First Communion", c.CommunionDate)
	doc.row("Date of Birth", b.DateOfBirth)
	doc.row("Officiating Priest", c.OfficiatingPriest)
	doc.row("Parish of Celebration", c.Parish)
	doc.footer(fmt.Sprintf("Register entry no. %d", c.ID))

	return doc.bytes()
}

type certificate struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newCertificate(title string, p domain.Parish, d domain.Diocese) *certificate {
	pdf := fpdf.New("P", "mm", "A4", "")
	// fixed creation date and sorted catalog keep output deterministic for
	// the same record
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.AddPage()

	doc := &certificate{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFont("Times", "", 12)
	pdf.CellFormat(0, 7, doc.tr(d.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(0, 8, doc.tr(p.ParishName), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Times", "B", 22)
	pdf.CellFormat(0, 14, doc.tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	return doc
}

func (c *certificate) subject(name string) {
	c.pdf.SetFont("Times", "I", 12)
	c.pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")
	c.pdf.SetFont("Times", "B", 18)
	c.pdf.CellFormat(0, 12, c.tr(name), "", 1, "C", false, 0, "")
	c.pdf.Ln(6)
}

func (c *certificate) row(label, value string) {
	if value == "" {
		return
	}
	c.pdf.SetFont("Times", "B", 12)
	c.pdf.CellFormat(60, 9, c.tr(label), "", 0, "R", false, 0, "")
	c.pdf.SetFont("Times", "", 12)
	c.pdf.CellFormat(0, 9, "   "+c.tr(value), "", 1, "L", false, 0, "")
}

func (c *certificate) footer(note string) {
	c.pdf.Ln(10)
	c.pdf.SetFont("Times", "", 10)
	c.pdf.CellFormat(0, 6, c.tr(note), "", 1, "C", false, 0, "")
}

func (c *certificate) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render: pdf output")
	}
	return buf.Bytes(), nil
}
