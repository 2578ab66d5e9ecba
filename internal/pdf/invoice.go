package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"solocrm/internal/models"
)

// InvoiceRenderer produces the printable PDF of an invoice, in memory.
// French text fits in cp1252, so the built-in Helvetica is enough and no
// font asset has to ship with the binary.
type InvoiceRenderer struct {
	CompanyName string
	Tagline     string
}

func NewInvoiceRenderer(companyName string) *InvoiceRenderer {
	return &InvoiceRenderer{
		CompanyName: companyName,
		Tagline:     "Logiciel de gestion commerciale intelligent",
	}
}

func (r *InvoiceRenderer) Render(invoice *models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr(fmt.Sprintf("Facture %s", invoice.InvoiceNumber)), false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Header: company identity on the left, invoice meta on the right.
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(37, 99, 235)
	doc.Text(20, 20, tr(r.CompanyName))
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.Text(20, 27, tr(r.Tagline))

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.Text(130, 20, tr(fmt.Sprintf("Facture N° : %s", invoice.InvoiceNumber)))
	doc.Text(130, 27, tr(fmt.Sprintf("Date : %s", invoice.CreatedAt.Format("02/01/2006"))))
	doc.Text(130, 34, tr(fmt.Sprintf("Échéance : %s", invoice.DueDate.Format("02/01/2006"))))

	// Recipient block.
	doc.SetY(50)
	r.sectionTitle(doc, tr, "DESTINATAIRE")
	if c := invoice.Contact; c != nil {
		r.line(doc, tr, fmt.Sprintf("%s %s", c.FirstName, c.LastName))
		if c.Email != "" {
			r.line(doc, tr, c.Email)
		}
		if c.Phone != "" {
			r.line(doc, tr, c.Phone)
		}
	} else {
		r.line(doc, tr, "Contact inconnu")
	}
	r.hr(doc)

	// Amount and status.
	doc.Ln(4)
	r.sectionTitle(doc, tr, "Détail")
	r.kvLine(doc, tr, "Montant", fmt.Sprintf("%.2f €", invoice.Amount))
	r.kvLine(doc, tr, "Statut", string(invoice.Status))
	r.hr(doc)

	doc.Ln(6)
	doc.SetFont("Helvetica", "I", 10)
	doc.SetTextColor(100, 100, 100)
	doc.MultiCell(0, 5, tr("Merci de votre confiance. Le règlement est attendu avant la date d'échéance indiquée ci-dessus."), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *InvoiceRenderer) sectionTitle(doc *gofpdf.Fpdf, tr func(string) string, s string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 7, tr(s), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
}

func (r *InvoiceRenderer) kvLine(doc *gofpdf.Fpdf, tr func(string) string, key, val string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(45, 6, tr(key+" :"), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, tr(val), "", 1, "L", false, 0, "")
}

func (r *InvoiceRenderer) line(doc *gofpdf.Fpdf, tr func(string) string, s string) {
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, tr(s), "", 1, "L", false, 0, "")
}

func (r *InvoiceRenderer) hr(doc *gofpdf.Fpdf) {
	y := doc.GetY() + 1.5
	doc.SetLineWidth(0.2)
	doc.Line(20, y, 190, y)
	doc.SetY(y + 2)
}
