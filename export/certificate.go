package export

import (
	"bytes"
	"fmt"

	"github.com/etnz/planilla"
	"github.com/jung-kurt/gofpdf"
)

// column of the certificate items table.
type column struct {
	title string
	width float64
	align string
}

var certificateColumns = []column{
	{"Ítem", 14, "L"},
	{"Descripción", 64, "L"},
	{"Unidad", 14, "C"},
	{"Cantidad", 22, "R"},
	{"P. Unitario", 26, "R"},
	{"Monto", 30, "R"},
}

// CertificatePDF renders the payment certificate of period as a PDF. A period
// out of the axis selects the last one.
func CertificatePDF(r *planilla.Report, period int) ([]byte, error) {
	period = r.Clamp(period)
	e, _ := r.Period(period)
	m := r.Config.Master

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(e.FullLabel), false)
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, tr("Certificado de Pago - "+e.FullLabel))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		"Proyecto: " + m.Name,
		"Contrato: " + m.ContractNumber,
		"Contratista: " + m.Contractor,
		"Supervisión: " + m.Supervisor,
		fmt.Sprintf("Periodo: %s al %s", e.Range.From, e.Range.To),
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	for _, c := range certificateColumns {
		pdf.CellFormat(c.width, 6, tr(c.title), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	items := r.ItemsIn(period)
	if len(items) == 0 {
		pdf.CellFormat(tableWidth(), 6, tr("Sin ejecución en el periodo."), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for _, it := range items {
		h := it.At(period)
		values := []string{it.Code, it.Description, it.Unit, h.QtyPartial.String(), it.UnitPrice.String(), h.AmtPartial.String()}
		for i, c := range certificateColumns {
			pdf.CellFormat(c.width, 6, tr(fit(pdf, values[i], c.width)), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	summary := [][2]string{
		{"Monto Ejecutado", e.PhysicalPartial.String()},
		{"Amortización del Anticipo (" + m.AdvancePercent.String() + ")", e.Amortization.Neg().String()},
	}
	if !e.Penalty.IsZero() {
		summary = append(summary, [2]string{"Multa: " + e.PenaltyReason, e.Penalty.Neg().String()})
	}
	label := tableWidth() - certificateColumns[len(certificateColumns)-1].width
	for _, s := range summary {
		pdf.CellFormat(label, 6, tr(s[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(tableWidth()-label, 6, tr(s[1]), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(label, 6, tr("Líquido Pagable"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(tableWidth()-label, 6, tr(e.LiquidPayable.String()), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(label, 6, tr("Saldo por Amortizar"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(tableWidth()-label, 6, tr(r.Cut(period).AdvanceBalance.String()), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tableWidth() float64 {
	var w float64
	for _, c := range certificateColumns {
		w += c.width
	}
	return w
}

// fit truncates s with an ellipsis until it fits in width.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	const margin = 2
	if pdf.GetStringWidth(s) <= width-margin {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width-margin {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
