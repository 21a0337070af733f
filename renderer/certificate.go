package renderer

import (
	"bytes"

	"github.com/etnz/planilla"
	md "github.com/nao1215/markdown"
)

// CertificateMarkdown renders the payment certificate of period: the items
// executed in the period and the liquid payable.
func CertificateMarkdown(r *planilla.Report, period int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	period = r.Clamp(period)
	e, _ := r.Period(period)
	m := r.Config.Master

	doc.H1(e.FullLabel)
	doc.BulletList(
		"Proyecto: "+m.Name,
		"Contrato: "+m.ContractNumber,
		"Contratista: "+m.Contractor,
		"Periodo: "+e.Range.From.String()+" al "+e.Range.To.String(),
	)
	doc.LF()

	doc.H2("Ítems Ejecutados")
	items := r.ItemsIn(period)
	if len(items) == 0 {
		doc.PlainText("Sin ejecución en el periodo.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ítem", "Descripción", "Unidad", "Cantidad", "P. Unitario", "Monto", "Avance Ítem", "Incidencia"},
		}
		for _, it := range items {
			h := it.At(period)
			table.Rows = append(table.Rows, []string{
				it.Code,
				it.Description,
				it.Unit,
				h.QtyPartial.String(),
				it.UnitPrice.String(),
				h.AmtPartial.String(),
				it.Progress(period).String(),
				h.Incidence.String(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Liquidación")
	rows := [][]string{
		{"Amortización del Anticipo (" + m.AdvancePercent.String() + ")", e.Amortization.Neg().SignedString()},
	}
	if !e.Penalty.IsZero() {
		rows = append(rows, []string{"Multa: " + e.PenaltyReason, e.Penalty.Neg().SignedString()})
	}
	rows = append(rows,
		[]string{md.Bold("Líquido Pagable"), md.Bold(e.LiquidPayable.String())},
		[]string{"Saldo por Amortizar", r.Cut(period).AdvanceBalance.String()},
	)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Monto Ejecutado"), md.Bold(e.PhysicalPartial.String())},
		Rows:      rows,
	})

	return doc.String()
}
