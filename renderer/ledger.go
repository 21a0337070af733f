package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/planilla"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the physical and financial progress of every period.
func LedgerMarkdown(r *planilla.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Avance Físico-Financiero")
	if name := r.Config.Master.Name; name != "" {
		doc.PlainText(md.Italic(name)).LF()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Planilla",
			"Ejecutado",
			"Programado",
			"Amortización",
			"Multa",
			"Líquido Pagable",
			"Acum. Físico",
			"Acum. Financiero",
			"SPI",
			"CPI",
		},
	}
	for _, e := range r.Periods {
		table.Rows = append(table.Rows, []string{
			e.FullLabel,
			e.PhysicalPartial.String(),
			e.PlannedPartial.String(),
			e.Amortization.String(),
			e.Penalty.String(),
			e.LiquidPayable.String(),
			fmt.Sprintf("%s (%s)", e.PhysicalAccum, e.PhysicalProgress),
			fmt.Sprintf("%s (%s)", e.FinancialAccum, e.FinancialProgress),
			e.SPI.String(),
			e.CPI.String(),
		})
	}
	doc.Table(table)

	last := r.Last()
	doc.H2("Curva S")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Planilla", "Programado Acum.", "Ejecutado Acum."},
		Rows:      sCurve(r),
	})
	doc.PlainTextf("Avance físico al cierre de %s: %s sobre %s.",
		md.Bold(last.FullLabel), md.Bold(last.PhysicalProgress.String()), r.Config.TotalAmount)

	return doc.String()
}

func sCurve(r *planilla.Report) [][]string {
	var rows [][]string
	for _, e := range r.Periods {
		rows = append(rows, []string{e.Label, e.PlannedAccum.String(), e.PhysicalAccum.String()})
	}
	return rows
}

// CutMarkdown renders the key figures of the contract at the close of period.
func CutMarkdown(r *planilla.Report, period int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	c := r.Cut(period)
	e := c.Entry
	doc.H1f("Corte al %s", e.FullLabel)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Monto Vigente"),
			md.Bold(c.TotalAmount.String()),
		},
		Rows: [][]string{
			{"Total Pagado (con anticipo)", c.PaidWithAdv.String()},
			{"Total Pagado (planillas)", c.PaidLiquid.String()},
			{"Saldo por Cancelar", c.Balance.String()},
			{"Amortización Acumulada", e.AmortizationAccum.String()},
			{"Saldo por Amortizar", c.AdvanceBalance.String()},
		},
	})

	doc.H2("Indicadores")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Periodo", "Acumulado"},
		Rows: [][]string{
			{"Avance Físico", share(e.PhysicalPartial, c.TotalAmount), e.PhysicalProgress.String()},
			{"Avance Financiero", e.CollectedPeriod.String(), e.FinancialProgress.String()},
			{"Avance Financiero (sin anticipo)", "", e.FinancialProgressNoAdv.String()},
			{"SPI", e.PeriodSPI.String(), e.SPI.String()},
			{"CPI", e.PeriodCPI.String(), e.CPI.String()},
		},
	})

	var alerts []string
	if e.SPI.Behind() {
		alerts = append(alerts, fmt.Sprintf("Retraso: el avance ejecutado es %s del programado.", planilla.Percent(100*float64(e.SPI))))
	}
	if e.Penalty.IsPositive() {
		alerts = append(alerts, fmt.Sprintf("Multa de %s: %s", e.Penalty, e.PenaltyReason))
	}
	if e.LiquidPayable.IsNegative() {
		alerts = append(alerts, fmt.Sprintf("Líquido pagable negativo: %s", e.LiquidPayable))
	}
	if len(alerts) > 0 {
		doc.H2("Alertas")
		doc.BulletList(alerts...)
	}
	return doc.String()
}

// share renders part as a percentage of whole.
func share(part, whole planilla.Money) string {
	if whole.IsZero() {
		return planilla.Percent(0).String()
	}
	return planilla.Percent(100 * part.AsFloat() / whole.AsFloat()).String()
}
