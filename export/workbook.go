// Package export writes a report in office formats: an XLSX workbook with the
// ledger, modules and items, and a PDF payment certificate.
package export

import (
	"bytes"
	"fmt"

	"github.com/etnz/planilla"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	LedgerSheet   = "Planilla"
	ModulesSheet  = "Módulos"
	ItemsSheet    = "Ítems"
	ContractSheet = "Contrato"
)

var ledgerHeader = []string{
	"Periodo", "Planilla", "Desde", "Hasta",
	"Ejecutado", "Ejecutado Acum.", "Programado", "Programado Acum.",
	"Amortización", "Multa", "Motivo", "Líquido Pagable", "Pagado Acum.", "Pagado Acum. sin Anticipo",
	"% Físico", "% Financiero", "SPI", "CPI",
}

// Workbook renders r as an XLSX workbook.
func Workbook(r *planilla.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheet); err != nil {
		return nil, err
	}
	for _, name := range []string{ModulesSheet, ItemsSheet, ContractSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, bold: bold}
	w.ledger(r)
	w.modules(r)
	w.items(r)
	w.contract(r.Config)
	if w.err != nil {
		return nil, fmt.Errorf("could not fill workbook: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so that rows can be written without
// checking every cell.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

// row writes values from column A of row.
func (w *sheetWriter) row(sheet string, row int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

// header writes a bold header row at row 1.
func (w *sheetWriter) header(sheet string, names []string) {
	values := make([]any, len(names))
	for i, n := range names {
		values[i] = n
	}
	w.row(sheet, 1, values...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(names), 1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, "A1", last, w.bold)
}

func (w *sheetWriter) ledger(r *planilla.Report) {
	w.header(LedgerSheet, ledgerHeader)
	for i, e := range r.Periods {
		w.row(LedgerSheet, i+2,
			e.Code, e.Label, e.Range.From.String(), e.Range.To.String(),
			e.PhysicalPartial.AsFloat(), e.PhysicalAccum.AsFloat(),
			e.PlannedPartial.AsFloat(), e.PlannedAccum.AsFloat(),
			e.Amortization.AsFloat(), e.Penalty.AsFloat(), e.PenaltyReason,
			e.LiquidPayable.AsFloat(), e.FinancialAccum.AsFloat(), e.FinancialAccumNoAdv.AsFloat(),
			float64(e.PhysicalProgress), float64(e.FinancialProgress),
			float64(e.SPI), float64(e.CPI),
		)
	}
}

func (w *sheetWriter) modules(r *planilla.Report) {
	w.header(ModulesSheet, []string{"Módulo", "Presupuesto", "Ejecutado", "% Incidencia", "% Avance"})
	for i, m := range r.Modules {
		w.row(ModulesSheet, i+2, m.Name, m.Budget.AsFloat(), m.ExecutedAccum.AsFloat(), float64(m.Incidence), float64(m.Progress))
	}
}

// items writes one row per item with the executed quantity of every period.
func (w *sheetWriter) items(r *planilla.Report) {
	names := []string{"Módulo", "Ítem", "Actividad", "Unidad", "Inicio", "Fin", "Cantidad Original", "Cantidad Vigente", "P. Unitario", "Presupuesto"}
	for p := range r.Axis.Periods() {
		names = append(names, r.Axis.Code(p))
	}
	w.header(ItemsSheet, names)
	for i, it := range r.Items {
		values := []any{
			planilla.ModuleName(it.Module), it.Code, it.Description, it.Unit,
			it.Start.String(), it.End.String(),
			it.OriginalQty.AsFloat(), it.CurrentQty.AsFloat(),
			it.UnitPrice.AsFloat(), it.Budget().AsFloat(),
		}
		for p := range r.Axis.Periods() {
			values = append(values, it.At(p).QtyPartial.AsFloat())
		}
		w.row(ItemsSheet, i+2, values...)
	}
}

func (w *sheetWriter) contract(cfg planilla.Config) {
	m := cfg.Master
	rows := [][]any{
		{"Proyecto", m.Name},
		{"Contrato", m.ContractNumber},
		{"Entidad", m.Entity},
		{"Contratista", m.Contractor},
		{"Supervisión", m.Supervisor},
		{"Fiscalización", m.Fiscal},
		{"Moneda", m.Currency},
		{"Monto Original", m.OriginalAmount.AsFloat()},
		{"Monto Vigente", cfg.TotalAmount.AsFloat()},
		{"Plazo Original (días)", m.OriginalDuration},
		{"Plazo Vigente (días)", cfg.TotalDays},
		{"Inicio", m.StartDate.String()},
		{"Conclusión Vigente", cfg.EndDate.String()},
		{"Anticipo", m.AdvanceAmount.AsFloat()},
		{"% Anticipo", float64(m.AdvancePercent)},
	}
	for i, r := range rows {
		w.row(ContractSheet, i+1, r...)
	}
	if w.err == nil {
		w.err = w.f.SetColWidth(ContractSheet, "A", "A", 24)
	}
}
