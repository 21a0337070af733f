package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/planilla"
	md "github.com/nao1215/markdown"
)

// ContractMarkdown renders the technical sheet of the contract with its
// modifications.
func ContractMarkdown(cfg planilla.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	m := cfg.Master

	doc.H1("Ficha Técnica")
	doc.PlainText(md.Bold(m.Name)).LF()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Contrato", m.ContractNumber},
		Rows: [][]string{
			{"Entidad", m.Entity},
			{"Contratista", person(m.Contractor, m.ContractorRep)},
			{"Supervisión", person(m.Supervisor, m.SupervisorRep)},
			{"Fiscalización", person(m.Fiscal, m.FiscalRep)},
			{"Superficie", m.SurfaceArea},
			{"Firma", m.SigningDate.String()},
		},
	})

	doc.H2("Plazo y Monto")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Original", "Vigente"},
		Rows: [][]string{
			{"Monto", m.OriginalAmount.String(), cfg.TotalAmount.String()},
			{"Plazo (días)", strconv.Itoa(m.OriginalDuration), strconv.Itoa(cfg.TotalDays)},
			{"Inicio", m.StartDate.String(), m.StartDate.String()},
			{"Conclusión", m.OriginalEndDate.String(), cfg.EndDate.String()},
			{"Anticipo", fmt.Sprintf("%s (%s)", m.AdvanceAmount, m.AdvancePercent), ""},
		},
	})

	doc.H2("Modificaciones")
	if len(cfg.Modifications) == 0 {
		doc.PlainText("Sin modificaciones.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignCenter},
		Header:    []string{"ID", "Nombre", "Tipo", "Días", "Monto", "Estado"},
	}
	for _, mod := range cfg.Modifications {
		state := "inactiva"
		if mod.Active {
			state = md.Bold("activa")
		}
		table.Rows = append(table.Rows, []string{
			mod.ID,
			mod.Name,
			mod.Type.String(),
			"+" + strconv.Itoa(mod.Days),
			mod.Amount.SignedString(),
			state,
		})
	}
	doc.Table(table)
	return doc.String()
}

func person(org, rep string) string {
	if rep == "" {
		return org
	}
	return org + " (" + rep + ")"
}

// ModulesMarkdown renders the budget and progress of every module.
func ModulesMarkdown(r *planilla.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Avance por Módulo")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Módulo", "Presupuesto", "Ejecutado", "Incidencia", "Avance"},
	}
	for _, s := range r.Modules {
		table.Rows = append(table.Rows, []string{
			s.Name,
			s.Budget.String(),
			s.ExecutedAccum.String(),
			s.Incidence.String(),
			s.Progress.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

var milestoneStates = map[planilla.MilestoneState]string{
	planilla.MilestoneDone:    "Cumplido",
	planilla.MilestoneAlert:   "¡ALERTA!",
	planilla.MilestoneWarning: "Atención",
	planilla.MilestonePending: "Pendiente",
}

// MilestonesMarkdown renders the control of the contractual milestones after
// elapsed days of contract.
func MilestonesMarkdown(statuses []planilla.MilestoneStatus, elapsed int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Control de Hitos")
	doc.PlainTextf("Día %s de contrato.", md.Bold(strconv.Itoa(elapsed))).LF()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Hito", "Día", "Fecha", "Meta", "Estado"},
	}
	for _, s := range statuses {
		state := milestoneStates[s.State]
		if s.State != planilla.MilestoneDone {
			state = fmt.Sprintf("%s (faltan %d días)", state, s.DaysRemaining)
		}
		table.Rows = append(table.Rows, []string{
			s.Description,
			strconv.Itoa(s.Day),
			s.DueDate.String(),
			s.Target.String(),
			state,
		})
	}
	doc.Table(table)
	return doc.String()
}
