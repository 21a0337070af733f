package config

import "github.com/etnz/planilla"

// Default returns the project of the Avenida del Moreno pavement contract,
// with its first amendment, on the demo sheet.
func Default() File {
	return File{
		Origin:   "2025-08",
		Currency: "BOB",
		Addr:     ":8080",
		Contract: Contract{
			Name:             "CONST. LA AVENIDA DEL MORENO (PAVIMENTO AVENIDA DE LA INTEGRACIÓN) - GAM ORURO",
			ContractNumber:   "SMAJ-LP-10-2025",
			Entity:           "Gobierno Autónomo Municipal de Oruro (GAMO)",
			Contractor:       "C.I.C.C.P. S.R.L.",
			ContractorRep:    "Arq. Blanca Cruz Gutierrez",
			Supervisor:       "Asociación Accidental BIM MORENO",
			SupervisorRep:    "Mgr. Ing. Zacarias Ortega R.",
			Fiscal:           "GAMO",
			FiscalRep:        "Ing. Luis Alberto Olorio Bazan",
			SurfaceArea:      "22,000.00",
			SigningDate:      "2025-06-20",
			StartDate:        "2025-07-03",
			OriginalEndDate:  "2026-04-18",
			OriginalDuration: 290,
			OriginalAmount:   21360803.45,
			AdvanceAmount:    4272160.69,
			AdvancePercent:   20,
		},
		Modifications: []Modification{
			{ID: "CM-1", Name: "Contrato Modificatorio N°1", Type: "CM", Date: "2025-11-20", Days: 90, Amount: 2123782.08, Description: "Incremento de monto y ampliación de plazo", Active: true},
		},
		Milestones: append([]planilla.Milestone(nil), planilla.DefaultMilestones...),
	}
}
