package sheet

import (
	"strings"

	"github.com/etnz/planilla"
)

// demoCSV is a small pavement contract over six periods, used when no sheet is
// available.
const demoCSV = `modulo,item,actividad,unidad,fecha_inicio,fecha_fin,cantidad_original,cantidad_vigente,precio_unitario,p1_cant,p2_cant,p3_cant,p4_cant,p5_cant,p6_cant
M1 - INSTALACIÓN DE FAENAS,1,INSTALACIÓN DE FAENAS,GLB,2025-07-05,2025-07-20,1,1,350000.00,1,,,,,
M1 - INSTALACIÓN DE FAENAS,2,LETRERO DE OBRA,PZA,2025-07-05,2025-07-10,2,2,5000.00,2,,,,,
M2 - MOVIMIENTO DE TIERRAS,3,EXCAVACIÓN NO CLASIFICADA,M3,2025-07-15,2025-09-30,35000,35000,65.00,5000,15000,15000,,,
M2 - MOVIMIENTO DE TIERRAS,4,CONFORMACIÓN DE TERRAPLÉN,M3,2025-08-01,2025-10-15,25000,25000,80.00,0,5000,10000,10000,,
M3 - PAVIMENTO RÍGIDO,5,CAPA SUB BASE (e=20cm),M2,2025-09-01,2025-11-30,22000,22000,120.00,,,5000,10000,7000,
M3 - PAVIMENTO RÍGIDO,6,LOSA HORMIGÓN (e=20cm),M2,2025-09-15,2025-12-20,22000,22000,450.00,,,2000,8000,8000,4000
M4 - OBRAS DE ARTE,8,CUNETAS DE HORMIGÓN,ML,2025-10-01,2026-01-15,3500,3500,250.00,,,,500,1500,1500
`

// Demo returns the demo line items, priced in currency.
func Demo(currency string) []planilla.LineItem {
	items, err := Parse(strings.NewReader(demoCSV), currency)
	if err != nil {
		panic(err)
	}
	return items
}
