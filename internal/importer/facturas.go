package importer

import (
	"fmt"

	"github.com/llucior2/control-de-contratos/internal/models"
)

// Facturas inserts invoice rows, resolving contratoFolio to a contract id.
// Every imported invoice starts as «Pendiente»; payments decide the rest.
func Facturas(snap *models.Snapshot, rows []Row) Summary {
	contratoPorFolio := make(map[string]uint)
	for _, c := range snap.Contratos {
		contratoPorFolio[c.Folio] = c.ID
	}

	sum := newSummary()
	nextID := snap.NextFacturaID()
	for i, row := range rows {
		folio := row.Str("contratoFolio")
		contratoID, ok := contratoPorFolio[folio]
		if !ok {
			sum.fail(i, row, fmt.Sprintf("Contrato con folio '%s' no encontrado.", folio))
			continue
		}
		snap.Facturas = append(snap.Facturas, models.Factura{
			ID:                   nextID,
			ContratoID:           contratoID,
			FolioFactura:         row.Str("folioFactura"),
			FechaEmision:         ParseDMY(row.Str("fechaEmision")),
			Concepto:             row.Str("concepto"),
			ImporteEstimacion:    row.Num("importeEstimacion"),
			AmortizacionAnticipo: row.Num("amortizacionAnticipo"),
			FondoGarantia:        row.Num("fondoGarantia"),
			DeductivaCargos:      row.Num("deductivaCargos"),
			Estatus:              models.FacturaPendiente,
			Comentarios:          row.Str("comentarios"),
		})
		nextID++
		sum.Added++
	}
	sum.Message = fmt.Sprintf("Carga de facturas finalizada. Agregadas: %d. Errores: %d.", sum.Added, len(sum.Errors))
	return sum
}
