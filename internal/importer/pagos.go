package importer

import (
	"fmt"
	"time"

	"github.com/llucior2/control-de-contratos/internal/derive"
	"github.com/llucior2/control-de-contratos/internal/models"
)

// Pagos inserts payment rows, resolving facturaFolio to an invoice id. The
// date defaults to the import day and the method to «Transferencia» when
// absent. Legacy template headers (fecha, monto, metodoDePago, referencia)
// are accepted alongside the canonical ones. After the batch, every invoice
// status is recomputed from the full payment collection.
func Pagos(snap *models.Snapshot, rows []Row) Summary {
	facturaPorFolio := make(map[string]uint)
	for _, f := range snap.Facturas {
		facturaPorFolio[f.FolioFactura] = f.ID
	}

	sum := newSummary()
	nextID := snap.NextPagoID()
	for i, row := range rows {
		folio := row.Str("facturaFolio")
		facturaID, ok := facturaPorFolio[folio]
		if !ok {
			sum.fail(i, row, fmt.Sprintf("No se encontró la factura con el folio '%s'.", folio))
			continue
		}
		fecha := ParseDMY(row.First("fechaPago", "fecha"))
		if fecha == "" {
			fecha = time.Now().Format("2006-01-02")
		}
		metodo := row.First("metodoPago", "metodoDePago")
		if metodo == "" {
			metodo = "Transferencia"
		}
		snap.Pagos = append(snap.Pagos, models.Pago{
			ID:          nextID,
			FacturaID:   facturaID,
			FechaPago:   fecha,
			MontoPagado: row.NumFirst("montoPagado", "monto"),
			MetodoPago:  metodo,
			Comentarios: row.First("comentarios", "comentario", "referencia"),
		})
		nextID++
		sum.Added++
	}

	derive.RecomputeFacturaStatuses(snap.Facturas, snap.Pagos)

	sum.Message = fmt.Sprintf("Carga de pagos finalizada. Agregados: %d. Errores: %d.", sum.Added, len(sum.Errors))
	return sum
}
