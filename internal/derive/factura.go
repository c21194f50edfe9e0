package derive

import "github.com/llucior2/control-de-contratos/internal/models"

// MontoNeto is the net amount of an invoice: the estimate minus advance
// amortization, retention and charge deductions.
func MontoNeto(f models.Factura) float64 {
	return f.ImporteEstimacion - f.AmortizacionAnticipo - f.FondoGarantia - f.DeductivaCargos
}

// TotalPagado sums every payment applied to the given invoice.
func TotalPagado(facturaID uint, pagos []models.Pago) float64 {
	var total float64
	for _, p := range pagos {
		if p.FacturaID == facturaID {
			total += p.MontoPagado
		}
	}
	return total
}

// FacturaStatus rolls the paid total up into a status. Paying the net
// amount exactly counts as paid in full.
func FacturaStatus(totalPagado, montoNeto float64) string {
	switch {
	case totalPagado <= 0:
		return models.FacturaPendiente
	case totalPagado < montoNeto:
		return models.FacturaPagadaParcial
	default:
		return models.FacturaPagada
	}
}

// RecomputeFacturaStatuses rewrites the status of every invoice from the
// full payment collection. It is a whole-collection sweep, run after any
// payment mutation, and is idempotent.
func RecomputeFacturaStatuses(facturas []models.Factura, pagos []models.Pago) {
	for i := range facturas {
		f := &facturas[i]
		f.Estatus = FacturaStatus(TotalPagado(f.ID, pagos), MontoNeto(*f))
	}
}
