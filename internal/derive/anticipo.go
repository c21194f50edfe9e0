package derive

import "github.com/llucior2/control-de-contratos/internal/models"

// CapTolerance absorbs floating-point drift when comparing cumulative
// amortization or retention against the contract cap.
const CapTolerance = 0.01

// MontoAnticipoOtorgado is the advance granted at contract creation.
func MontoAnticipoOtorgado(monto, anticipoPorcentaje float64) float64 {
	return monto * anticipoPorcentaje / 100
}

// AnticipoDefaults auto-populates the amortization and retention of a new
// invoice from the contract percentages.
func AnticipoDefaults(c models.Contrato, importeEstimacion float64) (amortizacion, fondoGarantia float64) {
	return importeEstimacion * c.AnticipoPorcentaje / 100,
		importeEstimacion * c.FondoGarantiaPorcentaje / 100
}

// AnticipoCap and FondoGarantiaCap are the contract-level ceilings the
// cumulative invoice fields must stay under.
func AnticipoCap(c models.Contrato) float64 {
	return c.Monto * c.AnticipoPorcentaje / 100
}

func FondoGarantiaCap(c models.Contrato) float64 {
	return c.Monto * c.FondoGarantiaPorcentaje / 100
}

// AcumuladosContrato sums amortization and retention across the invoices of
// one contract, excluding the invoice being edited (0 excludes nothing).
func AcumuladosContrato(contratoID uint, facturas []models.Factura, excludeFacturaID uint) (amortizacion, fondoGarantia float64) {
	for _, f := range facturas {
		if f.ContratoID != contratoID || f.ID == excludeFacturaID && excludeFacturaID != 0 {
			continue
		}
		amortizacion += f.AmortizacionAnticipo
		fondoGarantia += f.FondoGarantia
	}
	return amortizacion, fondoGarantia
}

// CapExceeded reports whether a cumulative total breaks its cap beyond the
// tolerance. When it does, the field is unlocked for manual editing.
func CapExceeded(total, limit float64) bool {
	return total > limit+CapTolerance
}

// Totales computes subtotal, VAT and total for an invoice under the
// contract's VAT regime. Only «IVA 16%» adds tax.
func Totales(f models.Factura, tipoIVA string) (subtotal, iva, total float64) {
	subtotal = MontoNeto(f)
	if tipoIVA == models.IVA16 {
		iva = subtotal * 0.16
	}
	return subtotal, iva, subtotal + iva
}
