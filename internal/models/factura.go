package models

// Invoice (estimación) status wire values.
const (
	FacturaPendiente     = "Pendiente"
	FacturaPagadaParcial = "Pagada Parcialmente"
	FacturaPagada        = "Pagada"
)

// Factura is a billing event against a contract for work completed to date.
// Estatus is derived from the payment roll-up, never entered by hand.
type Factura struct {
	ID                   uint    `gorm:"primaryKey" json:"id"`
	ContratoID           uint    `gorm:"not null;index" json:"contratoId"`
	FolioFactura         string  `gorm:"index" json:"folioFactura"`
	FechaEmision         string  `json:"fechaEmision"`
	Concepto             string  `json:"concepto"`
	ImporteEstimacion    float64 `json:"importeEstimacion"`
	AmortizacionAnticipo float64 `json:"amortizacionAnticipo"`
	FondoGarantia        float64 `json:"fondoGarantia"`
	DeductivaCargos      float64 `json:"deductivaCargos"`
	Estatus              string  `json:"estatus"`
	FechaPago            string  `json:"fechaPago,omitempty"`
	Comentarios          string  `json:"comentarios,omitempty"`
}
