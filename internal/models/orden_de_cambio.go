package models

// OrdenDeCambio is a signed adjustment to a contract: positive amounts are
// additions, negative deductions. It never mutates the stored contract
// amount; displayed totals are recomputed by consumers.
type OrdenDeCambio struct {
	ID                      uint    `gorm:"primaryKey" json:"id"`
	ContratoID              uint    `gorm:"not null;index" json:"contratoId"`
	Descripcion             string  `json:"descripcion"`
	MontoAdicionalDeduccion float64 `json:"montoAdicionalDeduccion"`
	NuevaFechaTermino       string  `json:"nuevaFechaTermino,omitempty"`
	FechaAprobacion         string  `json:"fechaAprobacion"`
	AutorizadoPor           string  `json:"autorizadoPor"`
}
