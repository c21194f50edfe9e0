package models

// Pago records money received against an invoice. Many pagos may reference
// one factura.
type Pago struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	FacturaID   uint    `gorm:"not null;index" json:"facturaId"`
	FechaPago   string  `json:"fechaPago"`
	MontoPagado float64 `json:"montoPagado"`
	MetodoPago  string  `json:"metodoPago"`
	Comentarios string  `json:"comentarios,omitempty"`
}
