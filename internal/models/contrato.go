package models

// Contract status wire values. «Pendiente» is only assigned by bulk import
// for future-dated contracts; the live read path only ever promotes to
// «Vencido».
const (
	ContratoVigente     = "Vigente"
	ContratoVencido     = "Vencido"
	ContratoCancelado   = "Cancelado"
	ContratoPendiente   = "Pendiente"
	ContratoDesconocido = "Desconocido"
)

// Contract types.
const (
	TipoPrecioUnitario        = "Precio Unitario"
	TipoPrecioAlzado          = "Precio Alzado"
	TipoPrecioMaxGarantizado  = "Precio máximo garantizado"
	TipoPrecioAlzadoUnitarios = "Precio Alzado en base a Precios Unitarios"
	TipoPrecioAlzadoMaxGarant = "Precio Alzado Máximo Garantizado"
	TipoOrdenDeTrabajo        = "Orden de trabajo"
	TipoOrdenDeCompra         = "Orden de Compra"
)

// VAT regimes.
const (
	IVA16    = "IVA 16%"
	IVATasa0 = "Tasa 0%"
	IVANA    = "No Aplica"
)

// Contrato is a construction/service contract. Dates are calendar dates in
// YYYY-MM-DD form with no time component. Folio must be unique across all
// contracts (enforced at bulk-import time).
type Contrato struct {
	ID                      uint    `gorm:"primaryKey" json:"id"`
	RazonSocialID           uint    `gorm:"not null;index" json:"razonSocialId"`
	ClienteID               uint    `gorm:"not null;index" json:"clienteId"`
	NombreProyecto          string  `json:"nombreProyecto"`
	Folio                   string  `gorm:"index" json:"folio"`
	Objeto                  string  `json:"objeto"`
	Monto                   float64 `json:"monto"`
	Moneda                  string  `json:"moneda"` // MXN | USD
	TipoDeCambio            float64 `json:"tipoDeCambio,omitempty"`
	FechaInicio             string  `json:"fechaInicio"`
	FechaTermino            string  `json:"fechaTermino"`
	TipoContrato            string  `json:"tipoContrato"`
	TipoIVA                 string  `json:"tipoIVA"`
	AnticipoPorcentaje      float64 `json:"anticipoPorcentaje"`
	FondoGarantiaPorcentaje float64 `json:"fondoGarantiaPorcentaje"`
	MontoAnticipoOtorgado   float64 `json:"montoAnticipoOtorgado"`
	Estatus                 string  `json:"estatus"`
	FianzaAnticipo          string  `json:"fianzaAnticipo,omitempty"`
	Penalizaciones          string  `json:"penalizaciones,omitempty"`
}
