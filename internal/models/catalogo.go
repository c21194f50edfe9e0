package models

// CatalogoConcepto is a catalog entry for construction concepts. Clave is a
// human-assigned key, unique across the catalog (checked at creation and
// bulk import).
type CatalogoConcepto struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Clave      string `gorm:"index" json:"clave"`
	Nombre     string `json:"nombre"`
	Disciplina string `json:"disciplina"`
}

// ProcesoConstructivo is a step under a catalog concept. Sibling processes
// of one concept are expected to sum to 100%, but only the UI enforces it.
type ProcesoConstructivo struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	CatalogoConceptoID uint    `gorm:"not null;index" json:"catalogoConceptoId"`
	Nombre             string  `json:"nombre"`
	Descripcion        string  `json:"descripcion,omitempty"`
	Porcentaje         float64 `json:"porcentaje"`
}
