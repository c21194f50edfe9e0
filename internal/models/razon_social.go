package models

// RazonSocial is the contracting legal entity under which clients and
// contracts are grouped.
type RazonSocial struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"not null;index" json:"nombre"`
	RFC    string `json:"rfc"`
}
