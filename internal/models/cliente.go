package models

// Contacto is the primary contact of a client.
type Contacto struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// Cliente belongs to one razón social. The (nombre, razonSocialId) pair is
// expected unique within a razón social; creation and bulk import reject
// duplicates, the store itself does not.
type Cliente struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	RazonSocialID     uint     `gorm:"not null;index" json:"razonSocialId"`
	Nombre            string   `gorm:"not null;index" json:"nombre"`
	RFC               string   `json:"rfc,omitempty"`
	Direccion         string   `json:"direccion,omitempty"`
	ContactoPrincipal Contacto `gorm:"embedded;embeddedPrefix:contacto_" json:"contactoPrincipal"`
}
