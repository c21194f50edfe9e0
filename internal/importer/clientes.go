package importer

import (
	"fmt"
	"strings"

	"github.com/llucior2/control-de-contratos/internal/models"
)

// Clientes inserts client rows under one razón social. Duplicate names,
// against the store or earlier rows of the same batch, are rejected
// case-insensitively.
func Clientes(snap *models.Snapshot, rows []Row, razonSocialID uint) Summary {
	existing := make(map[string]bool)
	for _, c := range snap.Clientes {
		if c.RazonSocialID == razonSocialID {
			existing[strings.ToLower(c.Nombre)] = true
		}
	}

	sum := newSummary()
	nextID := snap.NextClienteID()
	for i, row := range rows {
		nombre := row.Str("nombre")
		if strings.TrimSpace(nombre) == "" {
			sum.fail(i, row, "El nombre del cliente no puede estar vacío.")
			continue
		}
		key := strings.ToLower(nombre)
		if existing[key] {
			sum.fail(i, row, "Ya existe un cliente con este nombre en la razón social seleccionada.")
			continue
		}
		snap.Clientes = append(snap.Clientes, models.Cliente{
			ID:            nextID,
			RazonSocialID: razonSocialID,
			Nombre:        nombre,
			RFC:           row.Str("rfc"),
			Direccion:     row.Str("direccion"),
			ContactoPrincipal: models.Contacto{
				Nombre:   row.Str("contacto_nombre"),
				Telefono: row.Str("contacto_telefono"),
				Email:    row.Str("contacto_email"),
			},
		})
		existing[key] = true
		nextID++
		sum.Added++
	}
	sum.Message = fmt.Sprintf("Carga finalizada. Clientes agregados: %d. Errores: %d.", sum.Added, len(sum.Errors))
	return sum
}
