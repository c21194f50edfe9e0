package importer

import (
	"fmt"

	"github.com/llucior2/control-de-contratos/internal/models"
)

// Conceptos inserts catalog concept rows, rejecting claves that already
// exist store-wide or earlier in the batch.
func Conceptos(snap *models.Snapshot, rows []Row) Summary {
	claves := make(map[string]bool)
	for _, c := range snap.CatalogoConceptos {
		claves[c.Clave] = true
	}

	sum := newSummary()
	nextID := snap.NextCatalogoConceptoID()
	for i, row := range rows {
		clave := row.Str("clave")
		if claves[clave] {
			sum.fail(i, row, fmt.Sprintf("La clave de concepto '%s' ya existe.", clave))
			continue
		}
		snap.CatalogoConceptos = append(snap.CatalogoConceptos, models.CatalogoConcepto{
			ID:         nextID,
			Clave:      clave,
			Nombre:     row.Str("nombre"),
			Disciplina: row.Str("disciplina"),
		})
		claves[clave] = true
		nextID++
		sum.Added++
	}
	sum.Message = fmt.Sprintf("Carga de conceptos finalizada. Agregados: %d. Errores: %d.", sum.Added, len(sum.Errors))
	return sum
}

// Procesos inserts construction process rows, resolving
// catalogoConceptoClave to a concept id.
func Procesos(snap *models.Snapshot, rows []Row) Summary {
	conceptoPorClave := make(map[string]uint)
	for _, c := range snap.CatalogoConceptos {
		conceptoPorClave[c.Clave] = c.ID
	}

	sum := newSummary()
	nextID := snap.NextProcesoConstructivoID()
	for i, row := range rows {
		clave := row.Str("catalogoConceptoClave")
		conceptoID, ok := conceptoPorClave[clave]
		if !ok {
			sum.fail(i, row, fmt.Sprintf("No se encontró el concepto con la clave '%s'.", clave))
			continue
		}
		snap.ProcesosConstructivos = append(snap.ProcesosConstructivos, models.ProcesoConstructivo{
			ID:                 nextID,
			CatalogoConceptoID: conceptoID,
			Nombre:             row.Str("nombre"),
			Descripcion:        row.Str("descripcion"),
			Porcentaje:         row.Num("porcentaje"),
		})
		nextID++
		sum.Added++
	}
	sum.Message = fmt.Sprintf("Carga de procesos finalizada. Agregados: %d. Errores: %d.", sum.Added, len(sum.Errors))
	return sum
}
