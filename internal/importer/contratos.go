package importer

import (
	"fmt"
	"strings"

	"github.com/llucior2/control-de-contratos/internal/derive"
	"github.com/llucior2/control-de-contratos/internal/models"
)

// ContratoSummary extends the batch outcome with the skip counters the
// original upload report exposes.
type ContratoSummary struct {
	Summary
	SkippedFolio       int      `json:"skippedFolio"`
	SkippedClient      int      `json:"skippedClient"`
	SkippedFolioNames  []string `json:"skippedFolioNames"`
	SkippedClientNames []string `json:"skippedClientNames"`
}

// Contratos inserts contract rows under one razón social. Folios must be
// new store-wide, and clienteNombre must resolve (case-insensitively) to an
// existing client. Dates arrive as DD/MM/YYYY and are reparsed; the status
// is classified from the date window, so future-dated contracts come in as
// «Pendiente».
func Contratos(snap *models.Snapshot, rows []Row, razonSocialID uint) ContratoSummary {
	folios := make(map[string]bool)
	for _, c := range snap.Contratos {
		folios[c.Folio] = true
	}
	clientePorNombre := make(map[string]uint)
	for _, c := range snap.Clientes {
		clientePorNombre[strings.ToLower(c.Nombre)] = c.ID
	}

	sum := ContratoSummary{
		Summary:            newSummary(),
		SkippedFolioNames:  make([]string, 0),
		SkippedClientNames: make([]string, 0),
	}
	nextID := snap.NextContratoID()
	today := derive.Today()
	for i, row := range rows {
		folio := row.Str("folio")
		if folios[folio] {
			sum.fail(i, row, fmt.Sprintf("Folio de contrato '%s' ya existe.", folio))
			sum.SkippedFolio++
			sum.SkippedFolioNames = append(sum.SkippedFolioNames, folio)
			continue
		}
		clienteNombre := row.Str("clienteNombre")
		clienteID, ok := clientePorNombre[strings.ToLower(clienteNombre)]
		if !ok {
			sum.fail(i, row, fmt.Sprintf("Cliente '%s' no encontrado para la Razón Social seleccionada.", clienteNombre))
			sum.SkippedClient++
			sum.SkippedClientNames = append(sum.SkippedClientNames, row.Str("nombreProyecto"))
			continue
		}
		fechaInicio := ParseDMY(row.Str("fechaInicio"))
		fechaTermino := ParseDMY(row.Str("fechaTermino"))
		monto := row.Num("monto")
		anticipoPct := row.Num("anticipoPorcentaje")
		snap.Contratos = append(snap.Contratos, models.Contrato{
			ID:                      nextID,
			RazonSocialID:           razonSocialID,
			ClienteID:               clienteID,
			NombreProyecto:          row.Str("nombreProyecto"),
			Folio:                   folio,
			Objeto:                  row.Str("objeto"),
			Monto:                   monto,
			Moneda:                  row.Str("moneda"),
			TipoDeCambio:            row.Num("tipoDeCambio"),
			FechaInicio:             fechaInicio,
			FechaTermino:            fechaTermino,
			TipoContrato:            row.Str("tipoContrato"),
			TipoIVA:                 row.Str("tipoIVA"),
			AnticipoPorcentaje:      anticipoPct,
			FondoGarantiaPorcentaje: row.Num("fondoGarantiaPorcentaje"),
			MontoAnticipoOtorgado:   derive.MontoAnticipoOtorgado(monto, anticipoPct),
			Estatus:                 derive.ContratoStatus(fechaInicio, fechaTermino, today),
			FianzaAnticipo:          row.Str("fianzaAnticipo"),
			Penalizaciones:          row.Str("penalizaciones"),
		})
		folios[folio] = true
		nextID++
		sum.Added++
	}
	sum.Message = fmt.Sprintf("Contratos: %d agregados. Errores: %d.", sum.Added, len(sum.Errors))
	return sum
}
