package derive

import (
	"log"
	"time"

	"github.com/llucior2/control-de-contratos/internal/models"
)

// ContratoStatus classifies a contract by its date window: «Pendiente»
// before the start date, «Vencido» after the end date, «Vigente» in
// between. Malformed dates yield «Desconocido». Only bulk import uses the
// full classification; the live read path goes through ExpireContratos.
func ContratoStatus(fechaInicio, fechaTermino string, today time.Time) string {
	inicio, ok := parseLocalDate(fechaInicio)
	if !ok {
		return models.ContratoDesconocido
	}
	termino, ok := parseLocalDate(fechaTermino)
	if !ok {
		return models.ContratoDesconocido
	}
	switch {
	case inicio.After(today):
		return models.ContratoPendiente
	case termino.Before(today):
		return models.ContratoVencido
	default:
		return models.ContratoVigente
	}
}

// ExpireContratos is the read-path sweep: it returns a copy of the
// collection where every non-cancelled contract whose end date is behind
// today is shown as «Vencido». It never restores any other status, and a
// date that fails to parse leaves the stored status untouched.
func ExpireContratos(contratos []models.Contrato, today time.Time) []models.Contrato {
	out := make([]models.Contrato, len(contratos))
	copy(out, contratos)
	for i := range out {
		c := &out[i]
		if c.FechaTermino == "" || c.Estatus == models.ContratoCancelado {
			continue
		}
		termino, ok := parseLocalDate(c.FechaTermino)
		if !ok {
			log.Printf("contrato %d: fecha de término inválida %q, estatus sin cambio", c.ID, c.FechaTermino)
			continue
		}
		if today.After(termino) {
			c.Estatus = models.ContratoVencido
		}
	}
	return out
}
