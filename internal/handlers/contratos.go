package handlers

import (
	"net/http"

	"github.com/llucior2/control-de-contratos/internal/derive"
	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type ContratoHandler struct {
	Store *store.Store
}

func NewContratoHandler(st *store.Store) *ContratoHandler {
	return &ContratoHandler{Store: st}
}

// List serves the collection through the expiration sweep: expired statuses
// are presentation-only, nothing is written back.
func (h *ContratoHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.Contrato
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = derive.ExpireContratos(s.Contratos, derive.Today())
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ContratoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Contrato
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	// the granted advance is fixed at creation from amount and percentage
	in.MontoAnticipoOtorgado = derive.MontoAnticipoOtorgado(in.Monto, in.AnticipoPorcentaje)
	if in.Estatus == "" {
		in.Estatus = models.ContratoVigente
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		in.ID = s.NextContratoID()
		s.Contratos = append(s.Contratos, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *ContratoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	var patch map[string]any
	if err := decodeJSON(r, &patch); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	var out models.Contrato
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.Contratos, id, func(c models.Contrato) uint { return c.ID })
		if i < 0 {
			return notFound("Contrato no encontrado")
		}
		if err := mergePatch(&s.Contratos[i], patch); err != nil {
			return err
		}
		s.Contratos[i].ID = id
		out = s.Contratos[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ContratoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.Contratos = removeByID(s.Contratos, id, func(c models.Contrato) uint { return c.ID })
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
