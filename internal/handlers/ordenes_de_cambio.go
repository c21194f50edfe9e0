package handlers

import (
	"net/http"

	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type OrdenDeCambioHandler struct {
	Store *store.Store
}

func NewOrdenDeCambioHandler(st *store.Store) *OrdenDeCambioHandler {
	return &OrdenDeCambioHandler{Store: st}
}

func (h *OrdenDeCambioHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.OrdenDeCambio
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.OrdenesDeCambio
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Create inserts the order as sent; the contract amount is never mutated,
// consumers recompute displayed totals from the orders.
func (h *OrdenDeCambioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.OrdenDeCambio
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		in.ID = s.NextOrdenDeCambioID()
		s.OrdenesDeCambio = append(s.OrdenesDeCambio, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *OrdenDeCambioHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.OrdenDeCambio
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.OrdenesDeCambio, id, func(o models.OrdenDeCambio) uint { return o.ID })
		if i < 0 {
			return notFound("Orden de Cambio no encontrada")
		}
		if err := mergePatch(&s.OrdenesDeCambio[i], patch); err != nil {
			return err
		}
		s.OrdenesDeCambio[i].ID = id
		out = s.OrdenesDeCambio[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *OrdenDeCambioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.OrdenesDeCambio = removeByID(s.OrdenesDeCambio, id, func(o models.OrdenDeCambio) uint { return o.ID })
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
