package handlers

import (
	"net/http"

	"github.com/llucior2/control-de-contratos/internal/derive"
	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

// PagoHandler mutations always end with the full invoice-status sweep: any
// payment change can flip any invoice between Pendiente, Pagada
// Parcialmente and Pagada.
type PagoHandler struct {
	Store *store.Store
}

func NewPagoHandler(st *store.Store) *PagoHandler {
	return &PagoHandler{Store: st}
}

func (h *PagoHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.Pago
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.Pagos
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *PagoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Pago
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		in.ID = s.NextPagoID()
		s.Pagos = append(s.Pagos, in)
		derive.RecomputeFacturaStatuses(s.Facturas, s.Pagos)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *PagoHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.Pago
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.Pagos, id, func(p models.Pago) uint { return p.ID })
		if i < 0 {
			return notFound("Pago no encontrado")
		}
		if err := mergePatch(&s.Pagos[i], patch); err != nil {
			return err
		}
		s.Pagos[i].ID = id
		out = s.Pagos[i]
		derive.RecomputeFacturaStatuses(s.Facturas, s.Pagos)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *PagoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.Pagos = removeByID(s.Pagos, id, func(p models.Pago) uint { return p.ID })
		derive.RecomputeFacturaStatuses(s.Facturas, s.Pagos)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
