package handlers

import (
	"net/http"

	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type RazonSocialHandler struct {
	Store *store.Store
}

func NewRazonSocialHandler(st *store.Store) *RazonSocialHandler {
	return &RazonSocialHandler{Store: st}
}

func (h *RazonSocialHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.RazonSocial
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.RazonesSociales
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *RazonSocialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.RazonSocial
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		in.ID = s.NextRazonSocialID()
		s.RazonesSociales = append(s.RazonesSociales, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *RazonSocialHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.RazonSocial
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.RazonesSociales, id, func(rs models.RazonSocial) uint { return rs.ID })
		if i < 0 {
			return notFound("Razón Social no encontrada")
		}
		if err := mergePatch(&s.RazonesSociales[i], patch); err != nil {
			return err
		}
		s.RazonesSociales[i].ID = id
		out = s.RazonesSociales[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Delete removes the razón social only; clients and contracts referencing
// it are kept and surface as unknown at read time.
func (h *RazonSocialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.RazonesSociales = removeByID(s.RazonesSociales, id, func(rs models.RazonSocial) uint { return rs.ID })
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
