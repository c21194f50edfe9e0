package handlers

import (
	"net/http"

	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type CatalogoConceptoHandler struct {
	Store *store.Store
}

func NewCatalogoConceptoHandler(st *store.Store) *CatalogoConceptoHandler {
	return &CatalogoConceptoHandler{Store: st}
}

func (h *CatalogoConceptoHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.CatalogoConcepto
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.CatalogoConceptos
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *CatalogoConceptoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CatalogoConcepto
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		in.ID = s.NextCatalogoConceptoID()
		s.CatalogoConceptos = append(s.CatalogoConceptos, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *CatalogoConceptoHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.CatalogoConcepto
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.CatalogoConceptos, id, func(c models.CatalogoConcepto) uint { return c.ID })
		if i < 0 {
			return notFound("Concepto de Catálogo no encontrado")
		}
		if err := mergePatch(&s.CatalogoConceptos[i], patch); err != nil {
			return err
		}
		s.CatalogoConceptos[i].ID = id
		out = s.CatalogoConceptos[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Delete removes the concept and cascades to its construction processes.
func (h *CatalogoConceptoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.CatalogoConceptos = removeByID(s.CatalogoConceptos, id, func(c models.CatalogoConcepto) uint { return c.ID })
		kept := make([]models.ProcesoConstructivo, 0, len(s.ProcesosConstructivos))
		for _, p := range s.ProcesosConstructivos {
			if p.CatalogoConceptoID != id {
				kept = append(kept, p)
			}
		}
		s.ProcesosConstructivos = kept
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}

type ProcesoConstructivoHandler struct {
	Store *store.Store
}

func NewProcesoConstructivoHandler(st *store.Store) *ProcesoConstructivoHandler {
	return &ProcesoConstructivoHandler{Store: st}
}

func (h *ProcesoConstructivoHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.ProcesoConstructivo
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.ProcesosConstructivos
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ProcesoConstructivoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProcesoConstructivo
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		in.ID = s.NextProcesoConstructivoID()
		s.ProcesosConstructivos = append(s.ProcesosConstructivos, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *ProcesoConstructivoHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.ProcesoConstructivo
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.ProcesosConstructivos, id, func(p models.ProcesoConstructivo) uint { return p.ID })
		if i < 0 {
			return notFound("Proceso Constructivo no encontrado")
		}
		if err := mergePatch(&s.ProcesosConstructivos[i], patch); err != nil {
			return err
		}
		s.ProcesosConstructivos[i].ID = id
		out = s.ProcesosConstructivos[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ProcesoConstructivoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.ProcesosConstructivos = removeByID(s.ProcesosConstructivos, id, func(p models.ProcesoConstructivo) uint { return p.ID })
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
