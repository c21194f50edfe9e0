package handlers

import (
	"net/http"
	"strings"

	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type ClienteHandler struct {
	Store *store.Store
}

func NewClienteHandler(st *store.Store) *ClienteHandler {
	return &ClienteHandler{Store: st}
}

func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.Cliente
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.Clientes
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Cliente
	if err := decodeJSON(r, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		if in.Nombre == "" || in.RazonSocialID == 0 {
			return badRequest("El nombre del cliente y la Razón Social son obligatorios.")
		}
		for _, c := range s.Clientes {
			if strings.EqualFold(c.Nombre, in.Nombre) && c.RazonSocialID == in.RazonSocialID {
				return conflict("Este cliente ya existe para la Razón Social seleccionada.")
			}
		}
		in.ID = s.NextClienteID()
		s.Clientes = append(s.Clientes, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.Cliente
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.Clientes, id, func(c models.Cliente) uint { return c.ID })
		if i < 0 {
			return notFound("Cliente no encontrado")
		}
		if err := mergePatch(&s.Clientes[i], patch); err != nil {
			return err
		}
		s.Clientes[i].ID = id
		out = s.Clientes[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.Clientes = removeByID(s.Clientes, id, func(c models.Cliente) uint { return c.ID })
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}

// RazonesPorCliente lists the distinct razones sociales that own a client
// with the given name, matched case-insensitively.
func (h *ClienteHandler) RazonesPorCliente(w http.ResponseWriter, r *http.Request) {
	nombre := r.URL.Query().Get("nombreCliente")
	if nombre == "" {
		httpx.Error(w, http.StatusBadRequest, "El nombre del cliente es obligatorio.")
		return
	}
	out := make([]models.RazonSocial, 0)
	if err := h.Store.View(func(s *models.Snapshot) error {
		ids := make(map[uint]bool)
		for _, c := range s.Clientes {
			if strings.EqualFold(c.Nombre, nombre) {
				ids[c.RazonSocialID] = true
			}
		}
		for _, rs := range s.RazonesSociales {
			if ids[rs.ID] {
				out = append(out, rs)
			}
		}
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}
