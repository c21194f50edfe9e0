package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/importer"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type BulkHandler struct {
	Store *store.Store
}

func NewBulkHandler(st *store.Store) *BulkHandler {
	return &BulkHandler{Store: st}
}

// flexID tolerates the razón social id arriving as a JSON number or as a
// quoted string (older upload clients send form-style values).
type flexID uint

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexID(n)
	return nil
}

// decodeBulk accepts either a raw row array or {data, razonSocialId}.
func decodeBulk(r *http.Request) ([]importer.Row, uint, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, 0, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []importer.Row
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, 0, err
		}
		return rows, 0, nil
	}
	var req struct {
		Data          []importer.Row `json:"data"`
		RazonSocialID flexID         `json:"razonSocialId"`
	}
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, 0, err
	}
	return req.Data, uint(req.RazonSocialID), nil
}

func (h *BulkHandler) Clientes(w http.ResponseWriter, r *http.Request) {
	rows, razonSocialID, err := decodeBulk(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if len(rows) == 0 {
		httpx.Error(w, http.StatusBadRequest, "No se recibieron datos.")
		return
	}
	if razonSocialID == 0 {
		httpx.Error(w, http.StatusBadRequest, "Debe seleccionar una Razón Social.")
		return
	}
	var sum importer.Summary
	if err := h.Store.Update(func(s *models.Snapshot) error {
		sum = importer.Clientes(s, rows, razonSocialID)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sum)
}

func (h *BulkHandler) Contratos(w http.ResponseWriter, r *http.Request) {
	rows, razonSocialID, err := decodeBulk(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if len(rows) == 0 {
		httpx.Error(w, http.StatusBadRequest, "No se recibieron datos.")
		return
	}
	if razonSocialID == 0 {
		httpx.Error(w, http.StatusBadRequest, "Debe seleccionar una Razón Social.")
		return
	}
	var sum importer.ContratoSummary
	if err := h.Store.Update(func(s *models.Snapshot) error {
		sum = importer.Contratos(s, rows, razonSocialID)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sum)
}

func (h *BulkHandler) Facturas(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, importer.Facturas)
}

func (h *BulkHandler) Pagos(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, importer.Pagos)
}

func (h *BulkHandler) Conceptos(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, importer.Conceptos)
}

func (h *BulkHandler) Procesos(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, importer.Procesos)
}

// run handles the reconcilers that need no razón social scope.
func (h *BulkHandler) run(w http.ResponseWriter, r *http.Request, reconcile func(*models.Snapshot, []importer.Row) importer.Summary) {
	rows, _, err := decodeBulk(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if len(rows) == 0 {
		httpx.Error(w, http.StatusBadRequest, "No se recibieron datos.")
		return
	}
	var sum importer.Summary
	if err := h.Store.Update(func(s *models.Snapshot) error {
		sum = reconcile(s, rows)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sum)
}
