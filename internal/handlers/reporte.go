package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/report"
)

type ReporteHandler struct{}

func NewReporteHandler() *ReporteHandler {
	return &ReporteHandler{}
}

// Excel streams a workbook built from the column/row descriptors the UI
// sends for whatever list view is on screen.
func (h *ReporteHandler) Excel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string           `json:"title"`
		Columns []report.Column  `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}
	if err := decodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if req.Title == "" || len(req.Columns) == 0 || req.Rows == nil {
		httpx.Error(w, http.StatusBadRequest, "Datos para el reporte incompletos.")
		return
	}
	data, err := report.Excel(req.Title, req.Columns, req.Rows)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Error interno al generar el reporte.")
		return
	}
	filename := strings.ReplaceAll(req.Title, `"`, "")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("reporte: error al escribir la respuesta: %v", err)
	}
}
