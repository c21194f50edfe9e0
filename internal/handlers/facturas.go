package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/llucior2/control-de-contratos/internal/derive"
	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/models"
	"github.com/llucior2/control-de-contratos/internal/store"
)

type FacturaHandler struct {
	Store *store.Store
}

func NewFacturaHandler(st *store.Store) *FacturaHandler {
	return &FacturaHandler{Store: st}
}

func (h *FacturaHandler) List(w http.ResponseWriter, r *http.Request) {
	var out []models.Factura
	if err := h.Store.View(func(s *models.Snapshot) error {
		out = s.Facturas
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Create inserts an invoice. When the body omits both amortization and
// retention, they are auto-populated from the contract percentages; any
// value sent, zero included, is honored as manual. A cumulative total over
// the contract cap is tolerated but logged, the UI unlocks the field for
// manual editing on its side.
func (h *FacturaHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	var in models.Factura
	if err := json.Unmarshal(body, &in); err != nil {
		httpx.Error(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	var sent map[string]json.RawMessage
	_ = json.Unmarshal(body, &sent)
	_, amortSet := sent["amortizacionAnticipo"]
	_, fondoSet := sent["fondoGarantia"]
	if in.Estatus == "" {
		in.Estatus = models.FacturaPendiente
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		ci := indexByID(s.Contratos, in.ContratoID, func(c models.Contrato) uint { return c.ID })
		if ci >= 0 {
			contrato := s.Contratos[ci]
			if !amortSet && !fondoSet {
				in.AmortizacionAnticipo, in.FondoGarantia = derive.AnticipoDefaults(contrato, in.ImporteEstimacion)
			}
			amort, fondo := derive.AcumuladosContrato(contrato.ID, s.Facturas, 0)
			if derive.CapExceeded(amort+in.AmortizacionAnticipo, derive.AnticipoCap(contrato)) {
				log.Printf("contrato %d: la amortización acumulada %.2f excede el anticipo otorgado %.2f", contrato.ID, amort+in.AmortizacionAnticipo, derive.AnticipoCap(contrato))
			}
			if derive.CapExceeded(fondo+in.FondoGarantia, derive.FondoGarantiaCap(contrato)) {
				log.Printf("contrato %d: el fondo de garantía acumulado %.2f excede el tope del contrato %.2f", contrato.ID, fondo+in.FondoGarantia, derive.FondoGarantiaCap(contrato))
			}
		}
		in.ID = s.NextFacturaID()
		s.Facturas = append(s.Facturas, in)
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, in)
}

// Update merges fields as sent; edits never re-derive amortization or
// retention.
func (h *FacturaHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var out models.Factura
	if err := h.Store.Update(func(s *models.Snapshot) error {
		i := indexByID(s.Facturas, id, func(f models.Factura) uint { return f.ID })
		if i < 0 {
			return notFound("Factura no encontrada")
		}
		if err := mergePatch(&s.Facturas[i], patch); err != nil {
			return err
		}
		s.Facturas[i].ID = id
		out = s.Facturas[i]
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *FacturaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Id inválido.")
		return
	}
	if err := h.Store.Update(func(s *models.Snapshot) error {
		s.Facturas = removeByID(s.Facturas, id, func(f models.Factura) uint { return f.ID })
		return nil
	}); err != nil {
		respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
