package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llucior2/control-de-contratos/internal/models"
)

func TestRowCoercion(t *testing.T) {
	row := Row{"monto": "1500.50", "folio": float64(42), "vacio": nil, "texto": "abc"}

	assert.Equal(t, 1500.50, row.Num("monto"))
	assert.Equal(t, 0.0, row.Num("texto"), "non-numeric coerces to 0")
	assert.Equal(t, 0.0, row.Num("missing"))
	assert.Equal(t, "42", row.Str("folio"), "numeric folios read back as text")
	assert.Equal(t, "", row.Str("vacio"))
}

func TestParseDMY(t *testing.T) {
	assert.Equal(t, "2026-03-15", ParseDMY("15/03/2026"))
	assert.Equal(t, "2026-03-15", ParseDMY("2026-03-15"), "already ISO passes through")
	assert.Equal(t, "", ParseDMY(""))
	assert.Equal(t, "15/03", ParseDMY("15/03"), "two parts pass through untouched")
}

func TestClientesDedupeWithinBatch(t *testing.T) {
	snap := &models.Snapshot{}
	rows := []Row{
		{"nombre": "Grupo Alfa"},
		{"nombre": "grupo alfa"},
	}
	sum := Clientes(snap, rows, 1)

	assert.Equal(t, 1, sum.Added, "same (name, razón social) pair twice yields one insert")
	require.Len(t, sum.Errors, 1)
	assert.Equal(t, 3, sum.Errors[0].Row, "second data row reports as row 3")
	assert.Len(t, snap.Clientes, 1)
}

func TestClientesDedupeAgainstStoreScopedByRazonSocial(t *testing.T) {
	snap := &models.Snapshot{Clientes: []models.Cliente{{ID: 1, RazonSocialID: 1, Nombre: "Grupo Alfa"}}}
	rows := []Row{{"nombre": "GRUPO ALFA"}}

	assert.Equal(t, 0, Clientes(snap, rows, 1).Added, "duplicate under same razón social rejected")
	assert.Equal(t, 1, Clientes(snap, rows, 2).Added, "same name under another razón social is fine")
}

func TestClientesRejectsEmptyName(t *testing.T) {
	snap := &models.Snapshot{}
	sum := Clientes(snap, []Row{{"nombre": "   "}, {"rfc": "XXX"}}, 1)
	assert.Equal(t, 0, sum.Added)
	assert.Len(t, sum.Errors, 2)
}

func TestClientesAssignsIncrementingIDs(t *testing.T) {
	snap := &models.Snapshot{Clientes: []models.Cliente{{ID: 1, RazonSocialID: 9, Nombre: "Viejo"}, {ID: 3, RazonSocialID: 9, Nombre: "Otro"}}}
	sum := Clientes(snap, []Row{{"nombre": "Nuevo A"}, {"nombre": "Nuevo B"}}, 1)
	require.Equal(t, 2, sum.Added)
	assert.Equal(t, uint(4), snap.Clientes[2].ID)
	assert.Equal(t, uint(5), snap.Clientes[3].ID)
}

func TestContratosResolutionAndDedupe(t *testing.T) {
	snap := &models.Snapshot{
		Clientes:  []models.Cliente{{ID: 7, RazonSocialID: 1, Nombre: "Grupo Alfa"}},
		Contratos: []models.Contrato{{ID: 1, Folio: "C-001"}},
	}
	rows := []Row{
		{"folio": "C-001", "clienteNombre": "Grupo Alfa", "nombreProyecto": "Torre Norte"},
		{"folio": "C-002", "clienteNombre": "No Existe", "nombreProyecto": "Nave Sur"},
		{"folio": "C-003", "clienteNombre": "GRUPO ALFA", "nombreProyecto": "Puente", "monto": float64(100000), "anticipoPorcentaje": float64(20), "fechaInicio": "01/01/2020", "fechaTermino": "31/12/2020"},
		{"folio": "C-003", "clienteNombre": "Grupo Alfa", "nombreProyecto": "Puente bis"},
	}
	sum := Contratos(snap, rows, 1)

	assert.Equal(t, 1, sum.Added)
	assert.Len(t, sum.Errors, 3)
	assert.Equal(t, len(rows), sum.Added+len(sum.Errors), "every row is either added or an error")
	assert.Equal(t, 2, sum.SkippedFolio, "existing folio plus in-batch repeat")
	assert.Equal(t, 1, sum.SkippedClient)
	assert.Equal(t, []string{"C-001", "C-003"}, sum.SkippedFolioNames)
	assert.Equal(t, []string{"Nave Sur"}, sum.SkippedClientNames)

	require.Len(t, snap.Contratos, 2)
	c := snap.Contratos[1]
	assert.Equal(t, uint(2), c.ID)
	assert.Equal(t, uint(7), c.ClienteID, "client resolved case-insensitively")
	assert.Equal(t, "2020-01-01", c.FechaInicio, "DD/MM/YYYY reparsed")
	assert.Equal(t, models.ContratoVencido, c.Estatus, "past window classifies as Vencido")
	assert.Equal(t, 20000.0, c.MontoAnticipoOtorgado)
}

func TestContratosFutureWindowIsPendiente(t *testing.T) {
	snap := &models.Snapshot{Clientes: []models.Cliente{{ID: 1, Nombre: "Alfa"}}}
	rows := []Row{{"folio": "F-1", "clienteNombre": "Alfa", "fechaInicio": "01/01/2990", "fechaTermino": "31/12/2990"}}
	sum := Contratos(snap, rows, 1)
	require.Equal(t, 1, sum.Added)
	assert.Equal(t, models.ContratoPendiente, snap.Contratos[0].Estatus)
}

func TestFacturasResolveContratoFolio(t *testing.T) {
	snap := &models.Snapshot{Contratos: []models.Contrato{{ID: 5, Folio: "C-001"}}}
	rows := []Row{
		{"contratoFolio": "C-001", "folioFactura": "F-01", "fechaEmision": "15/03/2026", "importeEstimacion": "50000", "deductivaCargos": "n/a"},
		{"contratoFolio": "C-404", "folioFactura": "F-02"},
	}
	sum := Facturas(snap, rows)

	assert.Equal(t, 1, sum.Added)
	require.Len(t, sum.Errors, 1)
	assert.Equal(t, 3, sum.Errors[0].Row)

	f := snap.Facturas[0]
	assert.Equal(t, uint(5), f.ContratoID)
	assert.Equal(t, "2026-03-15", f.FechaEmision)
	assert.Equal(t, 50000.0, f.ImporteEstimacion)
	assert.Equal(t, 0.0, f.DeductivaCargos, "non-numeric coerced to 0")
	assert.Equal(t, models.FacturaPendiente, f.Estatus, "imported invoices always start Pendiente")
}

func TestPagosResolveAndRecompute(t *testing.T) {
	snap := &models.Snapshot{
		Facturas: []models.Factura{{ID: 1, FolioFactura: "F-01", ImporteEstimacion: 1000, Estatus: models.FacturaPendiente}},
	}
	rows := []Row{
		{"facturaFolio": "F-01", "monto": float64(1000), "metodoDePago": "Cheque", "referencia": "ref-9"},
		{"facturaFolio": "F-99", "monto": float64(10)},
	}
	sum := Pagos(snap, rows)

	assert.Equal(t, 1, sum.Added)
	assert.Len(t, sum.Errors, 1)

	require.Len(t, snap.Pagos, 1)
	p := snap.Pagos[0]
	assert.Equal(t, 1000.0, p.MontoPagado, "legacy monto header accepted")
	assert.Equal(t, "Cheque", p.MetodoPago)
	assert.Equal(t, "ref-9", p.Comentarios)
	assert.NotEmpty(t, p.FechaPago, "missing date defaults to import day")

	assert.Equal(t, models.FacturaPagada, snap.Facturas[0].Estatus, "batch triggers the status sweep")
}

func TestPagosDefaultMetodo(t *testing.T) {
	snap := &models.Snapshot{Facturas: []models.Factura{{ID: 1, FolioFactura: "F-01"}}}
	sum := Pagos(snap, []Row{{"facturaFolio": "F-01", "montoPagado": float64(5)}})
	require.Equal(t, 1, sum.Added)
	assert.Equal(t, "Transferencia", snap.Pagos[0].MetodoPago)
}

func TestConceptosClaveDedupe(t *testing.T) {
	snap := &models.Snapshot{CatalogoConceptos: []models.CatalogoConcepto{{ID: 1, Clave: "ALB-01"}}}
	rows := []Row{
		{"clave": "ALB-01", "nombre": "Albañilería"},
		{"clave": "EST-01", "nombre": "Estructura", "disciplina": "Civil"},
		{"clave": "EST-01", "nombre": "Estructura bis"},
	}
	sum := Conceptos(snap, rows)

	assert.Equal(t, 1, sum.Added)
	assert.Len(t, sum.Errors, 2)
	require.Len(t, snap.CatalogoConceptos, 2)
	assert.Equal(t, "Civil", snap.CatalogoConceptos[1].Disciplina)
}

func TestProcesosResolveConceptoClave(t *testing.T) {
	snap := &models.Snapshot{CatalogoConceptos: []models.CatalogoConcepto{{ID: 4, Clave: "EST-01"}}}
	rows := []Row{
		{"catalogoConceptoClave": "EST-01", "nombre": "Cimbra", "porcentaje": float64(40)},
		{"catalogoConceptoClave": "NOPE", "nombre": "Colado"},
	}
	sum := Procesos(snap, rows)

	assert.Equal(t, 1, sum.Added)
	assert.Len(t, sum.Errors, 1)
	require.Len(t, snap.ProcesosConstructivos, 1)
	assert.Equal(t, uint(4), snap.ProcesosConstructivos[0].CatalogoConceptoID)
	assert.Equal(t, 40.0, snap.ProcesosConstructivos[0].Porcentaje)
}
