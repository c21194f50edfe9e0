package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelRoundtrip(t *testing.T) {
	columns := []Column{
		{Header: "Folio", Key: "folio"},
		{Header: "Proyecto", Key: "nombreProyecto"},
		{Header: "Monto", Key: "monto"},
	}
	rows := []map[string]any{
		{"folio": "C-001", "nombreProyecto": "Torre Norte", "monto": 100000.0},
		{"folio": "C-002", "nombreProyecto": "Nave Sur", "monto": 250000.5},
	}

	data, err := Excel("Contratos", columns, rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Reporte", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Proyecto", header)

	cell, err := f.GetCellValue("Reporte", "A3")
	require.NoError(t, err)
	assert.Equal(t, "C-002", cell)

	monto, err := f.GetCellValue("Reporte", "C2")
	require.NoError(t, err)
	assert.Equal(t, "100000", monto)
}

func TestExcelNoRows(t *testing.T) {
	data, err := Excel("Vacío", []Column{{Header: "Folio", Key: "folio"}}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data, "headers alone still produce a workbook")
}
