package uploading

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecodeSpreadsheetCSV(t *testing.T) {
	csvContent := strings.Join([]string{
		`Nome do Item,Comissão líquida do afiliado(R$),Sub_id1,Quantidade`,
		`Fone Bluetooth,"1.234,56",insta-bio,2`,
		`Carregador Turbo,"135,27",,1`,
	}, "\n")

	rows, err := DecodeSpreadsheet("vendas.csv", strings.NewReader(csvContent))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Fone Bluetooth", rows[0][ColumnProductName])
	assert.Equal(t, "1.234,56", rows[0][ColumnRevenue])
	assert.Equal(t, "insta-bio", rows[0][ColumnSubID])
	assert.Equal(t, "2", rows[0][ColumnQuantity])

	assert.Equal(t, "Carregador Turbo", rows[1][ColumnProductName])
	assert.Equal(t, "", rows[1][ColumnSubID])
}

func TestDecodeSpreadsheetCSVShortLines(t *testing.T) {
	// Linhas com menos colunas que o cabeçalho não derrubam o parse
	csvContent := strings.Join([]string{
		`Nome do Item,Comissão líquida do afiliado(R$),Sub_id1`,
		`Fone Bluetooth,"10,00"`,
	}, "\n")

	rows, err := DecodeSpreadsheet("vendas.csv", strings.NewReader(csvContent))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fone Bluetooth", rows[0][ColumnProductName])
	_, hasSubID := rows[0][ColumnSubID]
	assert.False(t, hasSubID)
}

func TestDecodeSpreadsheetXLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]any{
		ColumnProductName, ColumnRevenue, ColumnSubID,
	}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]any{
		"Fone Bluetooth", "1.234,56", "insta-bio",
	}))

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))

	rows, err := DecodeSpreadsheet("vendas.xlsx", &buf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fone Bluetooth", rows[0][ColumnProductName])
	assert.Equal(t, "insta-bio", rows[0][ColumnSubID])
}

func TestDecodeSpreadsheetUnsupportedFormat(t *testing.T) {
	_, err := DecodeSpreadsheet("vendas.pdf", strings.NewReader("dados"))
	assert.Error(t, err)
}
