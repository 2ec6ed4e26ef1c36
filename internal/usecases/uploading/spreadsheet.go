package uploading

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// DecodeSpreadsheet lê um arquivo .csv ou .xlsx e devolve as linhas indexadas
// pelo cabeçalho, no mesmo formato que chega no upload via JSON.
func DecodeSpreadsheet(filename string, file io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return decodeXLSX(file)
	case ".csv", "":
		return decodeCSV(file)
	default:
		return nil, errors.Errorf("formato de planilha não suportado: %s", filepath.Ext(filename))
	}
}

func decodeCSV(file io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("planilha sem cabeçalho")
	}

	return headerKeyedRows(lines), nil
}

func decodeXLSX(file io.Reader) ([]RawRow, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	// O export da Shopee tem uma única aba; lemos sempre a primeira
	lines, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("planilha sem cabeçalho")
	}

	return headerKeyedRows(lines), nil
}

func headerKeyedRows(lines [][]string) []RawRow {
	header := lines[0]
	rows := make([]RawRow, 0, len(lines)-1)

	for _, line := range lines[1:] {
		row := make(RawRow, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if i < len(line) {
				row[name] = line[i]
			}
		}
		rows = append(rows, row)
	}

	return rows
}
