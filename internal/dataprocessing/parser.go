package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"ycsbcli/internal/errors"
	"ycsbcli/pkg/contracts/domain"
)

// OpenWorkbook opens an xlsx workbook for reading and in-place saving.
func OpenWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open workbook", err).WithContext("path", path)
	}
	return f, nil
}

// LoadGrid reads a whole sheet into a typed grid. Cell kinds come from the
// stored cell type rather than from the formatted text, so a number stored
// as text stays text.
func LoadGrid(f *excelize.File, sheet string) (*domain.Grid, error) {
	index, err := f.GetSheetIndex(sheet)
	if err != nil || index < 0 {
		return nil, errors.NewNotFoundError("sheet " + sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewParsingError("failed to read sheet rows", err).WithContext("sheet", sheet)
	}

	grid := domain.NewGrid()
	for r, row := range rows {
		for c, raw := range row {
			if raw == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, errors.NewParsingError("invalid cell coordinates", err).
					WithContext("row", r+1).WithContext("column", c+1)
			}
			cellType, err := f.GetCellType(sheet, axis)
			if err != nil {
				return nil, errors.NewParsingError("failed to read cell type", err).WithContext("cell", axis)
			}
			grid.Set(r+1, c+1, toCell(cellType, raw))
		}
	}

	slog.Debug("Sheet loaded",
		slog.String("sheet", sheet),
		slog.Int("rows", grid.MaxRow()),
		slog.Int("columns", grid.MaxColumn()))

	return grid, nil
}

// toCell maps a stored excelize value to a grid cell. Booleans count as
// numbers (0/1). Serial dates are numbers; ISO date cells, errors and
// formula strings are text.
func toCell(cellType excelize.CellType, raw string) domain.Cell {
	switch cellType {
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return domain.NumberCell(1)
		}
		return domain.NumberCell(0)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return domain.NumberCell(v)
		}
		return domain.TextCell(raw)
	default:
		return domain.TextCell(raw)
	}
}
