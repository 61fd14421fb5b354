package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ycsbcli/pkg/contracts/domain"
)

// writeCell stores a summary cell on a worksheet. Numbers are written as
// full-precision float cells; absent cells are skipped.
func writeCell(f *excelize.File, sheet string, row, col int, cell domain.Cell) error {
	if cell.IsAbsent() {
		return nil
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell position (%d, %d): %w", row, col, err)
	}

	if cell.IsNumber() {
		return f.SetCellFloat(sheet, axis, cell.Number, -1, 64)
	}
	return f.SetCellStr(sheet, axis, cell.Text)
}
