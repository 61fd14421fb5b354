package dataprocessing

import (
	"fmt"

	"ycsbcli/internal/config"
)

// Layout is the fixed geometry of an evaluation sheet. Every benchmark
// iteration occupies BlockStride rows starting at FirstDataRow; only the
// first TrialRows of a block hold measurements, the rest are spacers.
type Layout struct {
	HeaderRow       int
	MetadataColumns int
	FirstDataRow    int
	BlockStride     int
	TrialRows       int
	RowLimit        int // exclusive
}

// DefaultLayout matches the sheets produced by the YCSB evaluation runs
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:       config.DefaultHeaderRow,
		MetadataColumns: config.DefaultMetadataColumns,
		FirstDataRow:    config.DefaultFirstDataRow,
		BlockStride:     config.DefaultBlockStride,
		TrialRows:       config.DefaultTrialRows,
		RowLimit:        config.DefaultRowLimit,
	}
}

// LayoutFromConfig copies the geometry part of the layout configuration
func LayoutFromConfig(cfg config.LayoutConfig) Layout {
	return Layout{
		HeaderRow:       cfg.HeaderRow,
		MetadataColumns: cfg.MetadataColumns,
		FirstDataRow:    cfg.FirstDataRow,
		BlockStride:     cfg.BlockStride,
		TrialRows:       cfg.TrialRows,
		RowLimit:        cfg.RowLimit,
	}
}

// Validate rejects layouts the block scan cannot walk
func (l Layout) Validate() error {
	switch {
	case l.HeaderRow < 1:
		return fmt.Errorf("header row must be positive, got %d", l.HeaderRow)
	case l.MetadataColumns < 0:
		return fmt.Errorf("metadata columns must not be negative, got %d", l.MetadataColumns)
	case l.FirstDataRow <= l.HeaderRow:
		return fmt.Errorf("first data row %d must follow header row %d", l.FirstDataRow, l.HeaderRow)
	case l.BlockStride < 1:
		return fmt.Errorf("block stride must be positive, got %d", l.BlockStride)
	case l.TrialRows < 1 || l.TrialRows > l.BlockStride:
		return fmt.Errorf("trial rows must be in [1, %d], got %d", l.BlockStride, l.TrialRows)
	case l.RowLimit <= l.FirstDataRow:
		return fmt.Errorf("row limit %d must be past first data row %d", l.RowLimit, l.FirstDataRow)
	}
	return nil
}

// BlockStarts returns the first row of every block below RowLimit
func (l Layout) BlockStarts() []int {
	starts := make([]int, 0, l.BlockCount())
	for row := l.FirstDataRow; row < l.RowLimit; row += l.BlockStride {
		starts = append(starts, row)
	}
	return starts
}

// BlockCount is the number of summary data rows the layout produces
func (l Layout) BlockCount() int {
	if l.BlockStride < 1 || l.RowLimit <= l.FirstDataRow {
		return 0
	}
	return (l.RowLimit - l.FirstDataRow + l.BlockStride - 1) / l.BlockStride
}
