package dataprocessing

import (
	"ycsbcli/pkg/contracts/domain"
)

// evaluationGrid builds evaluation sheets cell by cell for tests
type evaluationGrid struct {
	*domain.Grid
}

func newEvaluationGrid() *evaluationGrid {
	return &evaluationGrid{Grid: domain.NewGrid()}
}

// header sets the label of a column on row 1
func (g *evaluationGrid) header(col int, label string) *evaluationGrid {
	g.Set(1, col, domain.TextCell(label))
	return g
}

// trials fills consecutive rows from start with values. float64 and int
// become numbers, strings become text and nil leaves the cell absent.
func (g *evaluationGrid) trials(col, start int, values ...interface{}) *evaluationGrid {
	for i, v := range values {
		g.Set(start+i, col, toTestCell(v))
	}
	return g
}

// fillBlocks writes the same trial values into every block of the layout
func (g *evaluationGrid) fillBlocks(layout Layout, col int, values ...interface{}) *evaluationGrid {
	for _, start := range layout.BlockStarts() {
		g.trials(col, start, values...)
	}
	return g
}

func toTestCell(v interface{}) domain.Cell {
	switch val := v.(type) {
	case nil:
		return domain.Cell{}
	case int:
		return domain.NumberCell(float64(val))
	case float64:
		return domain.NumberCell(val)
	case string:
		return domain.TextCell(val)
	default:
		panic("unsupported test cell value")
	}
}
