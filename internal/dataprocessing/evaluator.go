package dataprocessing

import (
	"github.com/montanaflynn/stats"

	"ycsbcli/pkg/contracts/domain"
)

// Latency columns are recorded in microseconds.
const microsPerSecond = 1_000_000

// BlockMetricComputer evaluates one column over one block of trial rows.
// The same evaluation serves the header row: header cells are text and take
// the pass-through branch.
type BlockMetricComputer struct {
	grid   *domain.Grid
	layout Layout
}

// NewBlockMetricComputer creates a computer reading from grid
func NewBlockMetricComputer(grid *domain.Grid, layout Layout) *BlockMetricComputer {
	return &BlockMetricComputer{grid: grid, layout: layout}
}

// Evaluate derives the summary value of column for the block starting at
// rowStart. The column right after it is read as a possible stddev pair.
// Missing or non-numeric cells never fail: with no numeric trial cell the
// raw first cell is passed through.
func (c *BlockMetricComputer) Evaluate(column, rowStart int) domain.DerivedMetric {
	first := c.grid.Cell(rowStart, column)
	if first.IsText() {
		label := first.Text
		if workloadIndexPattern.MatchString(label) {
			label = dropLeadingRunes(label, 2)
		}
		return domain.DerivedMetric{Average: domain.TextCell(label)}
	}

	next := column + 1
	values := make([]float64, 0, c.layout.TrialRows)
	nextValues := make([]float64, 0, c.layout.TrialRows)
	for row := rowStart; row < rowStart+c.layout.TrialRows; row++ {
		if cell := c.grid.Cell(row, column); cell.IsNumber() {
			values = append(values, cell.Number)
		}
		if cell := c.grid.Cell(row, next); cell.IsNumber() {
			nextValues = append(nextValues, cell.Number)
		}
	}

	if len(values) == 0 {
		return domain.DerivedMetric{Average: first, Degraded: true}
	}

	avg, _ := stats.Mean(values)
	if avg == 0 || !operationPattern.MatchString(c.grid.Text(c.layout.HeaderRow, column)) {
		return domain.DerivedMetric{Average: domain.NumberCell(avg)}
	}

	avgSeconds := avg / microsPerSecond
	opsPerSec := 1 / avgSeconds

	if !stdDevPattern.MatchString(c.grid.Text(c.layout.HeaderRow, next)) {
		return domain.DerivedMetric{Average: domain.NumberCell(opsPerSec)}
	}

	// The stddev column is averaged over the latency column's count.
	nextAvg := sum(nextValues) / float64(len(values))
	return domain.DerivedMetric{
		Average:           domain.NumberCell(opsPerSec),
		RelativeStdDev:    nextAvg / avg,
		HasRelativeStdDev: true,
	}
}

func sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	s, _ := stats.Sum(values)
	return s
}
