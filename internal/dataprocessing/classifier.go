package dataprocessing

import (
	"ycsbcli/pkg/contracts/domain"
)

// ColumnClassifier decides which source columns reach the summary and how
// many destination columns each one fills.
type ColumnClassifier struct {
	metadataColumns int
}

// NewColumnClassifier creates a classifier that keeps the first
// metadataColumns columns unconditionally.
func NewColumnClassifier(metadataColumns int) *ColumnClassifier {
	return &ColumnClassifier{metadataColumns: metadataColumns}
}

// Classify is a pure function of the column index, its header and the
// header of the column right after it.
func (c *ColumnClassifier) Classify(index int, header, nextHeader string) domain.ColumnDecision {
	if index <= c.metadataColumns {
		return domain.ColumnDecision{Retained: true, OutputsPerRow: 1}
	}
	if !averagePattern.MatchString(header) || !operationPattern.MatchString(header) {
		return domain.ColumnDecision{}
	}
	if stdDevPattern.MatchString(nextHeader) {
		return domain.ColumnDecision{Retained: true, OutputsPerRow: 2}
	}
	return domain.ColumnDecision{Retained: true, OutputsPerRow: 1}
}

// Plan classifies every column of the grid once. Both summary passes use
// the returned plan so header and data columns cannot drift apart.
func (c *ColumnClassifier) Plan(grid *domain.Grid, headerRow int) []domain.ColumnPlan {
	plans := make([]domain.ColumnPlan, 0, grid.MaxColumn())
	for col := 1; col <= grid.MaxColumn(); col++ {
		header := grid.Text(headerRow, col)
		plans = append(plans, domain.ColumnPlan{
			Index:          col,
			Header:         header,
			Metadata:       col <= c.metadataColumns,
			ColumnDecision: c.Classify(col, header, grid.Text(headerRow, col+1)),
		})
	}
	return plans
}
