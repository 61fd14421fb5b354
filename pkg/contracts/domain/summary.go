package domain

// DerivedMetric is the value computed for one column over one block (or the
// header row). RelativeStdDev is only meaningful when HasRelativeStdDev is
// set and is a fraction of the mean latency, not an absolute figure.
// Degraded marks a block without any numeric trial cell, whose Average is
// the raw first cell.
type DerivedMetric struct {
	Average           Cell
	RelativeStdDev    float64
	HasRelativeStdDev bool
	Degraded          bool
}

// ColumnDecision is the classification outcome for one source column
type ColumnDecision struct {
	Retained      bool
	OutputsPerRow int
}

// ColumnPlan binds a decision to its source column
type ColumnPlan struct {
	Index    int
	Header   string
	Metadata bool
	ColumnDecision
}

// Summary is the condensed output sheet: header on row 1, one row per block.
type Summary struct {
	*Grid
	Plans    []ColumnPlan
	Blocks   int
	Degraded int
}

// Retained returns the number of source columns kept in the summary
func (s *Summary) Retained() int {
	n := 0
	for _, p := range s.Plans {
		if p.Retained {
			n++
		}
	}
	return n
}

// OutputColumns is the number of destination columns the data pass fills.
func (s *Summary) OutputColumns() int {
	n := 0
	for _, p := range s.Plans {
		if p.Retained {
			n += p.OutputsPerRow
		}
	}
	return n
}
