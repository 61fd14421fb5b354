package dataprocessing

import (
	"log/slog"

	"ycsbcli/internal/errors"
	"ycsbcli/pkg/contracts/domain"
)

// Summary sheet geometry: labels on the first row, blocks from the second.
const (
	summaryHeaderRow    = 1
	summaryFirstDataRow = 2
)

// SummaryBuilder condenses an evaluation grid into the throughput summary.
// It runs two passes over the column plan: one writing header labels, one
// writing a row per block.
type SummaryBuilder struct {
	layout     Layout
	classifier *ColumnClassifier
	logger     *slog.Logger
}

// NewSummaryBuilder creates a builder for the given layout
func NewSummaryBuilder(layout Layout, logger *slog.Logger) *SummaryBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryBuilder{
		layout:     layout,
		classifier: NewColumnClassifier(layout.MetadataColumns),
		logger:     logger.With("component", "summary_builder"),
	}
}

// Build produces the summary grid. The only failures are structural: an
// invalid layout or an empty header row.
func (b *SummaryBuilder) Build(grid *domain.Grid) (*domain.Summary, error) {
	if err := b.layout.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid evaluation layout", err)
	}
	if grid == nil || grid.RowEmpty(b.layout.HeaderRow) {
		return nil, errors.NewAppValidationError("evaluation header row is empty").
			WithContext("row", b.layout.HeaderRow)
	}

	plans := b.classifier.Plan(grid, b.layout.HeaderRow)
	computer := NewBlockMetricComputer(grid, b.layout)
	summary := &domain.Summary{
		Grid:   domain.NewGrid(),
		Plans:  plans,
		Blocks: b.layout.BlockCount(),
	}

	b.writeHeader(summary, computer)
	b.writeBlocks(summary, computer)

	b.logger.Debug("Summary built",
		slog.Int("source_columns", len(plans)),
		slog.Int("retained_columns", summary.Retained()),
		slog.Int("output_columns", summary.OutputColumns()),
		slog.Int("blocks", summary.Blocks),
		slog.Int("degraded_blocks", summary.Degraded))

	return summary, nil
}

// writeHeader labels the summary columns. A metric column always writes
// both a throughput and a stdD label, but the cursor only advances by the
// planned width, so an unpaired column's stdD label is overwritten by the
// next retained column.
func (b *SummaryBuilder) writeHeader(summary *domain.Summary, computer *BlockMetricComputer) {
	cursor := 1
	for _, plan := range summary.Plans {
		if !plan.Retained {
			continue
		}

		label := computer.Evaluate(plan.Index, b.layout.HeaderRow).Average
		if plan.Metadata {
			summary.Set(summaryHeaderRow, cursor, label)
			cursor++
			continue
		}

		name := dropTrailingRunes(label.String(), 4)
		summary.Set(summaryHeaderRow, cursor, domain.TextCell("throughput "+name+"(ops/sec)"))
		summary.Set(summaryHeaderRow, cursor+1, domain.TextCell("stdD "+name+"%"))
		cursor += plan.OutputsPerRow
	}
}

// writeBlocks fills one summary row per block, column by column.
func (b *SummaryBuilder) writeBlocks(summary *domain.Summary, computer *BlockMetricComputer) {
	starts := b.layout.BlockStarts()
	cursor := 1
	for _, plan := range summary.Plans {
		if !plan.Retained {
			continue
		}

		row := summaryFirstDataRow
		for _, start := range starts {
			metric := computer.Evaluate(plan.Index, start)
			summary.Set(row, cursor, metric.Average)
			if plan.OutputsPerRow == 2 && metric.HasRelativeStdDev {
				summary.Set(row, cursor+1, domain.NumberCell(metric.RelativeStdDev))
			}
			if metric.Degraded {
				summary.Degraded++
			}
			row++
		}

		b.logger.Debug("Column summarized",
			slog.Int("source_column", plan.Index),
			slog.String("header", plan.Header),
			slog.Int("output_column", cursor),
			slog.Int("outputs_per_row", plan.OutputsPerRow))

		cursor += plan.OutputsPerRow
	}
}
