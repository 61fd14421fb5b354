package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ycsbcli/internal/config"
)

func TestDefaultLayout_Blocks(t *testing.T) {
	layout := DefaultLayout()
	require.NoError(t, layout.Validate())

	starts := layout.BlockStarts()
	require.Len(t, starts, 120)
	assert.Equal(t, 120, layout.BlockCount())
	assert.Equal(t, []int{5, 11, 17}, starts[:3])
	assert.Equal(t, 719, starts[len(starts)-1])
}

func TestLayout_BlockCountMatchesStarts(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   int
	}{
		{name: "single block", layout: Layout{HeaderRow: 1, FirstDataRow: 5, BlockStride: 6, TrialRows: 3, RowLimit: 6}, want: 1},
		{name: "exact multiple", layout: Layout{HeaderRow: 1, FirstDataRow: 5, BlockStride: 6, TrialRows: 3, RowLimit: 17}, want: 2},
		{name: "one past multiple", layout: Layout{HeaderRow: 1, FirstDataRow: 5, BlockStride: 6, TrialRows: 3, RowLimit: 18}, want: 3},
		{name: "stride one", layout: Layout{HeaderRow: 1, FirstDataRow: 2, BlockStride: 1, TrialRows: 1, RowLimit: 10}, want: 8},
		{name: "empty range", layout: Layout{HeaderRow: 1, FirstDataRow: 5, BlockStride: 6, TrialRows: 3, RowLimit: 5}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.BlockCount())
			assert.Len(t, tt.layout.BlockStarts(), tt.want)
		})
	}
}

func TestLayout_Validate(t *testing.T) {
	valid := DefaultLayout()

	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{name: "zero header row", mutate: func(l *Layout) { l.HeaderRow = 0 }},
		{name: "negative metadata columns", mutate: func(l *Layout) { l.MetadataColumns = -1 }},
		{name: "data starts on header", mutate: func(l *Layout) { l.FirstDataRow = l.HeaderRow }},
		{name: "zero stride", mutate: func(l *Layout) { l.BlockStride = 0 }},
		{name: "zero trial rows", mutate: func(l *Layout) { l.TrialRows = 0 }},
		{name: "trial rows exceed stride", mutate: func(l *Layout) { l.TrialRows = l.BlockStride + 1 }},
		{name: "row limit before data", mutate: func(l *Layout) { l.RowLimit = l.FirstDataRow }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := valid
			tt.mutate(&layout)
			assert.Error(t, layout.Validate())
		})
	}
}

func TestLayoutFromConfig(t *testing.T) {
	cfg := config.Default().Layout
	assert.Equal(t, DefaultLayout(), LayoutFromConfig(cfg))

	cfg.MetadataColumns = 4
	cfg.RowLimit = 30
	layout := LayoutFromConfig(cfg)
	assert.Equal(t, 4, layout.MetadataColumns)
	assert.Equal(t, 30, layout.RowLimit)
	assert.Equal(t, 5, layout.BlockCount())
}
