package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T, sheets ...string) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetSheetName("Sheet1", sheets[0]))
	for _, name := range sheets[1:] {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	return f
}

func TestSheetWriter_Write(t *testing.T) {
	f := newWorkbook(t, "evaluation", "raw", "notes")

	require.NoError(t, NewSheetWriter("throughput", 1, nil).Write(f, sampleSummary()))

	assert.Equal(t, []string{"evaluation", "throughput", "raw", "notes"}, f.GetSheetList())
	assert.Equal(t, 0, f.GetActiveSheetIndex())

	rows, err := f.GetRows("throughput", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"workload", "throughput readaverageLatency(ops/sec)", "stdD readaverageLatency%"},
		{"workloada", "10000", "0.1"},
		{"workloadb", "6666.666666666667"},
	}, rows)

	cellType, err := f.GetCellType("throughput", "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestSheetWriter_ReplacesExistingSheet(t *testing.T) {
	f := newWorkbook(t, "evaluation", "throughput")
	require.NoError(t, f.SetCellStr("throughput", "Z99", "stale"))

	writer := NewSheetWriter("throughput", 1, nil)
	require.NoError(t, writer.Write(f, sampleSummary()))
	require.NoError(t, writer.Write(f, sampleSummary()))

	assert.Equal(t, []string{"evaluation", "throughput"}, f.GetSheetList())
	stale, err := f.GetCellValue("throughput", "Z99")
	require.NoError(t, err)
	assert.Empty(t, stale)

	rows, err := f.GetRows("throughput")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSheetWriter_Position(t *testing.T) {
	tests := []struct {
		name   string
		sheets []string
		index  int
		want   []string
	}{
		{name: "single source sheet", sheets: []string{"evaluation"}, index: 1, want: []string{"evaluation", "throughput"}},
		{name: "first position", sheets: []string{"evaluation", "raw"}, index: 0, want: []string{"throughput", "evaluation", "raw"}},
		{name: "index past end", sheets: []string{"evaluation", "raw"}, index: 9, want: []string{"evaluation", "raw", "throughput"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkbook(t, tt.sheets...)
			require.NoError(t, NewSheetWriter("throughput", tt.index, nil).Write(f, sampleSummary()))
			assert.Equal(t, tt.want, f.GetSheetList())
		})
	}
}

func TestSheetWriter_SavedWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xlsx")
	f := newWorkbook(t, "evaluation")
	require.NoError(t, NewSheetWriter("throughput", 1, nil).Write(f, sampleSummary()))
	require.NoError(t, f.SaveAs(path))

	reopened, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.GetCellValue("throughput", "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0.1", value)
}
