package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := WriteWorkbook(t, filepath.Join(t.TempDir(), "fixture.xlsx"),
		EvaluationSheet(),
		Sheet{Name: "notes", Cells: map[string]interface{}{"A1": "free text", "B2": true}},
	)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"evaluation", "notes"}, f.GetSheetList())

	header, err := f.GetCellValue("evaluation", "C1")
	require.NoError(t, err)
	assert.Equal(t, "readaverageLatency(us)", header)

	cellType, err := f.GetCellType("notes", "B2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeBool, cellType)
}
