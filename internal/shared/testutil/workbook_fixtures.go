package testutil

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is a worksheet fixture: cell references mapped to values. Values
// are stored with excelize's SetCellValue, so strings become shared
// strings, ints and floats numbers and bools booleans.
type Sheet struct {
	Name  string
	Cells map[string]interface{}
}

// WriteWorkbook saves a workbook holding sheets, in order, at path. The
// first sheet replaces excelize's default "Sheet1".
func WriteWorkbook(t *testing.T, path string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("create sheet %s: %v", sheet.Name, err)
		}
		for axis, value := range sheet.Cells {
			if err := f.SetCellValue(sheet.Name, axis, value); err != nil {
				t.Fatalf("set %s!%s: %v", sheet.Name, axis, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// EvaluationSheet returns a small evaluation sheet with two metadata
// columns, one paired read latency column, an unrelated Operations column
// and two blocks starting at rows 5 and 11.
func EvaluationSheet() Sheet {
	return Sheet{
		Name: "evaluation",
		Cells: map[string]interface{}{
			"A1": "workload", "B1": "threads", "C1": "readaverageLatency(us)", "D1": "StdDevLatency(us)", "E1": "Operations",
			"A5": "1_workloada", "B5": 8, "B6": 8, "B7": 8,
			"C5": 100, "C6": 100, "C7": 100, "D5": 10, "D6": 10, "D7": 10, "E5": 500,
			"A11": "2_workloadb", "B11": 16, "B12": 16, "B13": 16,
			"C11": 200, "C12": 200, "C13": 200, "D11": 20, "D12": 20, "D13": 20,
		},
	}
}
