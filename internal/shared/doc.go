// Package shared holds code used across the converter's packages that does
// not belong to a single layer.
//
// The testutil subpackage provides:
//
//   - WriteWorkbook and EvaluationSheet, which build xlsx fixtures on disk
//   - BufferedSlogHandler and NewTestLogger, which capture slog records so
//     tests can assert on messages and attributes
//
// Example usage:
//
//	path := testutil.WriteWorkbook(t, filepath.Join(t.TempDir(), "run.xlsx"), testutil.EvaluationSheet())
//	logger, handler := testutil.NewTestLogger(t)
//	// ... run code under test with logger
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Conversion completed")
package shared
