// Package exporter writes throughput summaries out of the converter.
//
// SheetWriter stores a summary as a worksheet of the source workbook,
// replacing any previous summary sheet and placing it at a fixed position.
//
// CSVWriter exports the same summary as a CSV file with an optional UTF-8
// BOM for spreadsheet apps.
//
// Example usage:
//
//	writer := exporter.NewSheetWriter("throughput", 1, logger)
//	err := writer.Write(workbook, summary)
//
//	csvWriter := exporter.NewCSVWriter(filepath.Dir(workbookPath))
//	path, err := csvWriter.WriteSummary("throughput.csv", summary, true)
package exporter
