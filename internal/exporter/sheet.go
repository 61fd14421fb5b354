package exporter

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"ycsbcli/internal/errors"
	"ycsbcli/pkg/contracts/domain"
)

// SheetWriter writes a summary into a worksheet of an open workbook
type SheetWriter struct {
	sheet  string
	index  int
	logger *slog.Logger
}

// NewSheetWriter creates a writer for the named sheet. index is the
// zero-based position the sheet is moved to.
func NewSheetWriter(sheet string, index int, logger *slog.Logger) *SheetWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SheetWriter{
		sheet:  sheet,
		index:  index,
		logger: logger.With("component", "sheet_writer"),
	}
}

// Write replaces the target sheet with the summary. An existing sheet of
// the same name is deleted first so repeated runs give the same result.
// The workbook's active sheet is not changed.
func (w *SheetWriter) Write(f *excelize.File, summary *domain.Summary) error {
	if idx, _ := f.GetSheetIndex(w.sheet); idx >= 0 {
		if err := f.DeleteSheet(w.sheet); err != nil {
			return errors.NewStorageError("failed to remove previous summary sheet", err).
				WithContext("sheet", w.sheet)
		}
		w.logger.Debug("Previous summary sheet removed", slog.String("sheet", w.sheet))
	}

	if _, err := f.NewSheet(w.sheet); err != nil {
		return errors.NewStorageError("failed to create summary sheet", err).
			WithContext("sheet", w.sheet)
	}
	if err := w.position(f); err != nil {
		return err
	}

	cells := 0
	for row := 1; row <= summary.MaxRow(); row++ {
		for col := 1; col <= summary.MaxColumn(); col++ {
			cell := summary.Cell(row, col)
			if err := writeCell(f, w.sheet, row, col, cell); err != nil {
				return errors.NewStorageError("failed to write summary cell", err).
					WithContext("sheet", w.sheet).
					WithContext("row", row).
					WithContext("column", col)
			}
			if !cell.IsAbsent() {
				cells++
			}
		}
	}

	w.logger.Info("Summary sheet written",
		slog.String("sheet", w.sheet),
		slog.Int("position", w.index),
		slog.Int("rows", summary.MaxRow()),
		slog.Int("columns", summary.MaxColumn()),
		slog.Int("cells", cells))

	return nil
}

// position moves the freshly appended sheet to w.index. Indexes past the
// end leave it last.
func (w *SheetWriter) position(f *excelize.File) error {
	sheets := f.GetSheetList()
	if w.index >= len(sheets)-1 {
		return nil
	}
	if err := f.MoveSheet(w.sheet, sheets[w.index]); err != nil {
		return errors.NewStorageError("failed to move summary sheet", err).
			WithContext("sheet", w.sheet).
			WithContext("index", w.index)
	}
	return nil
}
