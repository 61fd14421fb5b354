package domain

import (
	"strconv"
)

// CellKind identifies what a grid cell holds
type CellKind int

const (
	CellAbsent CellKind = iota
	CellNumber
	CellText
)

// String returns the kind name used in logs
func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	default:
		return "absent"
	}
}

// Cell is a single spreadsheet value: absent, numeric or text.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell creates a numeric cell
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell creates a text cell
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// IsAbsent reports whether the cell holds no value
func (c Cell) IsAbsent() bool { return c.Kind == CellAbsent }

// IsNumber reports whether the cell holds a number
func (c Cell) IsNumber() bool { return c.Kind == CellNumber }

// IsText reports whether the cell holds text
func (c Cell) IsText() bool { return c.Kind == CellText }

// String renders the cell the way it is exported to CSV. Numbers use the
// shortest representation that round-trips; absent cells are empty.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Grid is a sparse, 1-based (row, column) collection of cells. Reads outside
// the populated area return absent cells.
type Grid struct {
	rows   map[int]map[int]Cell
	maxRow int
	maxCol int
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{rows: make(map[int]map[int]Cell)}
}

// Set stores a cell. Writing an absent cell clears the position but still
// extends the grid bounds, like touching a cell in a spreadsheet.
func (g *Grid) Set(row, col int, c Cell) {
	if row < 1 || col < 1 {
		return
	}
	if row > g.maxRow {
		g.maxRow = row
	}
	if col > g.maxCol {
		g.maxCol = col
	}
	r, ok := g.rows[row]
	if !ok {
		r = make(map[int]Cell)
		g.rows[row] = r
	}
	if c.IsAbsent() {
		delete(r, col)
		return
	}
	r[col] = c
}

// Cell returns the cell at (row, col)
func (g *Grid) Cell(row, col int) Cell {
	if r, ok := g.rows[row]; ok {
		return r[col]
	}
	return Cell{}
}

// Text returns the text at (row, col), or "" when the cell is not text.
func (g *Grid) Text(row, col int) string {
	c := g.Cell(row, col)
	if c.IsText() {
		return c.Text
	}
	return ""
}

// MaxRow is the largest row index written so far
func (g *Grid) MaxRow() int { return g.maxRow }

// MaxColumn is the largest column index written on any row
func (g *Grid) MaxColumn() int { return g.maxCol }

// RowEmpty reports whether a row holds no values at all
func (g *Grid) RowEmpty(row int) bool {
	return len(g.rows[row]) == 0
}

// Records renders rows 1..MaxRow as string slices of width MaxColumn.
func (g *Grid) Records() [][]string {
	records := make([][]string, 0, g.maxRow)
	for row := 1; row <= g.maxRow; row++ {
		record := make([]string, g.maxCol)
		for col := 1; col <= g.maxCol; col++ {
			record[col-1] = g.Cell(row, col).String()
		}
		records = append(records, record)
	}
	return records
}
