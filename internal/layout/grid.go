package layout

// Standard page dimensions in millimeters
const (
	PageSizeA4Width  = 210.0
	PageSizeA4Height = 297.0
)

// Grid describes the card grid on one page: shape, page dimensions and the
// outer margin. Cell dimensions are derived from these, so page dimensions
// must exceed twice the margin.
type Grid struct {
	Cols int
	Rows int
	// Page dimensions and outer margin in millimeters
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// CellsPerSheet returns how many cards fit on one sheet
func (g Grid) CellsPerSheet() int {
	return g.Cols * g.Rows
}

// CellWidth returns the width of one grid cell in millimeters
func (g Grid) CellWidth() float64 {
	return (g.PageWidth - 2*g.Margin) / float64(g.Cols)
}

// CellHeight returns the height of one grid cell in millimeters
func (g Grid) CellHeight() float64 {
	return (g.PageHeight - 2*g.Margin) / float64(g.Rows)
}

// CellAt maps a linear index within a sheet to its grid cell. The front
// side uses natural row-major order: left to right, top to bottom. The back
// side mirrors columns, because flipping the printed sheet along its long
// edge reverses left-right order while preserving top-to-bottom order.
func (g Grid) CellAt(index int, side Side) (col, row int) {
	col = index % g.Cols
	row = index / g.Cols
	if side == Back {
		col = g.Cols - 1 - col
	}
	return col, row
}

// CellOrigin returns the bottom-left corner of a cell in page coordinates.
// Row 0 is the topmost visual row, so its origin sits one cell height below
// the top margin.
func (g Grid) CellOrigin(col, row int) (x, y float64) {
	x = g.Margin + float64(col)*g.CellWidth()
	y = g.PageHeight - g.Margin - float64(row+1)*g.CellHeight()
	return x, y
}
