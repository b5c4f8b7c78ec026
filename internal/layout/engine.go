package layout

import "math"

// DefaultRotation is the rotation applied to card text, in degrees.
// Text runs down the cell, so wrapping happens against the cell height.
const DefaultRotation = -90

// Options represents options for the composition engine
type Options struct {
	Grid Grid
	// FontSize is the card text size in points
	FontSize float64
	// TextInset is how far below the cell's top edge the first baseline
	// starts, in millimeters
	TextInset float64
	// LineSpacing is the distance between successive baselines in millimeters
	LineSpacing float64
	// Rotation is the card text rotation in degrees
	Rotation float64
}

// Engine partitions cards into sheets and composes printable pages
type Engine struct {
	options Options
}

// NewEngine creates a composition engine with default options
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			Grid: Grid{
				Cols:       4,
				Rows:       4,
				PageWidth:  PageSizeA4Width,
				PageHeight: PageSizeA4Height,
				Margin:     5,
			},
			FontSize:    12,
			TextInset:   10,
			LineSpacing: 7,
			Rotation:    DefaultRotation,
		},
	}
}

// SetOptions sets the options for the composition engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Compose partitions cards into sheets of Cols*Rows and emits two pages per
// sheet, front immediately followed by its matching back, in sheet order.
// Both pages of a sheet reference the same cards; the back page mirrors
// columns so fronts and backs line up after a long-edge flip. An empty card
// list yields no pages at all.
func (e *Engine) Compose(cards []Card) []*Page {
	if len(cards) == 0 {
		return nil
	}

	perSheet := e.options.Grid.CellsPerSheet()
	sheets := (len(cards) + perSheet - 1) / perSheet

	pages := make([]*Page, 0, 2*sheets)
	for start := 0; start < len(cards); start += perSheet {
		end := start + perSheet
		if end > len(cards) {
			end = len(cards)
		}
		sheet := cards[start:end]
		pages = append(pages, e.composePage(sheet, Front), e.composePage(sheet, Back))
	}
	return pages
}

// composePage lays out one side of a sheet. A partial final sheet simply
// has fewer cells; positions without a card draw nothing.
func (e *Engine) composePage(sheet []Card, side Side) *Page {
	grid := e.options.Grid
	page := &Page{
		Side:   side,
		Width:  grid.PageWidth,
		Height: grid.PageHeight,
		Cells:  make([]CellDraw, 0, len(sheet)),
	}

	for i, card := range sheet {
		col, row := grid.CellAt(i, side)
		x, y := grid.CellOrigin(col, row)

		text := card.Front
		if side == Back {
			text = card.Back
		}
		page.Cells = append(page.Cells, e.composeCell(x, y, text))
	}
	return page
}

// composeCell produces the border polygon and rotated text lines for one
// occupied cell whose bottom-left corner is at (x, y).
func (e *Engine) composeCell(x, y float64, text string) CellDraw {
	w := e.options.Grid.CellWidth()
	h := e.options.Grid.CellHeight()

	cell := CellDraw{
		Border: Polygon{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		},
	}

	// Text runs along the cell height, so the wrapping span is the height.
	lines := Wrap(text, e.options.FontSize, h)

	// Successive lines step along the advance vector. The first baseline
	// sits one line spacing in from the cell edge the block grows away
	// from, inset from the top edge.
	dx, dy := lineAdvance(e.options.Rotation)
	startX := x
	if dx < 0 {
		startX = x + w
	}
	startY := y + h - e.options.TextInset

	cell.Lines = make([]TextRun, 0, len(lines))
	for i, line := range lines {
		step := e.options.LineSpacing * float64(i+1)
		cell.Lines = append(cell.Lines, TextRun{
			Content:  line,
			FontSize: e.options.FontSize,
			X:        startX + dx*step,
			Y:        startY + dy*step,
			Rotation: e.options.Rotation,
		})
	}
	return cell
}

// lineAdvance returns the unit step between successive baselines for a
// given rotation, in page coordinates. For horizontal text (0 degrees)
// lines advance straight down; rotating the text rotates the stacking
// direction with it.
func lineAdvance(rotation float64) (dx, dy float64) {
	rad := rotation * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad)
}
