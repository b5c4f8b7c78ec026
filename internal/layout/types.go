package layout

// Card is a single flash card: front text and back text. Cards are
// read-only input; the engine never modifies them.
type Card struct {
	Front string
	Back  string
}

// Side identifies which face of a sheet a page renders.
type Side int

const (
	// Front renders cells in natural grid order.
	Front Side = iota
	// Back renders cells with mirrored columns so each back lines up with
	// its front after a long-edge flip.
	Back
)

// String returns the side name
func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// Point is a position in page coordinates. Units are millimeters with the
// origin at the bottom-left corner of the page.
type Point struct {
	X float64
	Y float64
}

// Polygon is a closed cell border: four corner points in draw order.
type Polygon [4]Point

// TextRun places one line of text on a page.
type TextRun struct {
	Content  string
	FontSize float64
	X        float64
	Y        float64
	// Rotation is the baseline rotation in degrees, counter-clockwise.
	Rotation float64
}

// CellDraw is everything drawn for one occupied grid cell: the cell border
// and the wrapped, rotated text lines inside it.
type CellDraw struct {
	Border Polygon
	Lines  []TextRun
}

// Page represents a single printable side of a sheet. Cells only exist for
// grid positions that have a card; empty positions draw nothing.
type Page struct {
	Side   Side
	Width  float64
	Height float64
	Cells  []CellDraw
}
