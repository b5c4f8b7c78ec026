package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/cardpdf/cardpdf/internal/layout"
)

// Renderer handles rendering composed pages to PDF
type Renderer struct {
	// Debug enables verbose logging to stdout
	Debug bool
	// LineWidth is the border stroke width in mm
	LineWidth float64
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{
		Debug:     false,
		LineWidth: 0.2,
	}
}

// Render renders pages to a PDF file
func (r *Renderer) Render(pages []*layout.Page, outputPath string, options RenderOptions) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	doc := r.document(pages, options)
	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// RenderTo renders pages to the given writer
func (r *Renderer) RenderTo(pages []*layout.Page, w io.Writer, options RenderOptions) error {
	doc := r.document(pages, options)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// document builds the fpdf document for the composed pages
func (r *Renderer) document(pages []*layout.Page, options RenderOptions) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)
	doc.SetProducer(options.Producer, true)

	doc.SetFont("Helvetica", "", 12)
	doc.SetDrawColor(0, 0, 0)
	doc.SetTextColor(0, 0, 0)
	if r.LineWidth > 0 {
		doc.SetLineWidth(r.LineWidth)
	}

	if r.Debug {
		fmt.Printf("Rendering %d pages\n", len(pages))
	}

	for i, page := range pages {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		if r.Debug {
			fmt.Printf("Page %d (%s): %d cells\n", i+1, page.Side, len(page.Cells))
		}
		for _, cell := range page.Cells {
			r.renderCell(doc, page, cell)
		}
	}
	return doc
}

// renderCell draws one cell border and its text lines. Composed pages use
// a bottom-left origin; fpdf uses top-left, so y flips here.
func (r *Renderer) renderCell(doc *fpdf.Fpdf, page *layout.Page, cell layout.CellDraw) {
	points := make([]fpdf.PointType, 0, len(cell.Border))
	for _, pt := range cell.Border {
		points = append(points, fpdf.PointType{X: pt.X, Y: page.Height - pt.Y})
	}
	doc.Polygon(points, "D")

	for _, run := range cell.Lines {
		doc.SetFontSize(run.FontSize)
		x := run.X
		y := page.Height - run.Y

		if run.Rotation != 0 {
			doc.TransformBegin()
			doc.TransformRotate(run.Rotation, x, y)
			doc.Text(x, y, run.Content)
			doc.TransformEnd()
		} else {
			doc.Text(x, y, run.Content)
		}

		if r.Debug {
			fmt.Printf("Rendered text '%s' at (%.2f, %.2f) rotated %.0f\n",
				run.Content, x, y, run.Rotation)
		}
	}
}
