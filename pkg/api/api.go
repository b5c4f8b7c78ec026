package api

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cardpdf/cardpdf/internal/layout"
	"github.com/cardpdf/cardpdf/internal/parser/csv"
	"github.com/cardpdf/cardpdf/internal/render/pdf"
)

// Card is a single flash card: front text and back text
type Card = layout.Card

// Generator is the main API for turning card lists into print-ready,
// double-sided PDFs
type Generator struct {
	options Options
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options) *Generator {
	return &Generator{options: options}
}

// GenerateFile reads card records from inputPath and writes the finished
// PDF to outputPath
func (g *Generator) GenerateFile(inputPath, outputPath string) error {
	parser := csv.NewParser()
	parser.Comma = g.options.Delimiter

	cards, err := parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read cards: %w", err)
	}
	if g.options.Debug {
		fmt.Printf("Loaded %d cards from %s\n", len(cards), inputPath)
	}
	return g.GenerateToFile(cards, outputPath)
}

// GenerateToFile lays out cards and writes the PDF to outputPath
func (g *Generator) GenerateToFile(cards []Card, outputPath string) error {
	pages := g.compose(cards)
	if err := g.renderer().Render(pages, outputPath, g.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// Generate lays out cards and writes the PDF to the specified writer
func (g *Generator) Generate(cards []Card, output io.Writer) error {
	pages := g.compose(cards)
	if err := g.renderer().RenderTo(pages, output, g.renderOptions()); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// GenerateBytes lays out cards and returns the PDF bytes
func (g *Generator) GenerateBytes(cards []Card) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Generate(cards, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compose runs the layout engine over the card list
func (g *Generator) compose(cards []Card) []*layout.Page {
	engine := layout.NewEngine()
	engine.SetOptions(layout.Options{
		Grid: layout.Grid{
			Cols:       g.options.Cols,
			Rows:       g.options.Rows,
			PageWidth:  g.options.PageWidth,
			PageHeight: g.options.PageHeight,
			Margin:     g.options.Margin,
		},
		FontSize:    g.options.FontSize,
		TextInset:   g.options.TextInset,
		LineSpacing: g.options.LineSpacing,
		Rotation:    layout.DefaultRotation,
	})
	return engine.Compose(cards)
}

func (g *Generator) renderer() *pdf.Renderer {
	renderer := pdf.NewRenderer()
	renderer.Debug = g.options.Debug
	return renderer
}

func (g *Generator) renderOptions() pdf.RenderOptions {
	return pdf.RenderOptions{
		Title:    g.options.Title,
		Author:   g.options.Author,
		Subject:  g.options.Subject,
		Keywords: g.options.Keywords,
		Creator:  "CardPDF",
		Producer: "CardPDF",
	}
}

// WithOptions returns a new generator with the specified options
func (g *Generator) WithOptions(options Options) *Generator {
	return NewWithOptions(options)
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// SetDebug returns a new generator with debug mode set
func (g *Generator) SetDebug(debug bool) *Generator {
	return g.WithOption(WithDebug(debug))
}

// SetFontSize returns a new generator with the font size set
func (g *Generator) SetFontSize(size float64) *Generator {
	return g.WithOption(WithFontSize(size))
}

// SetTitle returns a new generator with the document title set
func (g *Generator) SetTitle(title string) *Generator {
	return g.WithOption(WithTitle(title))
}
