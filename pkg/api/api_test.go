package api

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cardpdf/cardpdf/internal/parser/csv"
)

func TestDefaultOptions(t *testing.T) {
	options := DefaultOptions()

	if options.Cols != 4 || options.Rows != 4 {
		t.Errorf("default grid = %dx%d, want 4x4", options.Cols, options.Rows)
	}
	if options.PageWidth != 210 || options.PageHeight != 297 {
		t.Errorf("default page = %vx%v, want 210x297", options.PageWidth, options.PageHeight)
	}
	if options.Margin != 5 {
		t.Errorf("default margin = %v, want 5", options.Margin)
	}
	if options.FontSize != 12 {
		t.Errorf("default font size = %v, want 12", options.FontSize)
	}
	if options.TextInset != 10 || options.LineSpacing != 7 {
		t.Errorf("default text inset/spacing = %v/%v, want 10/7",
			options.TextInset, options.LineSpacing)
	}
	if options.Delimiter != '|' {
		t.Errorf("default delimiter = %q, want '|'", options.Delimiter)
	}
}

func TestOptionsApply(t *testing.T) {
	options := DefaultOptions()
	for _, opt := range []Option{
		WithGrid(2, 3),
		WithFontSize(18),
		WithDelimiter(','),
		WithTitle("Vocabulary"),
	} {
		opt(&options)
	}

	if options.Cols != 2 || options.Rows != 3 {
		t.Errorf("grid = %dx%d, want 2x3", options.Cols, options.Rows)
	}
	if options.FontSize != 18 {
		t.Errorf("font size = %v, want 18", options.FontSize)
	}
	if options.Delimiter != ',' {
		t.Errorf("delimiter = %q, want ','", options.Delimiter)
	}
	if options.Title != "Vocabulary" {
		t.Errorf("title = %q, want %q", options.Title, "Vocabulary")
	}
}

func TestGenerateBytes(t *testing.T) {
	cards := make([]Card, 17)
	for i := range cards {
		cards[i] = Card{
			Front: fmt.Sprintf("front %d", i),
			Back:  fmt.Sprintf("back %d", i),
		}
	}

	data, err := New().GenerateBytes(cards)
	if err != nil {
		t.Fatalf("GenerateBytes() error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	// two sheets, each a front/back pair
	if !bytes.Contains(data, []byte("/Count 4")) {
		t.Error("output does not contain a 4-page page tree")
	}
}

func TestGenerateFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "cards.csv")
	outputPath := filepath.Join(dir, "cards.pdf")

	input := "bonjour|hello\nmerci|thank you\nchat|cat\n"
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := New().GenerateFile(inputPath, outputPath); err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output file does not start with a PDF header")
	}
}

func TestGenerateFileMalformedInput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(inputPath, []byte("no delimiter here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := New().GenerateFile(inputPath, filepath.Join(dir, "out.pdf"))
	if !errors.Is(err, csv.ErrMalformedRecord) {
		t.Errorf("GenerateFile() error = %v, want ErrMalformedRecord", err)
	}
}

func TestGenerateFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := New().GenerateFile(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.pdf"))
	if err == nil {
		t.Fatal("GenerateFile() succeeded on a missing input file")
	}
}

func TestGeneratorChaining(t *testing.T) {
	generator := New().SetFontSize(18).SetTitle("Vocabulary").SetDebug(false)

	data, err := generator.GenerateBytes([]Card{{Front: "chien", Back: "dog"}})
	if err != nil {
		t.Fatalf("GenerateBytes() error: %v", err)
	}
	if !bytes.Contains(data, []byte("/Count 2")) {
		t.Error("single card should produce one front/back page pair")
	}
}
