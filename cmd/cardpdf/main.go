package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardpdf/cardpdf"
)

func main() {
	var (
		inputFile  string
		outputFile string
		fontSize   float64
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input card file path (pipe-delimited, no headers)")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.Float64Var(&fontSize, "font-size", 0, "Card text font size in points")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	generator := cardpdf.New()

	if verbose {
		generator = generator.SetDebug(true)
	}
	if fontSize > 0 {
		generator = generator.SetFontSize(fontSize)
	}

	err := generator.GenerateFile(inputFile, outputFile)
	if err != nil {
		fmt.Printf("Error generating PDF: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated PDF: %s\n", outputFile)
}
