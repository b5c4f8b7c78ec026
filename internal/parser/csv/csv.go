package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cardpdf/cardpdf/internal/layout"
)

// DefaultComma is the field delimiter used by card files
const DefaultComma = '|'

// ErrMalformedRecord reports a record with fewer than two fields
var ErrMalformedRecord = errors.New("record must have at least 2 fields")

// Parser reads delimiter-separated card records
type Parser struct {
	// Comma is the field delimiter
	Comma rune
}

// NewParser creates a new card record parser with the default delimiter
func NewParser() *Parser {
	return &Parser{Comma: DefaultComma}
}

// Parse reads card records from r. Each record needs at least two fields,
// front text then back text; extra fields are ignored. There is no header
// row and field text is taken verbatim.
func (p *Parser) Parse(r io.Reader) ([]layout.Card, error) {
	reader := stdcsv.NewReader(r)
	reader.Comma = p.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var cards []layout.Card
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("record %d: %w", len(cards)+1, ErrMalformedRecord)
		}
		cards = append(cards, layout.Card{Front: record[0], Back: record[1]})
	}
	return cards, nil
}

// ParseFile reads card records from the file at path
func (p *Parser) ParseFile(path string) ([]layout.Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open card file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
