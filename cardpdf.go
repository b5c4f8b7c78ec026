package cardpdf

import (
	"github.com/cardpdf/cardpdf/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type Card = api.Card

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithGrid        = api.WithGrid
	WithPageSize    = api.WithPageSize
	WithPageSizeA4  = api.WithPageSizeA4
	WithMargin      = api.WithMargin
	WithFontSize    = api.WithFontSize
	WithTextInset   = api.WithTextInset
	WithLineSpacing = api.WithLineSpacing
	WithDelimiter   = api.WithDelimiter
	WithDebug       = api.WithDebug
	WithTitle       = api.WithTitle
	WithAuthor      = api.WithAuthor
	WithSubject     = api.WithSubject
	WithKeywords    = api.WithKeywords
)

const (
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
)
