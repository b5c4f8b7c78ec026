package api

// Options represents configuration options for the flash-card generator
type Options struct {
	// Grid shape
	Cols int
	Rows int

	// Page dimensions in millimeters
	PageWidth  float64
	PageHeight float64
	// Outer page margin in millimeters
	Margin float64

	// Card text settings
	// FontSize is in points; TextInset and LineSpacing are in millimeters
	FontSize    float64
	TextInset   float64
	LineSpacing float64

	// Delimiter separates fields in card record files
	Delimiter rune

	// Debug enables verbose logging
	Debug bool

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// Standard page sizes in millimeters
const (
	PageSizeA4Width  = 210.0
	PageSizeA4Height = 297.0
)

// DefaultOptions returns the default options: a 4x4 grid on A4 with a 5mm
// margin, matching printable index-card stock
func DefaultOptions() Options {
	return Options{
		Cols: 4,
		Rows: 4,

		PageWidth:  PageSizeA4Width,
		PageHeight: PageSizeA4Height,
		Margin:     5,

		FontSize:    12,
		TextInset:   10,
		LineSpacing: 7,

		Delimiter: '|',

		Debug: false,

		Title: "Flash Cards",
	}
}

// WithGrid sets the grid shape
func WithGrid(cols, rows int) Option {
	return func(o *Options) {
		o.Cols = cols
		o.Rows = rows
	}
}

// WithPageSize sets the page size in millimeters
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithMargin sets the outer page margin in millimeters
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithFontSize sets the card text font size in points
func WithFontSize(size float64) Option {
	return func(o *Options) {
		o.FontSize = size
	}
}

// WithTextInset sets how far below the cell top the text starts
func WithTextInset(inset float64) Option {
	return func(o *Options) {
		o.TextInset = inset
	}
}

// WithLineSpacing sets the distance between text lines in millimeters
func WithLineSpacing(spacing float64) Option {
	return func(o *Options) {
		o.LineSpacing = spacing
	}
}

// WithDelimiter sets the record field delimiter
func WithDelimiter(delimiter rune) Option {
	return func(o *Options) {
		o.Delimiter = delimiter
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}
