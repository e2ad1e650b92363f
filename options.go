package typedframe

import "fmt"

// Separator selects how the field separator is determined: a fixed value,
// or inferred per file from a set of candidates.
type Separator struct {
	fixed      string
	useInfer   bool
	candidates []string
}

// SeparatorValue pins the separator to a fixed string.
func SeparatorValue(s string) Separator { return Separator{fixed: s} }

// SeparatorInfer infers the separator from candidates by counting
// occurrences per record across the file. With no candidates it uses the
// default list: comma, semicolon, tab, pipe.
func SeparatorInfer(candidates ...string) Separator {
	if len(candidates) == 0 {
		candidates = []string{",", ";", "\t", "|"}
	}
	return Separator{useInfer: true, candidates: candidates}
}

// SchemaInferenceDepth bounds how many records schema inference samples
// before choosing each column's type.
type SchemaInferenceDepth struct {
	records int
	pct     float64
	useAll  bool
}

// SchemaInferenceAll samples every record.
func SchemaInferenceAll() SchemaInferenceDepth { return SchemaInferenceDepth{useAll: true} }

// SchemaInferenceRecords samples the first n records (or every record if
// the file is shorter).
func SchemaInferenceRecords(n int) SchemaInferenceDepth { return SchemaInferenceDepth{records: n} }

// SchemaInferencePercentage samples the given fraction [0, 1] of records.
func SchemaInferencePercentage(p float64) SchemaInferenceDepth {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return SchemaInferenceDepth{pct: p}
}

func (d SchemaInferenceDepth) toRecordsToRead() RecordsToRead {
	switch {
	case d.useAll:
		return AllRecords()
	case d.records > 0:
		return AbsoluteRecords(d.records)
	default:
		return PercentageRecords(d.pct)
	}
}

// ReadingOptions configures a full Dataset read: how records are split,
// what counts as missing/quoted text, how the header is handled, how
// columns are typed, and how many records schema inference samples.
type ReadingOptions struct {
	ReadHeader           bool
	Separator            Separator
	TextQuote            string
	TextQuoteEscape      string
	StrictQuoteBalance   bool
	SchemaInferenceDepth SchemaInferenceDepth
	TypeSystem           TypeSystem
	Processors           []ProcessorFunc
	BatchCount           int
}

// DefaultReadingOptions returns: header present, separator inferred among
// comma/semicolon/tab/pipe, double-quoted text with backslash escapes,
// lenient end-of-file quote balance, 10% schema-inference sampling, the
// DefaultTypeSystem, no processors, and one batch per available CPU (at
// most 16).
func DefaultReadingOptions() ReadingOptions {
	return ReadingOptions{
		ReadHeader:           true,
		Separator:            SeparatorInfer(),
		TextQuote:            "\"",
		TextQuoteEscape:      "\\",
		StrictQuoteBalance:   false,
		SchemaInferenceDepth: SchemaInferencePercentage(0.1),
		TypeSystem:           DefaultTypeSystem{},
		BatchCount:           0,
	}
}

// ReadOption mutates ReadingOptions in place; apply via ApplyReadOptions.
type ReadOption func(*ReadingOptions)

func WithHeader(present bool) ReadOption {
	return func(o *ReadingOptions) { o.ReadHeader = present }
}

func WithSeparator(sep Separator) ReadOption {
	return func(o *ReadingOptions) { o.Separator = sep }
}

func WithTextQuote(quote, escape string) ReadOption {
	return func(o *ReadingOptions) { o.TextQuote = quote; o.TextQuoteEscape = escape }
}

func WithStrictQuoteBalance(strict bool) ReadOption {
	return func(o *ReadingOptions) { o.StrictQuoteBalance = strict }
}

func WithSchemaInferenceDepth(d SchemaInferenceDepth) ReadOption {
	return func(o *ReadingOptions) { o.SchemaInferenceDepth = d }
}

func WithTypeSystem(ts TypeSystem) ReadOption {
	return func(o *ReadingOptions) { o.TypeSystem = ts }
}

func WithProcessors(chain ...ProcessorFunc) ReadOption {
	return func(o *ReadingOptions) { o.Processors = chain }
}

func WithBatchCount(n int) ReadOption {
	return func(o *ReadingOptions) { o.BatchCount = n }
}

// ApplyReadOptions starts from DefaultReadingOptions and applies opts in order.
func ApplyReadOptions(opts ...ReadOption) ReadingOptions {
	o := DefaultReadingOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o ReadingOptions) validate() error {
	if o.TextQuote == "" {
		return fmt.Errorf("%w: TextQuote must not be empty", ErrOptionInvalid)
	}
	if o.Separator.fixed == "" && !o.Separator.useInfer {
		return fmt.Errorf("%w: Separator must be fixed or inferred", ErrOptionInvalid)
	}
	if o.Separator.fixed == o.TextQuote {
		return fmt.Errorf("%w: Separator must differ from TextQuote", ErrOptionInvalid)
	}
	if o.TypeSystem == nil {
		return fmt.Errorf("%w: TypeSystem must not be nil", ErrOptionInvalid)
	}
	return validateTypeSystem(o.TypeSystem)
}

func (o ReadingOptions) parsingOptions() ParsingOptions {
	return ParsingOptions{Separator: o.Separator.fixed, TextQuote: o.TextQuote, TextQuoteEscape: o.TextQuoteEscape}
}
