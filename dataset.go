package typedframe

import (
	"fmt"
	"os"
)

// Dataset is the result of reading a delimited text file: its header (if
// any), the inferred type of each column, and the typed, columnar values.
type Dataset struct {
	Header  Header
	Schema  Schema
	Columns Columns
}

// ColumnDetail summarizes one column's name, inferred type, and parse
// outcome tallies, for quick introspection without walking Columns by hand.
type ColumnDetail struct {
	Name         string
	Type         ColumnType
	MissingCount int
	InvalidCount int
	RecordCount  int
}

// ReadFile reads the file at path into a Dataset, applying opts over
// DefaultReadingOptions. It infers the separator if requested, reads the
// header if requested, infers a per-column schema by sampling records, and
// finally materializes every column's typed values.
func ReadFile(path string, opts ...ReadOption) (*Dataset, error) {
	o := ApplyReadOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPathInvalid, err)
	}

	if o.StrictQuoteBalance {
		if _, err := NewDatasetFile(path, o.TextQuote, true).CountRecords(); err != nil {
			return nil, err
		}
	}

	if o.Separator.useInfer {
		sep, err := InferSeparator(path, o.Separator.candidates)
		if err != nil {
			return nil, err
		}
		o.Separator = SeparatorValue(sep)
	}

	parsingOpts := o.parsingOptions()

	var header Header
	if o.ReadHeader {
		h, err := ParseHeader(path, parsingOpts)
		if err != nil {
			return nil, err
		}
		header = h
	}
	// An empty file has no header record to skip at all, even if one was
	// requested (spec.md §4.7: an empty file yields a nil header, not an
	// error), so schema inference and materialization must not skip a
	// first row that doesn't exist.
	skipHeader := o.ReadHeader && len(header) > 0

	schema, err := InferSchema(path, skipHeader, o.SchemaInferenceDepth, parsingOpts, o.TypeSystem, o.BatchCount, o.Processors)
	if err != nil {
		return nil, err
	}

	columns, err := materializeColumns(path, schema, parsingOpts, skipHeader, o.TypeSystem, o.BatchCount, o.Processors)
	if err != nil {
		return nil, err
	}

	if len(header) > 0 && len(header) != len(schema) {
		return nil, fmt.Errorf("%w: header has %d columns, data has %d", ErrOptionInvalid, len(header), len(schema))
	}

	return &Dataset{Header: header, Schema: schema, Columns: columns}, nil
}

// ColumnDetails reports, for each column, its name (or a positional
// placeholder when no header was read), inferred type, how many values it
// holds in total, and how many of those came out Missing or Invalid.
func (d *Dataset) ColumnDetails() []ColumnDetail {
	details := make([]ColumnDetail, len(d.Schema))
	for i, ct := range d.Schema {
		name := fmt.Sprintf("column_%d", i)
		if i < len(d.Header) {
			name = d.Header[i]
		}
		detail := ColumnDetail{Name: name, Type: ct}
		if i < len(d.Columns) {
			for _, v := range d.Columns[i] {
				detail.RecordCount++
				switch {
				case v.IsMissing():
					detail.MissingCount++
				case v.IsInvalid():
					detail.InvalidCount++
				}
			}
		}
		details[i] = detail
	}
	return details
}
