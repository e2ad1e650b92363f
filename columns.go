package typedframe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Column holds one header position's parsed values in record order.
type Column []Parsed[TypedValue]

// Columns holds one Column per position in the Schema, in column order.
type Columns []Column

// materializeColumns parses every cell of every data record of the file at path under
// the already-chosen schema, batching and fanning out the same way
// InferSchema does, and concatenates per-batch results in batch order so
// the final Columns preserve the file's row order regardless of which
// goroutine finished first.
func materializeColumns(path string, schema Schema, parsingOpts ParsingOptions, skipHeader bool, ts TypeSystem, batchCount int, processors []ProcessorFunc) (Columns, error) {
	file := NewDatasetFile(path, parsingOpts.TextQuote, false)
	workers := resolveWorkerCount(batchCount)

	batches, err := file.Batches(skipHeader, AllRecords(), workers)
	if err != nil {
		return nil, err
	}

	partials := make([]Columns, len(batches))
	g, _ := errgroup.WithContext(context.Background())
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			cols, err := materializeBatch(batch, schema, parsingOpts, ts, processors)
			if err != nil {
				return err
			}
			partials[i] = cols
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapColumnMaterializationErr(err)
	}

	result := make(Columns, len(schema))
	for _, part := range partials {
		for i := range result {
			if i < len(part) {
				result[i] = append(result[i], part[i]...)
			}
		}
	}
	return result, nil
}

func materializeBatch(batch Batch, schema Schema, parsingOpts ParsingOptions, ts TypeSystem, processors []ProcessorFunc) (Columns, error) {
	cols := make(Columns, len(schema))
	for i := range cols {
		cols[i] = make(Column, 0, batch.RowCount())
	}

	err := batch.ReadRecords(func(record string) error {
		cells := parseRecord(record, parsingOpts)
		for i := range cols {
			if i >= len(cells) {
				cols[i] = append(cols[i], MissingValue[TypedValue]())
				continue
			}
			raw := RawValue(applyProcessors(string(cells[i]), processors))
			cols[i] = append(cols[i], ts.ParseAs(raw, schema[i]))
		}
		return nil
	})
	if err != nil && err != errStopIteration {
		return nil, err
	}
	return cols, nil
}
