package typedframe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Schema is the inferred ColumnType for each header position, in column
// order.
type Schema []ColumnType

// histogram counts, for one column, how many sampled cells classified as
// each ColumnType.
type histogram map[ColumnType]int

// InferSchema samples records from the file at path (skipping the header
// record if skipHeader), classifies each cell of each sampled record with
// ts, and for every column chooses the ColumnType with the highest
// histogram count, breaking ties by earliest position in ts.ColumnTypes().
// A column with an empty histogram (none of its sampled cells classified
// as Some, e.g. every one was Missing) falls back to ts.DefaultColumnType().
// When no record is sampled at all, the returned Schema has no columns.
//
// Classification work is fanned out across batches of contiguous records,
// one goroutine per worker (batchCount if >= 1, otherwise one per available
// CPU); a fatal error from any worker (I/O or lexer failure) aborts the
// whole inference and is returned wrapped in ErrSchemaInference.
func InferSchema(path string, skipHeader bool, depth SchemaInferenceDepth, parsingOpts ParsingOptions, ts TypeSystem, batchCount int, processors []ProcessorFunc) (Schema, error) {
	file := NewDatasetFile(path, parsingOpts.TextQuote, false)
	workers := resolveWorkerCount(batchCount)

	batches, err := file.Batches(skipHeader, depth.toRecordsToRead(), workers)
	if err != nil {
		return nil, err
	}

	results := make([]histogramSet, len(batches))
	g, _ := errgroup.WithContext(context.Background())
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			hs, err := classifyBatch(batch, parsingOpts, ts, processors)
			if err != nil {
				return err
			}
			results[i] = hs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapSchemaInferenceErr(err)
	}

	merged := mergeHistogramSets(results)
	return chooseSchema(merged, ts), nil
}

// histogramSet holds one histogram per column, produced by classifying the
// records of a single batch.
type histogramSet []histogram

func classifyBatch(batch Batch, parsingOpts ParsingOptions, ts TypeSystem, processors []ProcessorFunc) (histogramSet, error) {
	var hs histogramSet
	err := batch.ReadRecords(func(record string) error {
		cells := parseRecord(record, parsingOpts)
		if hs == nil {
			hs = make(histogramSet, len(cells))
			for i := range hs {
				hs[i] = make(histogram)
			}
		}
		for i, cell := range cells {
			if i >= len(hs) {
				break
			}
			raw := RawValue(applyProcessors(string(cell), processors))
			v := ts.Classify(raw)
			if v.IsSome() {
				tv, _ := v.Get()
				hs[i][ts.Tag(tv)]++
			}
		}
		return nil
	})
	if err != nil && err != errStopIteration {
		return nil, err
	}
	return hs, nil
}

// mergeHistogramSets sums per-column histograms across every batch,
// producing one histogram per column in file order.
func mergeHistogramSets(sets []histogramSet) histogramSet {
	var width int
	for _, hs := range sets {
		if len(hs) > width {
			width = len(hs)
		}
	}
	merged := make(histogramSet, width)
	for i := range merged {
		merged[i] = make(histogram)
	}
	for _, hs := range sets {
		for i, h := range hs {
			for ct, count := range h {
				merged[i][ct] += count
			}
		}
	}
	return merged
}

// chooseSchema picks, for each column histogram, the ColumnType with the
// highest count, using ts.ColumnTypes() order to break ties deterministically.
func chooseSchema(hs histogramSet, ts TypeSystem) Schema {
	types := ts.ColumnTypes()
	schema := make(Schema, len(hs))
	for i, h := range hs {
		best := ts.DefaultColumnType()
		bestCount := -1
		bestIdx := len(types)
		for ct, count := range h {
			idx := columnTypeIndex(types, ct)
			if count > bestCount || (count == bestCount && idx < bestIdx) {
				best = ct
				bestCount = count
				bestIdx = idx
			}
		}
		schema[i] = best
	}
	return schema
}
