package typedframe

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/tiendc/gofn"
)

// resolveWorkerCount returns batchCount if the caller configured one
// (ReadingOptions.BatchCount >= 1), otherwise falls back to one worker per
// available CPU, capped at 16. Shared by schema inference and column
// materialization so WithBatchCount controls both consistently.
func resolveWorkerCount(batchCount int) int {
	if batchCount >= 1 {
		return batchCount
	}
	workers := gofn.Min(runtime.NumCPU(), 16)
	if workers < 1 {
		workers = 1
	}
	return workers
}

// RecordsToRead selects how many records a caller wants batched, either the
// whole file, an absolute count, or a percentage of the total.
type RecordsToRead struct {
	kind recordsToReadKind
	n    int
	pct  float64
}

type recordsToReadKind uint8

const (
	recordsToReadAll recordsToReadKind = iota
	recordsToReadAbsolute
	recordsToReadPercentage
)

func AllRecords() RecordsToRead { return RecordsToRead{kind: recordsToReadAll} }

func AbsoluteRecords(n int) RecordsToRead { return RecordsToRead{kind: recordsToReadAbsolute, n: n} }

// PercentageRecords clamps p to [0, 1].
func PercentageRecords(p float64) RecordsToRead {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return RecordsToRead{kind: recordsToReadPercentage, pct: p}
}

// DatasetFile is a handle onto a delimited text file on disk. Every
// operation opens its own read-only file descriptor, so instances are safe
// to use concurrently from multiple goroutines (spec.md's "each worker
// opens an independent read handle").
type DatasetFile struct {
	path             string
	quote            string
	strictQuoteOnEOF bool
}

// NewDatasetFile creates a handle for path. quote is the text-quote
// character the lexer toggles in and out of quoted fields on; strictQuoteOnEOF controls the
// lenient-vs-strict behavior for an unbalanced quote at end of file.
func NewDatasetFile(path string, quote string, strictQuoteOnEOF bool) *DatasetFile {
	return &DatasetFile{path: path, quote: quote, strictQuoteOnEOF: strictQuoteOnEOF}
}

// CountRecords streams the file through the lexer once and counts records.
func (f *DatasetFile) CountRecords() (int, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	n := 0
	err = readAllRecords(file, f.quote, f.strictQuoteOnEOF, func(string) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ReadRecords streams every record of the file in order, invoking fn for
// each. Iteration stops at the first error fn returns.
func (f *DatasetFile) ReadRecords(fn func(record string) error) error {
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	return readAllRecords(file, f.quote, f.strictQuoteOnEOF, fn)
}

// Batch identifies a contiguous record-index window, [Start, EndInclusive],
// to be processed by a single worker.
type Batch struct {
	file         *DatasetFile
	Start        int
	EndInclusive int
}

// RowCount is the number of records this batch covers.
func (b Batch) RowCount() int {
	if b.EndInclusive < b.Start {
		return 0
	}
	return b.EndInclusive - b.Start + 1
}

// ReadRecords streams only the records with index in [Start, EndInclusive],
// by skipping Start records and then reading RowCount() more. Each call
// re-lexes the file from its beginning, trading CPU for correctness in the
// presence of quoted newlines that make byte-offset partitioning unsafe.
func (b Batch) ReadRecords(fn func(record string) error) error {
	idx := -1
	remaining := b.RowCount()
	if remaining == 0 {
		return nil
	}
	err := b.file.ReadRecords(func(record string) error {
		idx++
		if idx < b.Start {
			return nil
		}
		if idx > b.EndInclusive {
			return errStopIteration
		}
		remaining--
		err := fn(record)
		if err == nil && remaining == 0 {
			return errStopIteration
		}
		return err
	})
	if err == errStopIteration {
		return nil
	}
	return err
}

// errStopIteration is an internal sentinel used to short-circuit
// ReadRecords once a batch's window has been fully consumed; it never
// escapes to callers of Batch.ReadRecords.
var errStopIteration = fmt.Errorf("stop iteration")

// Batches partitions the logical record index range [skip, total) into
// batchCount contiguous windows, where skip is 1 if skipHeader else 0 and
// total is derived from toRead. Windows are generated in row order so that
// concatenating per-batch results in the order returned here preserves the
// file's row order.
func (f *DatasetFile) Batches(skipHeader bool, toRead RecordsToRead, batchCount int) ([]Batch, error) {
	if batchCount < 1 {
		batchCount = 1
	}

	skip := 0
	if skipHeader {
		skip = 1
	}

	// toRead's counts are relative to data rows (excluding a skipped
	// header), matching what a caller configuring schema-inference depth
	// or a row limit actually means by "records to read".
	count, err := f.CountRecords()
	if err != nil {
		return nil, err
	}
	dataRows := count - skip
	if dataRows < 0 {
		dataRows = 0
	}

	var sampled int
	switch toRead.kind {
	case recordsToReadAbsolute:
		sampled = toRead.n
	case recordsToReadPercentage:
		sampled = int(math.Ceil(toRead.pct * float64(dataRows)))
	default:
		sampled = dataRows
	}
	if sampled > dataRows {
		sampled = dataRows
	}
	if sampled < 0 {
		sampled = 0
	}
	total := skip + sampled

	span := total - skip
	if span <= 0 {
		return []Batch{{file: f, Start: skip, EndInclusive: skip - 1}}, nil
	}

	batchSize := span / batchCount
	if batchSize < 1 {
		batchSize = 1
	}

	var batches []Batch
	start := skip
	for start < total {
		end := start + batchSize - 1
		if end >= total-1 || len(batches) == batchCount-1 {
			end = total - 1
		}
		batches = append(batches, Batch{file: f, Start: start, EndInclusive: end})
		start = end + 1
	}
	return batches, nil
}
