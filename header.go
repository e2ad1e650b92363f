package typedframe

import (
	"fmt"
	"strings"
)

// Header is the ordered list of column names read from a file's first
// record.
type Header []string

// ParseHeader reads only the first record of the file at path and splits it
// into column names using opts, rejecting empty or duplicated names. An
// empty file has no header at all, so ParseHeader returns (nil, nil) rather
// than an error.
func ParseHeader(path string, opts ParsingOptions) (Header, error) {
	file := NewDatasetFile(path, opts.TextQuote, false)

	var first string
	found := false
	err := file.ReadRecords(func(record string) error {
		first = record
		found = true
		return errStopIteration
	})
	if err != nil && err != errStopIteration {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	cells := parseRecord(first, opts)
	header := make(Header, len(cells))
	for i, c := range cells {
		header[i] = string(c)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}
	return header, nil
}

// validateHeader rejects a header whose column names are empty, carry
// leading/trailing whitespace, or repeat. Column-name hygiene is domain-
// general (it doesn't depend on how the header was split out of a record),
// so it lives here unchanged next to the one caller that needs it.
func validateHeader(header []string) error {
	mapCheckUniq := make(map[string]struct{}, len(header))
	for _, h := range header {
		hh := strings.TrimSpace(h)
		if h != hh || len(hh) == 0 {
			return fmt.Errorf("%w: \"%s\" invalid", ErrHeaderColumnInvalid, h)
		}
		if _, ok := mapCheckUniq[hh]; ok {
			return fmt.Errorf("%w: \"%s\" duplicated", ErrHeaderColumnDuplicated, h)
		}
		mapCheckUniq[hh] = struct{}{}
	}
	return nil
}
