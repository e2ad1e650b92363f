package typedframe

import "strings"

// ParsingOptions configures how a Record is split into RawValue cells and
// how quoted fields are unescaped.
type ParsingOptions struct {
	Separator       string
	TextQuote       string
	TextQuoteEscape string
}

// DefaultParsingOptions returns comma-separated, double-quoted,
// backslash-escaped parsing options.
func DefaultParsingOptions() ParsingOptions {
	return ParsingOptions{Separator: ",", TextQuote: "\"", TextQuoteEscape: "\\"}
}

// parseRecord splits a single logical Record into its raw cell values,
// honoring quoted fields that embed the separator or the record's own
// newlines. Cells are produced in record order; the iteration depends only
// on the record text and opts. An empty record yields zero cells; a record
// ending in a bare separator yields one trailing empty cell.
func parseRecord(record string, opts ParsingOptions) []RawValue {
	if record == "" {
		return nil
	}

	var cells []RawValue
	nextStart := 0
	for nextStart <= len(record) {
		sepIx := findFrom(record, opts.Separator, nextStart)
		quoteIx := findFrom(record, opts.TextQuote, nextStart)

		var cell string
		var advance int
		if quoteIx < 0 || (sepIx >= 0 && sepIx < quoteIx) {
			cell, advance = parseUnquotedCell(record, nextStart, sepIx, opts.Separator)
		} else {
			var ok bool
			cell, advance, ok = parseQuotedCell(record, nextStart, quoteIx, opts)
			if !ok {
				cell, advance = parseUnquotedCell(record, nextStart, sepIx, opts.Separator)
			}
		}

		cells = append(cells, RawValue(cell))
		nextStart = advance
	}
	return cells
}

// findFrom returns the index (relative to the whole record) of the first
// occurrence of sep at or after from, or -1 if sep doesn't occur again or
// is empty.
func findFrom(record, sep string, from int) int {
	if sep == "" || from > len(record) {
		return -1
	}
	ix := strings.Index(record[from:], sep)
	if ix < 0 {
		return -1
	}
	return ix + from
}

// parseUnquotedCell returns the text from start up to the next separator
// (or record end) and the offset to resume scanning from.
func parseUnquotedCell(record string, start, sepIx int, separator string) (cell string, nextStart int) {
	end := sepIx
	if end < 0 {
		end = len(record)
	}
	cell = record[start:end]
	return cell, end + len(separator)
}

// parseQuotedCell locates the closing quote of the field starting at
// quoteIx, skipping over any escaped quotes, and returns the substring
// between the outermost quotes with escapes removed, plus the resume
// offset past the closing quote and following separator. ok is false if no
// balanced closing quote can be found, signaling the caller to fall back to
// unquoted parsing.
func parseQuotedCell(record string, start, quoteIx int, opts ParsingOptions) (cell string, nextStart int, ok bool) {
	quoteLen := len(opts.TextQuote)
	escapeLen := len(opts.TextQuoteEscape)

	closeIx := findFrom(record, opts.TextQuote, quoteIx+quoteLen)
	if closeIx < 0 {
		return "", 0, false
	}
	for escapeLen > 0 && closeIx-escapeLen >= 0 && record[closeIx-escapeLen:closeIx] == opts.TextQuoteEscape {
		next := findFrom(record, opts.TextQuote, closeIx+quoteLen)
		if next < 0 {
			return "", 0, false
		}
		closeIx = next
	}

	end := closeIx + quoteLen
	raw := record[start:end]
	return unescapeQuoted(raw, opts), end + len(opts.Separator), true
}

// unescapeQuoted strips the outermost quote pair from raw (which may carry
// leading unquoted text, e.g. leading whitespace before the opening quote)
// and removes every occurrence of the escape sequence from the interior.
func unescapeQuoted(raw string, opts ParsingOptions) string {
	quoteL := strings.Index(raw, opts.TextQuote)
	quoteR := strings.LastIndex(raw, opts.TextQuote)
	if quoteL < 0 || quoteR < 0 || quoteL >= quoteR {
		return raw
	}
	inner := raw[quoteL+len(opts.TextQuote) : quoteR]
	if opts.TextQuoteEscape == "" {
		return inner
	}
	return strings.ReplaceAll(inner, opts.TextQuoteEscape, "")
}
