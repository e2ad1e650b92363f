package typedframe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// recordLexer decodes a UTF-8 byte stream into logical records, honoring
// quoted fields that embed the configured separator, embedded newlines, and
// escaped quotes. It toggles in/out of a quoted field only on the
// configured quote rune, and treats LF (optionally preceded by CR) as a
// record terminator only while outside a quoted field.
type recordLexer struct {
	r                *bufio.Reader
	quote            rune
	strictQuoteOnEOF bool
}

func newRecordLexer(r io.Reader, quote string, strictQuoteOnEOF bool) *recordLexer {
	q := rune('"')
	if rs := []rune(quote); len(rs) > 0 {
		q = rs[0]
	}
	return &recordLexer{r: bufio.NewReader(r), quote: q, strictQuoteOnEOF: strictQuoteOnEOF}
}

// next reads and returns the next logical record, or io.EOF when the stream
// is exhausted with no trailing content. A final record with unbalanced
// quotes is emitted as-is unless strictQuoteOnEOF is set, in which case
// ErrLexer is returned instead (spec's documented configuration point).
func (l *recordLexer) next() (string, error) {
	var buf []rune
	insideQuotes := false
	var prev rune

	for {
		c, size, err := l.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(buf) == 0 {
					return "", io.EOF
				}
				if insideQuotes && l.strictQuoteOnEOF {
					return "", fmt.Errorf("%w: unbalanced quote at end of file", ErrLexer)
				}
				return string(buf), nil
			}
			return "", fmt.Errorf("%w: %v", ErrIO, err)
		}
		if c == utf8.RuneError && size == 1 {
			return "", fmt.Errorf("%w: invalid UTF-8 byte sequence", ErrLexer)
		}

		if c == l.quote {
			insideQuotes = !insideQuotes
			buf = append(buf, c)
			prev = c
			continue
		}

		if c == '\n' && !insideQuotes {
			if prev == '\r' {
				buf = buf[:len(buf)-1]
			}
			return string(buf), nil
		}

		buf = append(buf, c)
		prev = c
	}
}

// readAllRecords drains the lexer, calling fn for each record, and stops at
// the first error fn returns. Used by DatasetFile's count/read paths, which
// open one handle per call.
func readAllRecords(r io.Reader, quote string, strictQuoteOnEOF bool, fn func(record string) error) error {
	lex := newRecordLexer(r, quote, strictQuoteOnEOF)
	for {
		rec, err := lex.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
