package typedframe

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrIO wraps failures opening or reading the underlying file.
	ErrIO = errors.New("ErrIO")

	// ErrLexer wraps failures decoding the byte stream into records
	// (e.g. invalid UTF-8, or an unbalanced quote under StrictQuoteBalance).
	ErrLexer = errors.New("ErrLexer")

	// ErrSchemaInference wraps a catastrophic schema-inference failure, i.e.
	// a batch worker returning ErrIO or ErrLexer. A column that never
	// parses under any type is not an error; it falls back to the type
	// system's default column type.
	ErrSchemaInference = errors.New("ErrSchemaInference")

	// ErrColumnMaterialization wraps a catastrophic failure while
	// materializing typed columns under an already-chosen schema.
	ErrColumnMaterialization = errors.New("ErrColumnMaterialization")

	ErrOptionInvalid     = errors.New("ErrOptionInvalid")
	ErrTypeSystemInvalid = errors.New("ErrTypeSystemInvalid")
	ErrPathInvalid       = errors.New("ErrPathInvalid")

	// ErrHeaderColumnInvalid wraps a header column name that is empty or
	// carries leading/trailing whitespace.
	ErrHeaderColumnInvalid = errors.New("ErrHeaderColumnInvalid")

	// ErrHeaderColumnDuplicated wraps a header that names the same column
	// twice.
	ErrHeaderColumnDuplicated = errors.New("ErrHeaderColumnDuplicated")
)

// fatalBatchErrors aggregates fatal (non-cell-level) errors into one
// multierror. InferSchema and materializeColumns do not use it; they report
// the first error of their worker group. Individual cell parse failures are
// never added here; they are encoded as Invalid in the resulting Columns
// instead.
type fatalBatchErrors struct {
	merr *multierror.Error
}

func (f *fatalBatchErrors) add(err error) {
	if err == nil {
		return
	}
	f.merr = multierror.Append(f.merr, err)
}

func (f *fatalBatchErrors) errorOrNil() error {
	if f.merr == nil || f.merr.Len() == 0 {
		return nil
	}
	return f.merr
}

// wrapSchemaInferenceErr wraps the first fatal batch error returned by the
// worker group while inferring a schema, so callers can match it against
// ErrSchemaInference with errors.Is.
func wrapSchemaInferenceErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrSchemaInference, err)
}

// wrapColumnMaterializationErr does the equivalent wrapping for column
// materialization batch failures.
func wrapColumnMaterializationErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrColumnMaterialization, err)
}
