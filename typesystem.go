package typedframe

import (
	"fmt"
	"strings"
	"time"

	"github.com/tiendc/gofn"
)

// ColumnType identifies one of the finite set of types a TypeSystem can
// classify a cell as. The zero value is ColumnTypeUnknown, the universal
// fallback when no concrete implementation of TypeSystem is in play.
type ColumnType uint8

const (
	ColumnTypeUnknown ColumnType = iota
	ColumnTypeBoolean
	ColumnTypeInt
	ColumnTypeFloat
	ColumnTypeText
	ColumnTypeDate
	ColumnTypeDuration
)

// String renders the column type name, matching the tag names used
// throughout error messages and ColumnDetails.
func (t ColumnType) String() string {
	switch t {
	case ColumnTypeBoolean:
		return "Boolean"
	case ColumnTypeInt:
		return "Int"
	case ColumnTypeFloat:
		return "Float"
	case ColumnTypeText:
		return "Text"
	case ColumnTypeDate:
		return "Date"
	case ColumnTypeDuration:
		return "Duration"
	default:
		return "Unknown"
	}
}

// TypedValue is a discriminated union carrying one CT tag and its concrete
// parsed payload. Construct via the package-level newXxxValue helpers below;
// read back via Tag and the typed accessors.
type TypedValue struct {
	tag     ColumnType
	boolean bool
	integer int64
	float   float64
	text    string
	instant time.Time
	period  time.Duration
}

func newBooleanValue(v bool) TypedValue   { return TypedValue{tag: ColumnTypeBoolean, boolean: v} }
func newIntValue(v int64) TypedValue      { return TypedValue{tag: ColumnTypeInt, integer: v} }
func newFloatValue(v float64) TypedValue  { return TypedValue{tag: ColumnTypeFloat, float: v} }
func newTextValue(v string) TypedValue    { return TypedValue{tag: ColumnTypeText, text: v} }
func newDateValue(v time.Time) TypedValue { return TypedValue{tag: ColumnTypeDate, instant: v} }
func newDurationValue(v time.Duration) TypedValue {
	return TypedValue{tag: ColumnTypeDuration, period: v}
}

// Tag returns the concrete ColumnType this value was parsed as.
func (v TypedValue) Tag() ColumnType { return v.tag }

// Bool returns the payload and true if tag is ColumnTypeBoolean.
func (v TypedValue) Bool() (bool, bool) { return v.boolean, v.tag == ColumnTypeBoolean }

// Int returns the payload and true if tag is ColumnTypeInt.
func (v TypedValue) Int() (int64, bool) { return v.integer, v.tag == ColumnTypeInt }

// Float returns the payload and true if tag is ColumnTypeFloat.
func (v TypedValue) Float() (float64, bool) { return v.float, v.tag == ColumnTypeFloat }

// Text returns the payload and true if tag is ColumnTypeText.
func (v TypedValue) Text() (string, bool) { return v.text, v.tag == ColumnTypeText }

// Date returns the payload and true if tag is ColumnTypeDate.
func (v TypedValue) Date() (time.Time, bool) { return v.instant, v.tag == ColumnTypeDate }

// Duration returns the payload and true if tag is ColumnTypeDuration.
func (v TypedValue) Duration() (time.Duration, bool) { return v.period, v.tag == ColumnTypeDuration }

// TypeSystem enumerates the supported column types, parses a raw cell as a
// specified type, and reports the type tag of an already-parsed value. It is
// the pluggable seam of the package: any implementation satisfying this
// contract can replace DefaultTypeSystem.
type TypeSystem interface {
	// ColumnTypes returns the supported types in classification priority
	// order: the most specific type is attempted first, a universal
	// fallback (conventionally Text) last.
	ColumnTypes() []ColumnType

	// ParseAs attempts to parse raw as exactly ct. It must return Missing
	// for an empty (or all-whitespace) raw value, Invalid when raw is
	// non-empty but does not parse as ct, and Some otherwise.
	ParseAs(raw RawValue, ct ColumnType) Parsed[TypedValue]

	// Classify scans ColumnTypes left to right and returns the first Some
	// result. If raw is empty, Missing propagates from every type and
	// Classify returns Missing. If raw is non-empty and no type matches,
	// Classify returns Invalid.
	Classify(raw RawValue) Parsed[TypedValue]

	// Tag is the total function from a TypedValue to its ColumnType.
	Tag(v TypedValue) ColumnType

	// DefaultColumnType is the fallback type chosen for a column whose
	// histogram contains no successful parse at all.
	DefaultColumnType() ColumnType
}

// classify implements the shared left-to-right scan described on
// TypeSystem.Classify, used by both bundled type systems.
func classify(ts TypeSystem, raw RawValue) Parsed[TypedValue] {
	for _, ct := range ts.ColumnTypes() {
		v := ts.ParseAs(raw, ct)
		if v.IsSome() {
			return v
		}
	}
	if strings.TrimSpace(string(raw)) == "" {
		return MissingValue[TypedValue]()
	}
	return InvalidValue[TypedValue]()
}

// DefaultTypeSystem classifies cells as Boolean, Int, Float, or Text, in
// that priority order, so that "0"/"1" become Boolean rather than Int, and
// "1.5" becomes Float rather than Text. Text is the universal fallback:
// every non-empty raw value parses as Text. This ordering is a deliberate
// policy, not the only reasonable one — callers that want "0"/"1" to stay
// numeric should supply their own TypeSystem with Int ahead of Boolean.
type DefaultTypeSystem struct{}

var defaultColumnTypes = []ColumnType{ColumnTypeBoolean, ColumnTypeInt, ColumnTypeFloat, ColumnTypeText}

func (DefaultTypeSystem) ColumnTypes() []ColumnType { return defaultColumnTypes }

func (DefaultTypeSystem) ParseAs(raw RawValue, ct ColumnType) Parsed[TypedValue] {
	switch ct {
	case ColumnTypeBoolean:
		return MapParsed(ParseBool(raw), newBooleanValue)
	case ColumnTypeInt:
		return MapParsed(ParseI64(raw), newIntValue)
	case ColumnTypeFloat:
		return MapParsed(ParseF64(raw), newFloatValue)
	case ColumnTypeText:
		return parseAsText(raw)
	default:
		return InvalidValue[TypedValue]()
	}
}

func (ts DefaultTypeSystem) Classify(raw RawValue) Parsed[TypedValue] { return classify(ts, raw) }

func (DefaultTypeSystem) Tag(v TypedValue) ColumnType { return v.tag }

func (DefaultTypeSystem) DefaultColumnType() ColumnType { return ColumnTypeText }

// parseAsText implements the Type System's Text contract: unlike the raw
// ParseText primitive, which always succeeds, ParseAs must produce Missing
// for an empty cell so the Text fallback doesn't swallow every missing
// value in a column as if it were successfully typed.
func parseAsText(raw RawValue) Parsed[TypedValue] {
	if strings.TrimSpace(string(raw)) == "" {
		return MissingValue[TypedValue]()
	}
	return SomeValue(newTextValue(string(raw)))
}

// ExtendedTypeSystem adds Date (RFC 3339) and Duration (Go duration syntax,
// e.g. "90s", "2h45m") ahead of Text, after Float. It is never the default;
// callers opt in via ReadingOptions.TypeSystem.
type ExtendedTypeSystem struct{}

var extendedColumnTypes = []ColumnType{
	ColumnTypeBoolean, ColumnTypeInt, ColumnTypeFloat, ColumnTypeDate, ColumnTypeDuration, ColumnTypeText,
}

func (ExtendedTypeSystem) ColumnTypes() []ColumnType { return extendedColumnTypes }

func (ExtendedTypeSystem) ParseAs(raw RawValue, ct ColumnType) Parsed[TypedValue] {
	switch ct {
	case ColumnTypeDate:
		return parseAsDate(raw)
	case ColumnTypeDuration:
		return parseAsDuration(raw)
	default:
		return DefaultTypeSystem{}.ParseAs(raw, ct)
	}
}

func (ts ExtendedTypeSystem) Classify(raw RawValue) Parsed[TypedValue] { return classify(ts, raw) }

func (ExtendedTypeSystem) Tag(v TypedValue) ColumnType { return v.tag }

func (ExtendedTypeSystem) DefaultColumnType() ColumnType { return ColumnTypeText }

func parseAsDate(raw RawValue) Parsed[TypedValue] {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return MissingValue[TypedValue]()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return InvalidValue[TypedValue]()
	}
	return SomeValue(newDateValue(t))
}

func parseAsDuration(raw RawValue) Parsed[TypedValue] {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return MissingValue[TypedValue]()
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return InvalidValue[TypedValue]()
	}
	return SomeValue(newDurationValue(d))
}

// columnTypeIndex returns the position of ct within types, used for the
// deterministic histogram tie-break in schema inference: earlier position
// wins.
func columnTypeIndex(types []ColumnType, ct ColumnType) int {
	for i, t := range types {
		if t == ct {
			return i
		}
	}
	return len(types)
}

// validateTypeSystem rejects a caller-supplied TypeSystem whose declared
// default column type isn't actually one of its own ColumnTypes — a
// misconfiguration that would otherwise surface confusingly deep inside
// schema inference. Mirrors the teacher's own validateConfig-style
// fail-fast checks in decoder.go.
func validateTypeSystem(ts TypeSystem) error {
	types := ts.ColumnTypes()
	if len(types) == 0 {
		return fmt.Errorf("%w: type system declares no column types", ErrTypeSystemInvalid)
	}
	if !gofn.ContainPred(types, func(ct ColumnType) bool { return ct == ts.DefaultColumnType() }) {
		return fmt.Errorf("%w: default column type %v not in declared column types",
			ErrTypeSystemInvalid, ts.DefaultColumnType())
	}
	return nil
}
