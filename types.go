package typedframe

// Numeric constrains the primitive numeric payload kinds this package
// parses raw cell text into: int64 backs ColumnTypeInt, float64 backs
// ColumnTypeFloat.
type Numeric interface {
	int64 | float64
}
