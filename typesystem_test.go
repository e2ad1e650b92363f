package typedframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultTypeSystem_Classify(t *testing.T) {
	ts := DefaultTypeSystem{}

	v := ts.Classify("1")
	tv, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, ColumnTypeBoolean, tv.Tag())

	v = ts.Classify("42")
	tv, _ = v.Get()
	assert.Equal(t, ColumnTypeInt, tv.Tag())

	v = ts.Classify("4.2")
	tv, _ = v.Get()
	assert.Equal(t, ColumnTypeFloat, tv.Tag())

	v = ts.Classify("hello")
	tv, _ = v.Get()
	assert.Equal(t, ColumnTypeText, tv.Tag())

	assert.True(t, ts.Classify("").IsMissing())
}

func Test_ExtendedTypeSystem_Classify(t *testing.T) {
	ts := ExtendedTypeSystem{}

	v := ts.Classify("2024-01-02T15:04:05Z")
	tv, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, ColumnTypeDate, tv.Tag())

	v = ts.Classify("90s")
	tv, _ = v.Get()
	assert.Equal(t, ColumnTypeDuration, tv.Tag())

	v = ts.Classify("not a date")
	tv, _ = v.Get()
	assert.Equal(t, ColumnTypeText, tv.Tag())
}

func Test_columnTypeIndex(t *testing.T) {
	types := []ColumnType{ColumnTypeBoolean, ColumnTypeInt, ColumnTypeText}
	assert.Equal(t, 0, columnTypeIndex(types, ColumnTypeBoolean))
	assert.Equal(t, 2, columnTypeIndex(types, ColumnTypeText))
	assert.Equal(t, 3, columnTypeIndex(types, ColumnTypeFloat))
}

func Test_validateTypeSystem(t *testing.T) {
	assert.NoError(t, validateTypeSystem(DefaultTypeSystem{}))
	assert.NoError(t, validateTypeSystem(ExtendedTypeSystem{}))
	assert.ErrorIs(t, validateTypeSystem(badTypeSystem{}), ErrTypeSystemInvalid)
}

type badTypeSystem struct{ DefaultTypeSystem }

func (badTypeSystem) DefaultColumnType() ColumnType { return ColumnTypeDuration }
