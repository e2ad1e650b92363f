package typedframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiendc/gofn"
)

func Test_InferSchema_mixedTypes(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`name,age,score,active
		alice,30,1.5,true
		bob,25,2.75,false
		carol,40,3.0,1`))
	schema, err := InferSchema(path, true, SchemaInferenceAll(), DefaultParsingOptions(), DefaultTypeSystem{}, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, Schema{ColumnTypeText, ColumnTypeInt, ColumnTypeFloat, ColumnTypeBoolean}, schema)
}

func Test_InferSchema_emptyColumn_fallsBackToDefault(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`a,b
		,1
		,2
		,3`))
	schema, err := InferSchema(path, true, SchemaInferenceAll(), DefaultParsingOptions(), DefaultTypeSystem{}, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, ColumnTypeText, schema[0])
	assert.Equal(t, ColumnTypeInt, schema[1])
}

func Test_InferSchema_percentageSamplesSubset(t *testing.T) {
	var b []byte
	for i := 0; i < 100; i++ {
		b = append(b, []byte("1\n")...)
	}
	path := writeTempFile(t, string(b))
	schema, err := InferSchema(path, false, SchemaInferencePercentage(0.1), DefaultParsingOptions(), DefaultTypeSystem{}, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, ColumnTypeBoolean, schema[0])
}

func Test_InferSchema_honorsBatchCount(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`a
		1
		2
		3
		4`))
	schema, err := InferSchema(path, true, SchemaInferenceAll(), DefaultParsingOptions(), DefaultTypeSystem{}, 2, nil)
	assert.NoError(t, err)
	assert.Equal(t, ColumnTypeInt, schema[0])
}

func Test_InferSchema_appliesProcessors(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`a
		$$1
		$$2`))
	schema, err := InferSchema(path, true, SchemaInferenceAll(), DefaultParsingOptions(), DefaultTypeSystem{}, 0,
		[]ProcessorFunc{ProcessorTrimPrefix("$$")})
	assert.NoError(t, err)
	assert.Equal(t, ColumnTypeBoolean, schema[0])
}

func Test_chooseSchema_tieBreakEarliestWins(t *testing.T) {
	ts := DefaultTypeSystem{}
	hs := histogramSet{{ColumnTypeBoolean: 2, ColumnTypeInt: 2}}
	schema := chooseSchema(hs, ts)
	assert.Equal(t, ColumnTypeBoolean, schema[0])
}
