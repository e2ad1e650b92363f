package typedframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiendc/gofn"
)

func Test_ParseHeader_ok(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`name,age,active
		alice,30,true`))
	h, err := ParseHeader(path, DefaultParsingOptions())
	assert.NoError(t, err)
	assert.Equal(t, Header{"name", "age", "active"}, h)
}

func Test_ParseHeader_duplicated(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`name,name
		a,b`))
	_, err := ParseHeader(path, DefaultParsingOptions())
	assert.ErrorIs(t, err, ErrHeaderColumnDuplicated)
}

func Test_ParseHeader_invalid(t *testing.T) {
	path := writeTempFile(t, "name, age\na,b\n")
	_, err := ParseHeader(path, DefaultParsingOptions())
	assert.ErrorIs(t, err, ErrHeaderColumnInvalid)
}

func Test_ParseHeader_emptyFile(t *testing.T) {
	path := writeTempFile(t, "")
	h, err := ParseHeader(path, DefaultParsingOptions())
	assert.NoError(t, err)
	assert.Nil(t, h)
}
