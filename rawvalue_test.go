package typedframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseBool(t *testing.T) {
	assert.True(t, ParseBool("true").IsSome())
	v, _ := ParseBool(" TRUE ").Get()
	assert.Equal(t, true, v)
	v, _ = ParseBool("0").Get()
	assert.Equal(t, false, v)
	assert.True(t, ParseBool("").IsMissing())
	assert.True(t, ParseBool("yes").IsInvalid())
}

func Test_ParseI64(t *testing.T) {
	v, ok := ParseI64(" 42 ").Get()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
	assert.True(t, ParseI64("").IsMissing())
	assert.True(t, ParseI64("4.2").IsInvalid())
}

func Test_ParseF64(t *testing.T) {
	v, ok := ParseF64("3.14").Get()
	assert.True(t, ok)
	assert.InDelta(t, 3.14, v, 1e-9)
	assert.True(t, ParseF64("").IsMissing())
	assert.True(t, ParseF64("xyz").IsInvalid())
	v, ok = ParseF64("NaN").Get()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(v))
}

func Test_ParseText(t *testing.T) {
	v, ok := ParseText("").Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
	v, ok = ParseText(" raw ").Get()
	assert.True(t, ok)
	assert.Equal(t, " raw ", v)
}

func Test_MapParsed(t *testing.T) {
	p := MapParsed(ParseI64("7"), func(n int64) int64 { return n * 2 })
	v, ok := p.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(14), v)

	m := MapParsed(ParseI64(""), func(n int64) int64 { return n * 2 })
	assert.True(t, m.IsMissing())
}

func Test_Parsed_OrElse(t *testing.T) {
	p := InvalidValue[int]().OrElse(func() Parsed[int] { return SomeValue(9) })
	v, ok := p.Get()
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	p2 := SomeValue(1).OrElse(func() Parsed[int] { return SomeValue(9) })
	v2, _ := p2.Get()
	assert.Equal(t, 1, v2)
}
