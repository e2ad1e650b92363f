package typedframe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiendc/gofn"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_DatasetFile_CountRecords(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`h1,h2
		a,1
		b,2
		c,3`))
	f := NewDatasetFile(path, "\"", false)
	n, err := f.CountRecords()
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func Test_DatasetFile_ReadRecords(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`a,1
		b,2`))
	f := NewDatasetFile(path, "\"", false)
	var got []string
	err := f.ReadRecords(func(r string) error {
		got = append(got, r)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a,1", "b,2"}, got)
}

func Test_DatasetFile_Batches_absolute(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`h1,h2
		a,1
		b,2
		c,3
		d,4`))
	f := NewDatasetFile(path, "\"", false)
	batches, err := f.Batches(true, AbsoluteRecords(4), 2)
	assert.NoError(t, err)

	var rows []string
	for _, b := range batches {
		err := b.ReadRecords(func(r string) error {
			rows = append(rows, r)
			return nil
		})
		assert.NoError(t, err)
	}
	assert.Equal(t, []string{"a,1", "b,2", "c,3", "d,4"}, rows)
}

func Test_DatasetFile_Batches_all(t *testing.T) {
	path := writeTempFile(t, gofn.MultilineString(
		`a,1
		b,2
		c,3`))
	f := NewDatasetFile(path, "\"", false)
	batches, err := f.Batches(false, AllRecords(), 3)
	assert.NoError(t, err)
	total := 0
	for _, b := range batches {
		total += b.RowCount()
	}
	assert.Equal(t, 3, total)
}

func Test_Batch_RowCount(t *testing.T) {
	b := Batch{Start: 2, EndInclusive: 5}
	assert.Equal(t, 4, b.RowCount())
	empty := Batch{Start: 3, EndInclusive: 2}
	assert.Equal(t, 0, empty.RowCount())
}
