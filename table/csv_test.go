package table

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "gen.csv", "Tech,Region,Year\nwind,p1,2030\nsolar,p2,2035\n")

	f, err := ReadCSV(path, ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"tech", "region", "year"}, f.Columns)
	require.Equal(t, 2, f.NumRows())
	assert.Equal(t, []any{"wind", "p1", int64(2030)}, f.Rows[0])
}

func TestReadCSVKeepCase(t *testing.T) {
	path := writeFile(t, "gen.csv", "Tech,Region\nwind,p1\n")

	f, err := ReadCSV(path, ReadOptions{KeepCase: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech", "Region"}, f.Columns)
}

func TestReadCSVEmptyFile(t *testing.T) {
	zeroByte := writeFile(t, "empty.csv", "")
	headerOnly := writeFile(t, "header.csv", "tech,region,year\n")

	for _, path := range []string{zeroByte, headerOnly} {
		f, err := ReadCSV(path, ReadOptions{})
		require.NoError(t, err, path)
		assert.True(t, f.IsEmpty(), path)
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"), ReadOptions{})
	require.Error(t, err)
}

func TestReadCSVDeclaredColumns(t *testing.T) {
	path := writeFile(t, "cap.csv", "a,b\n1,2\n")

	f, err := ReadCSV(path, ReadOptions{Columns: []string{"tech", "value"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"tech", "value"}, f.Columns)
}

func TestReadCSVTrailingColumnShim(t *testing.T) {
	// The upgrader appends one extra column; the declared list picks it up.
	path := writeFile(t, "cap.csv", "a,b,sregion\n1,2,s10\n")

	f, err := ReadCSV(path, ReadOptions{Columns: []string{"tech", "value"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"tech", "value", "sregion"}, f.Columns)
}

func TestScalarInference(t *testing.T) {
	path := writeFile(t, "mixed.csv", "a,b,c,d,e\n42,3.14,true,wind,\n")

	f, err := ReadCSV(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(42), 3.14, true, "wind", nil}, f.Rows[0])
}

func TestWriteCSVRoundTrip(t *testing.T) {
	f := &Frame{
		Columns: []string{"tech", "year"},
		Rows:    [][]any{{"wind", int64(2030)}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, f))
	assert.Equal(t, "tech,year\nwind,2030\n", buf.String())
}
