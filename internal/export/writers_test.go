package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, map[string]string{
		"b.rent": "900",
		"a.name": "Sunset Towers",
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Keys come out sorted, each row is key,value.
	assert.Equal(t, []string{"a.name", "Sunset Towers"}, rows[0])
	assert.Equal(t, []string{"b.rent", "900"}, rows[1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, map[string]string{
		"name": "Sunset Towers",
		"rent": "900",
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"name", "rent"}, rows[0])
	assert.Equal(t, []string{"Sunset Towers", "900"}, rows[1])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, "lease-report", map[string]string{"name": "Sunset Towers"})
	require.NoError(t, err)

	// A PDF always opens with its magic marker.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
