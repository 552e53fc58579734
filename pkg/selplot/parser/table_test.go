package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/meshsel/selplot/pkg/selplot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a fresh workbook in a temp dir and returns its path.
func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeWorkbook(t, "c_share_krill_MB14_22.xlsx", [][]interface{}{
		{"catch share", "", "", ""},
		{"X0", "Y0", "X1", "Y1"},
		{15.5, 0.2, 15, 0.31},
		{20.5, "N/A", 20, 0.42},
		{25.5, 0.61, nil, nil},
	})

	tbl, err := LoadTable(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, path, tbl.Source)
	assert.Equal(t, []string{"X0", "Y0", "X1", "Y1"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())

	// Row order is preserved.
	assert.Equal(t, 15.5, tbl.Rows[0]["X0"].V)
	assert.Equal(t, 20.5, tbl.Rows[1]["X0"].V)
	assert.Equal(t, 25.5, tbl.Rows[2]["X0"].V)

	// "N/A" is coerced to missing rather than failing the load.
	assert.False(t, tbl.Rows[1]["Y0"].OK)
	assert.True(t, tbl.Rows[1]["Y1"].OK)

	// Short rows are padded with missing values.
	assert.False(t, tbl.Rows[2]["X1"].OK)
	assert.False(t, tbl.Rows[2]["Y1"].OK)
}

func TestLoadTableRowCount(t *testing.T) {
	rows := [][]interface{}{{"ignored"}, {"X0", "Y0"}}
	for i := 0; i < 40; i++ {
		rows = append(rows, []interface{}{i, i * 2})
	}
	path := writeWorkbook(t, "long.xlsx", rows)

	tbl, err := LoadTable(path, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 40, tbl.Len())
	for i, row := range tbl.Rows {
		assert.Equal(t, float64(i), row["X0"].V)
	}
}

func TestLoadTableSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, "gaps.xlsx", [][]interface{}{
		{"ignored"},
		{"X0", "Y0"},
		{1, 2},
		{nil, nil},
		{"text", "more"},
		{3, 4},
	})

	tbl, err := LoadTable(path, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	assert.False(t, tbl.Rows[1]["X0"].OK)
	assert.Equal(t, 3.0, tbl.Rows[2]["X0"].V)
}

func TestLoadTableHeaderOffset(t *testing.T) {
	path := writeWorkbook(t, "offset.xlsx", [][]interface{}{
		{"X0", "Y0"},
		{1, 2},
	})

	tbl, err := LoadTable(path, Options{HeaderRow: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	_, err = LoadTable(path, Options{HeaderRow: 5})
	require.ErrorIs(t, err, models.ErrHeaderOutOfRange)
}

func TestLoadTableErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultOptions())
		var le *models.LoadError
		require.True(t, errors.As(err, &le))
		assert.ErrorIs(t, err, models.ErrFileNotFound)
	})

	t.Run("not a workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("X0,Y0\n1,2\n"), 0644))

		_, err := LoadTable(path, DefaultOptions())
		assert.ErrorIs(t, err, models.ErrInvalidFormat)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		path := writeWorkbook(t, "sheet.xlsx", [][]interface{}{{"a"}, {"X0"}})

		_, err := LoadTable(path, Options{HeaderRow: 1, Sheet: "Data"})
		assert.ErrorIs(t, err, models.ErrSheetNotFound)
	})
}
