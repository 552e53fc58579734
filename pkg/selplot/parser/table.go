// Package parser loads spreadsheet data into numeric tables.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/meshsel/selplot/pkg/selplot/models"
	"github.com/xuri/excelize/v2"
)

// DefaultHeaderRow is the 0-based header row of the statistics exports:
// the first row carries unused labels.
const DefaultHeaderRow = 1

// Options configures table loading.
type Options struct {
	// HeaderRow is the 0-based index of the row holding column names.
	HeaderRow int
	// Sheet is the sheet to read. Empty selects the first sheet.
	Sheet string
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{HeaderRow: DefaultHeaderRow}
}

// LoadTable reads the sheet of a workbook into a Table. Every data cell is
// coerced to a number; cells that cannot be parsed become missing values.
func LoadTable(path string, opts Options) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.LoadError{Path: path, Err: models.ErrFileNotFound}
		}
		return nil, &models.LoadError{Path: path, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: fmt.Errorf("%w: %v", models.ErrInvalidFormat, err)}
	}
	defer f.Close()

	sheet, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: err}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &models.LoadError{Path: path, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}

	return buildTable(path, rows, opts.HeaderRow)
}

// resolveSheet returns the sheet to read, defaulting to the first one.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", models.ErrInvalidFormat)
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrSheetNotFound, name)
}

// buildTable turns raw sheet rows into a Table using the row at headerRow
// as column names.
func buildTable(path string, rows [][]string, headerRow int) (*models.Table, error) {
	if headerRow < 0 || headerRow >= len(rows) {
		return nil, &models.LoadError{
			Path: path,
			Err:  fmt.Errorf("%w: row %d of %d", models.ErrHeaderOutOfRange, headerRow, len(rows)),
		}
	}

	body := rows[headerRow:]
	names := columnNames(rows[headerRow], dataWidth(body))

	table := &models.Table{
		Source:  path,
		Columns: names,
	}
	for _, cells := range body[1:] {
		if isBlank(cells) {
			continue
		}
		table.Rows = append(table.Rows, coerceRow(cells, names))
	}

	return table, nil
}
