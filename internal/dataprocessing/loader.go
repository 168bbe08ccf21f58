package dataprocessing

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// LoadFile reads a delimited file into a dataframe. The first row is
// interpreted as the header and column types are detected from the data.
// CSV and Excel workbooks are supported, chosen by file extension.
func LoadFile(path string) (dataframe.DataFrame, error) {
	if _, err := os.Stat(path); err != nil {
		return dataframe.DataFrame{}, apperrors.NewNotFoundError(
			fmt.Sprintf("file %s not found", path), err).WithContext("path", path)
	}

	var (
		df  dataframe.DataFrame
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		df, err = loadCSV(path)
	case ".xlsx", ".xlsm":
		df, err = loadExcel(path)
	default:
		return dataframe.DataFrame{}, apperrors.UnsupportedFormat(ext).WithContext("path", path)
	}
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	slog.Info("loaded dataframe",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))
	return df, nil
}

// loadCSV reads a comma-separated file with a header row
func loadCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewStorageError(
			fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("error parsing CSV file %s", path), df.Err).WithContext("path", path)
	}
	return df, nil
}

// loadExcel reads the first sheet of an Excel workbook as a table with a
// header row. Short rows are padded so every record matches the header width.
func loadExcel(path string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("failed to open workbook %s", path), err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("workbook %s has no sheets", path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("sheet %s is empty", sheets[0]), nil)
	}

	// excelize trims trailing empty cells per row.
	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		} else if len(row) > width {
			row = row[:width]
		}
		records = append(records, row)
	}

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError(
			fmt.Sprintf("error building dataframe from sheet %s", sheets[0]), df.Err)
	}
	return df, nil
}
