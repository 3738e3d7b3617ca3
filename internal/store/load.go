// Package store moves series and analysis results across the process
// boundary: CSV series input, JSON/CSV result output. The analysis packages
// themselves never touch files.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/takens/internal/series"
)

// LoadCSV reads a scalar series from one column of a CSV file. Set header
// to skip the first row. Blank lines are skipped by the CSV reader; a
// non-numeric cell is an error naming the offending row.
func LoadCSV(path string, column int, header bool) (series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if header && len(records) > 0 {
		records = records[1:]
	}

	s := make(series.Series, 0, len(records))
	for i, rec := range records {
		if column >= len(rec) {
			return nil, fmt.Errorf("row %d of %s has %d columns, need column %d", i+1, path, len(rec), column)
		}
		v, err := strconv.ParseFloat(rec[column], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, path, err)
		}
		s = append(s, v)
	}
	return s, nil
}

// SaveCSV writes a series as a single-column CSV, one sample per row.
func SaveCSV(path string, s series.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	for _, v := range s {
		if err := w.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	return nil
}
