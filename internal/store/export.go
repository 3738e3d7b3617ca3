package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/takens/internal/embed"
	"github.com/san-kum/takens/internal/fractal"
)

// Report is the JSON shape of a full analysis run.
type Report struct {
	Source       string                      `json:"source"`
	SeriesLength int                         `json:"series_length"`
	Dimension    int                         `json:"dimension"`
	Delay        int                         `json:"delay"`
	PointCount   int                         `json:"point_count"`
	CorrDim      float64                     `json:"correlation_dimension"`
	Curve        []fractal.RadiusCorrelation `json:"curve,omitempty"`
	Points       [][]float64                 `json:"points,omitempty"`
}

// WriteReportJSON encodes the report with indentation to w.
func WriteReportJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// ExportReportJSON writes the report to a file, or to stdout when path is
// empty.
func ExportReportJSON(path string, rep *Report) error {
	if path == "" {
		return WriteReportJSON(os.Stdout, rep)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteReportJSON(f, rep)
}

// ExportPointsCSV writes embedded vectors as CSV rows, one vector per row.
func ExportPointsCSV(path string, points []embed.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	row := make([]string, 0, 8)
	for _, p := range points {
		row = row[:0]
		for _, v := range p {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// PointsToRows converts a vector set for the Report.Points field.
func PointsToRows(points []embed.Point) [][]float64 {
	rows := make([][]float64, len(points))
	for i, p := range points {
		rows[i] = p
	}
	return rows
}
