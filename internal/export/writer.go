// Package export serializes diff records as CSV reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"gtmdiff/internal/compare"
)

// header is the fixed column order of a diff report
var header = []string{
	"entity_type",
	"entity_name",
	"field_path",
	"value_a",
	"value_b",
	"label_a",
	"label_b",
	"change_type",
}

// WriteCSV writes records to w as CSV, header first, one row per record,
// preserving record order. Values are written verbatim.
func WriteCSV(w io.Writer, records []compare.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			string(rec.Category),
			rec.EntityKey,
			rec.FieldPath,
			rec.ValueA,
			rec.ValueB,
			rec.LabelA,
			rec.LabelB,
			string(rec.Kind),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to a CSV file at path.
func WriteCSVFile(path string, records []compare.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
