package cardpress

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Record is one row of the external data source: column name to value.
// Records are supplied per card and are not owned by the engine.
type Record map[string]string

// ReadRecords parses CSV data into records. The first row names the
// columns; every following row becomes one Record. Short rows leave the
// missing columns empty.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cardpress: reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cardpress: reading CSV row %d: %w", len(records)+2, err)
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
