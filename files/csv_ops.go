package files

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

type CSVEncoder struct{}

func (CSVEncoder) EncodeRows(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(exportRecord(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type CSVImporter struct{}

// Parse expects a header row followed by records in column order
// userId, amount, type, date.
func (CSVImporter) Parse(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	if len(recs) <= 1 {
		return nil, nil
	}

	out := make([]Row, 0, len(recs)-1)
	for i := 1; i < len(recs); i++ {
		row, err := parseRowFields(recs[i], i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
