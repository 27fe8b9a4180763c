package files

import (
	"encoding/json"
	"fmt"
)

type rowJSON struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id"`
	Amount string `json:"amount"` // "123.45"
	Type   string `json:"type"`   // Deposit | Withdrawal | Purchase
	Date   string `json:"date"`
}

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]rowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowJSON{
			ID:     string(r.ID),
			UserID: string(r.UserID),
			Amount: r.Amount.StringFixed(2),
			Type:   string(r.Type),
			Date:   FormatExportDate(r.Date),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

type JSONImporter struct{}

func (JSONImporter) Parse(data []byte) ([]Row, error) {
	var in []rowJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	out := make([]Row, 0, len(in))
	for i, r := range in {
		row, err := parseRowFields([]string{r.UserID, r.Amount, r.Type, r.Date}, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
