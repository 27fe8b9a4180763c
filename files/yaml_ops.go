package files

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type rowYAML struct {
	ID     string `yaml:"id,omitempty"`
	UserID string `yaml:"user_id"`
	Amount string `yaml:"amount"`
	Type   string `yaml:"type"`
	Date   string `yaml:"date"`
}

type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]rowYAML, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowYAML{
			ID:     string(r.ID),
			UserID: string(r.UserID),
			Amount: r.Amount.StringFixed(2),
			Type:   string(r.Type),
			Date:   FormatExportDate(r.Date),
		})
	}
	return yaml.Marshal(out)
}

type YAMLImporter struct{}

func (YAMLImporter) Parse(data []byte) ([]Row, error) {
	var in []rowYAML
	if err := yaml.Unmarshal(data, &in); err != nil {
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
