package files

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Transactions"

type XLSXEncoder struct{}

func (XLSXEncoder) EncodeRows(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, err
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		rec := exportRecord(r)
		vals := make([]any, len(rec))
		for j, v := range rec {
			vals[j] = v
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &vals); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type XLSXImporter struct{}

func (XLSXImporter) Parse(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	recs, err := f.GetRows(sheet)
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
