package files

import (
	"strings"
	"time"
)

// Encoder renders export rows into the bytes of one output format.
type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

// Importer decodes one input format into rows.
type Importer interface {
	Parse(data []byte) ([]Row, error)
}

// GetEncoder resolves an export format. The mapping is static; there is no
// runtime registration.
func GetEncoder(format string) (Encoder, bool) {
	switch strings.ToLower(format) {
	case "csv":
		return CSVEncoder{}, true
	case "xlsx":
		return XLSXEncoder{}, true
	case "json":
		return JSONEncoder{}, true
	case "yaml":
		return YAMLEncoder{}, true
	}
	return nil, false
}

func GetImporter(format string) (Importer, bool) {
	switch strings.ToLower(format) {
	case "csv":
		return CSVImporter{}, true
	case "xlsx":
		return XLSXImporter{}, true
	case "json":
		return JSONImporter{}, true
	case "yaml":
		return YAMLImporter{}, true
	}
	return nil, false
}

func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "csv":
		return "text/csv"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "json":
		return "application/json"
	case "yaml":
		return "application/x-yaml"
	}
	return "application/octet-stream"
}

const exportDateLayout = "02/01/2006 15:04:05"

// Exports render dates in the reference timezone, not UTC.
var exportLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

func FormatExportDate(t time.Time) string {
	return t.In(exportLocation).Format(exportDateLayout)
}

var exportHeader = []string{"Id", "UserId", "Amount", "Type", "Date"}

func exportRecord(r Row) []string {
	return []string{
		string(r.ID),
		string(r.UserID),
		r.Amount.StringFixed(2),
		string(r.Type),
		FormatExportDate(r.Date),
	}
}
