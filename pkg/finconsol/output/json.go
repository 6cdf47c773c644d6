// Package output renders consolidated reports for people and programs.
package output

import (
	"encoding/json"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.ConsolidatedReport, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// TableToJSON serializes an uploaded table.
func TableToJSON(table *models.UploadedTable, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(table, "", "  ")
	}
	return json.Marshal(table)
}
