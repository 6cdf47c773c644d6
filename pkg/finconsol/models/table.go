package models

import "time"

// UploadedTable is one user-uploaded, user-tagged table.
type UploadedTable struct {
	// ID is generated per upload, not derived from content.
	ID string `json:"id"`
	// SourceFileName is the original file name (display only).
	SourceFileName string `json:"source_file_name"`
	// CompanyName is the user-supplied company label.
	CompanyName string `json:"company_name"`
	// ReportType determines which consolidated output the rows feed.
	ReportType ReportType `json:"report_type"`
	// UploadTime is the ingestion timestamp (display only).
	UploadTime time.Time `json:"upload_time"`
	// Rows holds data rows in original sheet order.
	Rows []Row `json:"rows"`
}
