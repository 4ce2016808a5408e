package models

import "time"

// ExportArchive describes a CSV export uploaded to object storage
type ExportArchive struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportArchiveResponse wraps an archive for the transport layer
type ExportArchiveResponse struct {
	Success bool          `json:"success"`
	Data    ExportArchive `json:"data"`
}
