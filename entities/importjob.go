package entities

import "time"

type ImportJob struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	Filename          string     `json:"filename,omitempty"`
	Status            string     `json:"status"`
	TotalRecords      int        `json:"total_records"`
	SuccessfulRecords int        `json:"successful_records"`
	FailedRecords     int        `json:"failed_records"`
	ErrorLog          []string   `gorm:"serializer:json" json:"error_log,omitempty"`
	CreatedBy         string     `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}
