package entities

import "time"

// Irrigation event statuses.
const (
	IrrigationPlanned   = "planned"
	IrrigationCompleted = "completed"
	IrrigationSkipped   = "skipped"
)

type IrrigationEvent struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	PlantBatchID      string     `gorm:"index" json:"plant_batch_id"`
	ScheduledDate     time.Time  `json:"scheduled_date"`
	ExecutedDate      *time.Time `json:"executed_date,omitempty"`
	Status            string     `gorm:"default:planned" json:"status"`
	WaterAmountLiters *float64   `json:"water_amount_liters,omitempty"`
	Method            string     `json:"method,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedBy         string     `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
}
