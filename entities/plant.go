package entities

import "time"

// Plant batch statuses. The exact strings are part of the API contract.
const (
	StatusHealthy   = "healthy"
	StatusAtRisk    = "at_risk"
	StatusCritical  = "critical"
	StatusDiseased  = "diseased"
	StatusHarvested = "harvested"
)

type PlantType struct {
	ID                      string    `gorm:"primaryKey" json:"id"`
	Name                    string    `json:"name"`
	ScientificName          string    `json:"scientific_name,omitempty"`
	IrrigationFrequencyDays int       `json:"irrigation_frequency_days"`
	GrowthDurationDays      *int      `json:"growth_duration_days,omitempty"`
	OptimalTemperatureMin   *float64  `json:"optimal_temperature_min,omitempty"`
	OptimalTemperatureMax   *float64  `json:"optimal_temperature_max,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

type PlantBatch struct {
	ID                 string     `gorm:"primaryKey" json:"id"`
	FieldID            string     `gorm:"index" json:"field_id"`
	PlantTypeID        string     `gorm:"index" json:"plant_type_id"`
	BatchName          string     `json:"batch_name"`
	PlantingDate       time.Time  `json:"planting_date"`
	Quantity           *int       `json:"quantity,omitempty"`
	CurrentStatus      string     `gorm:"default:healthy" json:"current_status"`
	LastIrrigationDate *time.Time `json:"last_irrigation_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `gorm:"index" json:"deleted_at,omitempty"`

	Field     *Field     `gorm:"foreignKey:FieldID" json:"field,omitempty"`
	PlantType *PlantType `gorm:"foreignKey:PlantTypeID" json:"plant_type,omitempty"`
}

type StatusHistory struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	PlantBatchID   string    `gorm:"index" json:"plant_batch_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	ChangedAt      time.Time `json:"changed_at"`
	ChangedBy      string    `json:"changed_by"`
	Reason         string    `json:"reason,omitempty"`
	Severity       string    `json:"severity,omitempty"`
}
