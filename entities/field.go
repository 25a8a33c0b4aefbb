package entities

import "time"

type Field struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	UserID       string     `gorm:"index" json:"user_id"`
	Name         string     `json:"name"`
	Location     string     `json:"location,omitempty"`
	SizeHectares *float64   `json:"size_hectares,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	ArchivedAt   *time.Time `json:"archived_at,omitempty"`

	// Not persisted: filled by the list endpoint.
	PlantCount int `gorm:"-" json:"plant_count"`
}
