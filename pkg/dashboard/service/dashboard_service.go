package service

import (
	"time"

	"github.com/karamsafarli/siemens-hackathon/pkg/alerts"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
)

type StatusCount struct {
	CurrentStatus string `json:"current_status"`
	Count         int    `json:"count"`
}

type FieldCount struct {
	FieldID   string `json:"field_id"`
	FieldName string `json:"field_name"`
	Count     int    `json:"count"`
}

type Stats struct {
	TotalPlants    int               `json:"total_plants"`
	PlantsByStatus []StatusCount     `json:"plants_by_status"`
	PlantsByField  []FieldCount      `json:"plants_by_field"`
	Irrigation     irrigation.Counts `json:"irrigation"`
	ProblemPlants  int               `json:"problem_plants"`
	RecentActivity struct {
		NotesLast7Days int `json:"notes_last_7_days"`
	} `json:"recent_activity"`
}

type DashboardService interface {
	Stats(userID string, asOf time.Time) (*Stats, error)
	Alerts(userID string, asOf time.Time) ([]alerts.Alert, error)
}
