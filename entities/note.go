package entities

import "time"

// Note types.
const (
	NoteIrrigation  = "irrigation"
	NoteDisease     = "disease"
	NoteFertilizer  = "fertilizer"
	NoteObservation = "observation"
	NoteHarvest     = "harvest"
	NoteWeather     = "weather"
	NoteGeneral     = "general"
)

type Note struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	PlantBatchID    string     `gorm:"index" json:"plant_batch_id"`
	NoteType        string     `json:"note_type"`
	Content         string     `json:"content"`
	LinkedEventType string     `json:"linked_event_type,omitempty"`
	LinkedEventID   string     `json:"linked_event_id,omitempty"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	EditedAt        *time.Time `json:"edited_at,omitempty"`
	DeletedAt       *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
