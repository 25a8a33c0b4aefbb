package repository

import (
	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
)

type BatchFilter struct {
	UserID      string
	FieldID     string
	PlantTypeID string
	Status      string
}

type PlantRepository interface {
	ListTypes() ([]entities.PlantType, error)
	FindTypeByName(name string) (*entities.PlantType, error)
	CreateType(t *entities.PlantType) error

	ListBatches(f BatchFilter) ([]entities.PlantBatch, error)
	FindBatch(id string) (*entities.PlantBatch, error)
	FindBatchByName(fieldID, name string) (*entities.PlantBatch, error)
	CreateBatch(b *entities.PlantBatch) error
	UpdateBatch(b *entities.PlantBatch) error
	SoftDeleteBatch(id string) error

	AddStatusHistory(h *entities.StatusHistory) error
	RecentHistory(batchID string, limit int) ([]entities.StatusHistory, error)
	RecentEvents(batchID string, limit int) ([]entities.IrrigationEvent, error)
	RecentNotes(batchID string, limit int) ([]entities.Note, error)

	// ListForIrrigation returns the read-only projection the irrigation
	// engine and alert builder consume, scoped to one user's live
	// fields/batches.
	ListForIrrigation(userID string) ([]irrigation.Batch, error)
}
