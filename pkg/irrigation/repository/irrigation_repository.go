package repository

import (
	"time"

	"github.com/karamsafarli/siemens-hackathon/entities"
)

type IrrigationRepository interface {
	ListByBatch(batchID string) ([]entities.IrrigationEvent, error)
	FindByID(id string) (*entities.IrrigationEvent, error)
	Create(e *entities.IrrigationEvent) error
	Update(e *entities.IrrigationEvent) error

	// SetLastIrrigation records a completed watering on the batch so the
	// engine's next read reflects it.
	SetLastIrrigation(batchID string, executed time.Time) error
}
