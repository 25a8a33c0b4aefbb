package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation/repository"
)

type irrigationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IrrigationRepository { return &irrigationRepo{db} }

func (r *irrigationRepo) ListByBatch(batchID string) ([]entities.IrrigationEvent, error) {
	var evs []entities.IrrigationEvent
	err := r.db.Where("plant_batch_id = ?", batchID).
		Order("scheduled_date DESC").Find(&evs).Error
	return evs, err
}

func (r *irrigationRepo) FindByID(id string) (*entities.IrrigationEvent, error) {
	var e entities.IrrigationEvent
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *irrigationRepo) Create(e *entities.IrrigationEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.Create(e).Error
}

func (r *irrigationRepo) Update(e *entities.IrrigationEvent) error {
	return r.db.Save(e).Error
}

func (r *irrigationRepo) SetLastIrrigation(batchID string, executed time.Time) error {
	return r.db.Model(&entities.PlantBatch{}).Where("id = ?", batchID).
		Updates(map[string]any{"last_irrigation_date": executed, "updated_at": time.Now()}).Error
}
