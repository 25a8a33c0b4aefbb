package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
	"github.com/karamsafarli/siemens-hackathon/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) ListTypes() ([]entities.PlantType, error) {
	var types []entities.PlantType
	if err := r.db.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *plantRepo) FindTypeByName(name string) (*entities.PlantType, error) {
	var t entities.PlantType
	if err := r.db.Where("name = ?", name).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *plantRepo) CreateType(t *entities.PlantType) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.Create(t).Error
}

func (r *plantRepo) ListBatches(f repository.BatchFilter) ([]entities.PlantBatch, error) {
	q := r.db.Preload("Field").Preload("PlantType").
		Where("plant_batches.deleted_at IS NULL")
	if f.FieldID != "" {
		q = q.Where("plant_batches.field_id = ?", f.FieldID)
	}
	if f.PlantTypeID != "" {
		q = q.Where("plant_batches.plant_type_id = ?", f.PlantTypeID)
	}
	if f.Status != "" {
		q = q.Where("plant_batches.current_status = ?", f.Status)
	}
	if f.UserID != "" {
		q = q.Joins("JOIN fields ON fields.id = plant_batches.field_id").
			Where("fields.user_id = ? AND fields.deleted_at IS NULL", f.UserID)
	}
	var batches []entities.PlantBatch
	if err := q.Order("plant_batches.created_at DESC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *plantRepo) FindBatch(id string) (*entities.PlantBatch, error) {
	var b entities.PlantBatch
	err := r.db.Preload("Field").Preload("PlantType").
		Where("id = ? AND deleted_at IS NULL", id).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *plantRepo) FindBatchByName(fieldID, name string) (*entities.PlantBatch, error) {
	var b entities.PlantBatch
	err := r.db.Where("field_id = ? AND batch_name = ? AND deleted_at IS NULL", fieldID, name).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *plantRepo) CreateBatch(b *entities.PlantBatch) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CurrentStatus == "" {
		b.CurrentStatus = entities.StatusHealthy
	}
	return r.db.Create(b).Error
}

func (r *plantRepo) UpdateBatch(b *entities.PlantBatch) error {
	b.UpdatedAt = time.Now()
	return r.db.Omit("Field", "PlantType").Save(b).Error
}

func (r *plantRepo) SoftDeleteBatch(id string) error {
	now := time.Now()
	return r.db.Model(&entities.PlantBatch{}).Where("id = ?", id).
		Updates(map[string]any{"deleted_at": &now, "updated_at": now}).Error
}

func (r *plantRepo) AddStatusHistory(h *entities.StatusHistory) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now()
	}
	return r.db.Create(h).Error
}

func (r *plantRepo) RecentHistory(batchID string, limit int) ([]entities.StatusHistory, error) {
	var hs []entities.StatusHistory
	err := r.db.Where("plant_batch_id = ?", batchID).
		Order("changed_at DESC").Limit(limit).Find(&hs).Error
	return hs, err
}

func (r *plantRepo) RecentEvents(batchID string, limit int) ([]entities.IrrigationEvent, error) {
	var evs []entities.IrrigationEvent
	err := r.db.Where("plant_batch_id = ?", batchID).
		Order("scheduled_date DESC").Limit(limit).Find(&evs).Error
	return evs, err
}

func (r *plantRepo) RecentNotes(batchID string, limit int) ([]entities.Note, error) {
	var ns []entities.Note
	err := r.db.Where("plant_batch_id = ? AND deleted_at IS NULL", batchID).
		Order("created_at DESC").Limit(limit).Find(&ns).Error
	return ns, err
}

func (r *plantRepo) ListForIrrigation(userID string) ([]irrigation.Batch, error) {
	var rows []struct {
		ID                      string
		BatchName               string
		FieldName               string
		CurrentStatus           string
		LastIrrigationDate      *time.Time
		IrrigationFrequencyDays int
	}
	err := r.db.Table("plant_batches").
		Select("plant_batches.id, plant_batches.batch_name, fields.name AS field_name, plant_batches.current_status, plant_batches.last_irrigation_date, plant_types.irrigation_frequency_days").
		Joins("JOIN fields ON fields.id = plant_batches.field_id").
		Joins("JOIN plant_types ON plant_types.id = plant_batches.plant_type_id").
		Where("plant_batches.deleted_at IS NULL AND fields.deleted_at IS NULL AND fields.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]irrigation.Batch, 0, len(rows))
	for _, row := range rows {
		out = append(out, irrigation.Batch{
			ID:             row.ID,
			BatchName:      row.BatchName,
			FieldName:      row.FieldName,
			CurrentStatus:  row.CurrentStatus,
			LastIrrigation: row.LastIrrigationDate,
			FrequencyDays:  row.IrrigationFrequencyDays,
		})
	}
	return out, nil
}
