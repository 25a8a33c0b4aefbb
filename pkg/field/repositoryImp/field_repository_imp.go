package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) ListByUser(userID string) ([]entities.Field, error) {
	var fields []entities.Field
	err := r.db.
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at DESC").
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	for i := range fields {
		var n int64
		if err := r.db.Model(&entities.PlantBatch{}).
			Where("field_id = ? AND deleted_at IS NULL", fields[i].ID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		fields[i].PlantCount = int(n)
	}
	return fields, nil
}

func (r *fieldRepo) FindByID(id string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) Create(f *entities.Field) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return r.db.Create(f).Error
}

func (r *fieldRepo) Update(f *entities.Field) error {
	f.UpdatedAt = time.Now()
	return r.db.Save(f).Error
}

func (r *fieldRepo) SoftDelete(id string) error {
	now := time.Now()
	return r.db.Model(&entities.Field{}).Where("id = ?", id).
		Updates(map[string]any{"deleted_at": &now, "updated_at": now}).Error
}
