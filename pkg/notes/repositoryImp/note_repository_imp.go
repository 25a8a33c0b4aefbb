package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/notes/repository"
)

type noteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NoteRepository { return &noteRepo{db} }

func (r *noteRepo) List(batchID, noteType string) ([]entities.Note, error) {
	q := r.db.Where("deleted_at IS NULL")
	if batchID != "" {
		q = q.Where("plant_batch_id = ?", batchID)
	}
	if noteType != "" {
		q = q.Where("note_type = ?", noteType)
	}
	var notes []entities.Note
	err := q.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *noteRepo) FindByID(id string) (*entities.Note, error) {
	var n entities.Note
	if err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) Create(n *entities.Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.Create(n).Error
}

func (r *noteRepo) Update(n *entities.Note) error {
	now := time.Now()
	n.EditedAt = &now
	return r.db.Save(n).Error
}

func (r *noteRepo) SoftDelete(id string) error {
	now := time.Now()
	return r.db.Model(&entities.Note{}).Where("id = ?", id).
		Update("deleted_at", &now).Error
}
