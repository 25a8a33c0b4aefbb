package serviceImp

import (
	"time"

	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/alerts"
	"github.com/karamsafarli/siemens-hackathon/pkg/dashboard/service"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
	plantRepo "github.com/karamsafarli/siemens-hackathon/pkg/plant/repository"
)

type dashboardService struct {
	db     *gorm.DB
	plants plantRepo.PlantRepository
}

func New(db *gorm.DB, plants plantRepo.PlantRepository) service.DashboardService {
	return &dashboardService{db: db, plants: plants}
}

// liveBatches scopes plant_batches to one user's non-deleted fields.
func (s *dashboardService) liveBatches(userID string) *gorm.DB {
	return s.db.Model(&entities.PlantBatch{}).
		Joins("JOIN fields ON fields.id = plant_batches.field_id").
		Where("plant_batches.deleted_at IS NULL AND fields.deleted_at IS NULL AND fields.user_id = ?", userID)
}

func (s *dashboardService) Stats(userID string, asOf time.Time) (*service.Stats, error) {
	var stats service.Stats

	var total int64
	if err := s.liveBatches(userID).Count(&total).Error; err != nil {
		return nil, err
	}
	stats.TotalPlants = int(total)

	if err := s.liveBatches(userID).
		Select("plant_batches.current_status, COUNT(*) AS count").
		Group("plant_batches.current_status").
		Scan(&stats.PlantsByStatus).Error; err != nil {
		return nil, err
	}

	if err := s.liveBatches(userID).
		Select("plant_batches.field_id, fields.name AS field_name, COUNT(*) AS count").
		Group("plant_batches.field_id, fields.name").
		Scan(&stats.PlantsByField).Error; err != nil {
		return nil, err
	}

	batches, err := s.plants.ListForIrrigation(userID)
	if err != nil {
		return nil, err
	}
	counts, err := irrigation.DashboardCounts(batches, asOf)
	if err != nil {
		return nil, err
	}
	stats.Irrigation = counts

	var problems int64
	if err := s.liveBatches(userID).
		Where("plant_batches.current_status <> ?", entities.StatusHealthy).
		Count(&problems).Error; err != nil {
		return nil, err
	}
	stats.ProblemPlants = int(problems)

	var recentNotes int64
	if err := s.db.Model(&entities.Note{}).
		Joins("JOIN plant_batches ON plant_batches.id = notes.plant_batch_id").
		Joins("JOIN fields ON fields.id = plant_batches.field_id").
		Where("notes.deleted_at IS NULL AND notes.created_at >= ? AND fields.user_id = ?",
			asOf.AddDate(0, 0, -7), userID).
		Count(&recentNotes).Error; err != nil {
		return nil, err
	}
	stats.RecentActivity.NotesLast7Days = int(recentNotes)

	return &stats, nil
}

func (s *dashboardService) Alerts(userID string, asOf time.Time) ([]alerts.Alert, error) {
	batches, err := s.plants.ListForIrrigation(userID)
	if err != nil {
		return nil, err
	}
	return alerts.Build(batches, asOf, nil, alerts.DefaultLimit)
}
