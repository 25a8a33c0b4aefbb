package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/importer"
	"github.com/karamsafarli/siemens-hackathon/pkg/importer/service"
)

const defaultFrequencyDays = 7

type importService struct{ db *gorm.DB }

func New(db *gorm.DB) service.ImportService { return &importService{db: db} }

// Run processes records one by one, tallying successes and failures into a
// persisted import job. A bad record never aborts the whole import.
func (s *importService) Run(userID, filename string, records []importer.Record) (*importer.Summary, error) {
	job := entities.ImportJob{
		ID:           uuid.NewString(),
		Filename:     filename,
		Status:       "processing",
		TotalRecords: len(records),
		CreatedBy:    userID,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}

	var recErrors []importer.RecordError
	success := 0
	for i, rec := range records {
		if err := s.apply(userID, rec); err != nil {
			recErrors = append(recErrors, importer.RecordError{
				RecordIndex: i,
				Error:       fmt.Sprintf("Record %d: %v", i+1, err),
			})
			continue
		}
		success++
	}

	job.Status = "completed"
	if len(recErrors) > 0 {
		job.Status = "completed_with_errors"
	}
	now := time.Now()
	job.SuccessfulRecords = success
	job.FailedRecords = len(recErrors)
	job.CompletedAt = &now
	for _, e := range recErrors {
		job.ErrorLog = append(job.ErrorLog, e.Error)
	}
	if err := s.db.Save(&job).Error; err != nil {
		return nil, err
	}

	shown := recErrors
	if len(shown) > 10 {
		shown = shown[:10]
	}
	return &importer.Summary{
		ImportJobID:       job.ID,
		TotalRecords:      len(records),
		SuccessfulRecords: success,
		FailedRecords:     len(recErrors),
		Errors:            shown,
	}, nil
}

func (s *importService) apply(userID string, rec importer.Record) error {
	if rec.Date == "" || rec.FieldName == "" || rec.EventType == "" {
		return fmt.Errorf("missing required fields (date, field_name, event_type)")
	}
	date, err := time.ParseInLocation("2006-01-02", rec.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q", rec.Date)
	}

	field, err := s.findOrCreateField(userID, rec.FieldName)
	if err != nil {
		return err
	}

	var batch *entities.PlantBatch
	if rec.PlantName != "" || rec.PlantType != "" {
		batch, err = s.findOrCreateBatch(field.ID, rec, date)
		if err != nil {
			return err
		}
	}

	switch rec.EventType {
	case "irrigation":
		if batch == nil {
			return nil
		}
		return s.applyIrrigation(userID, batch, rec, date)
	case "observation", "problem":
		if batch == nil {
			return nil
		}
		noteType := entities.NoteObservation
		if rec.EventType == "problem" {
			noteType = entities.NoteDisease
		}
		content := rec.Note
		if content == "" {
			content = "Imported observation"
		}
		return s.db.Create(&entities.Note{
			ID:           uuid.NewString(),
			PlantBatchID: batch.ID,
			NoteType:     noteType,
			Content:      content,
			CreatedBy:    userID,
			CreatedAt:    date,
		}).Error
	case "status_change":
		if batch == nil || rec.Status == "" || batch.CurrentStatus == rec.Status {
			return nil
		}
		return s.applyStatusChange(userID, batch, rec, date)
	default:
		return fmt.Errorf("unknown event_type %q", rec.EventType)
	}
}

func (s *importService) findOrCreateField(userID, name string) (*entities.Field, error) {
	var field entities.Field
	err := s.db.Where("user_id = ? AND name = ? AND deleted_at IS NULL", userID, name).
		First(&field).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		field = entities.Field{ID: uuid.NewString(), UserID: userID, Name: name}
		err = s.db.Create(&field).Error
	}
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *importService) findOrCreateBatch(fieldID string, rec importer.Record, date time.Time) (*entities.PlantBatch, error) {
	typeName := rec.PlantType
	if typeName == "" {
		typeName = "Unknown"
	}
	var pt entities.PlantType
	err := s.db.Where("name = ?", typeName).First(&pt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pt = entities.PlantType{
			ID:                      uuid.NewString(),
			Name:                    typeName,
			IrrigationFrequencyDays: defaultFrequencyDays,
		}
		err = s.db.Create(&pt).Error
	}
	if err != nil {
		return nil, err
	}

	batchName := rec.PlantName
	if batchName == "" {
		batchName = rec.PlantType + " Batch"
	}
	var batch entities.PlantBatch
	err = s.db.Where("field_id = ? AND batch_name = ? AND plant_type_id = ? AND deleted_at IS NULL",
		fieldID, batchName, pt.ID).First(&batch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		batch = entities.PlantBatch{
			ID:            uuid.NewString(),
			FieldID:       fieldID,
			PlantTypeID:   pt.ID,
			BatchName:     batchName,
			PlantingDate:  date,
			CurrentStatus: entities.StatusHealthy,
		}
		err = s.db.Create(&batch).Error
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (s *importService) applyIrrigation(userID string, batch *entities.PlantBatch, rec importer.Record, date time.Time) error {
	var existing entities.IrrigationEvent
	err := s.db.Where("plant_batch_id = ? AND scheduled_date = ?", batch.ID, date).
		First(&existing).Error
	if err == nil {
		return fmt.Errorf("duplicate irrigation event for %s on %s", batch.BatchName, rec.Date)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	event := entities.IrrigationEvent{
		ID:            uuid.NewString(),
		PlantBatchID:  batch.ID,
		ScheduledDate: date,
		ExecutedDate:  &date,
		Status:        entities.IrrigationCompleted,
		Method:        "imported",
		Notes:         rec.Note,
		CreatedBy:     userID,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return err
	}
	return s.db.Model(&entities.PlantBatch{}).Where("id = ?", batch.ID).
		Update("last_irrigation_date", date).Error
}

func (s *importService) applyStatusChange(userID string, batch *entities.PlantBatch, rec importer.Record, date time.Time) error {
	previous := batch.CurrentStatus
	if err := s.db.Model(&entities.PlantBatch{}).Where("id = ?", batch.ID).
		Update("current_status", rec.Status).Error; err != nil {
		return err
	}
	reason := rec.Note
	if reason == "" {
		reason = "Imported status change"
	}
	return s.db.Create(&entities.StatusHistory{
		ID:             uuid.NewString(),
		PlantBatchID:   batch.ID,
		Status:         rec.Status,
		PreviousStatus: previous,
		ChangedBy:      userID,
		Reason:         reason,
		ChangedAt:      date,
	}).Error
}

func (s *importService) ListJobs(userID string) ([]entities.ImportJob, error) {
	q := s.db.Order("created_at DESC")
	if userID != "" {
		q = q.Where("created_by = ?", userID)
	}
	var jobs []entities.ImportJob
	err := q.Find(&jobs).Error
	return jobs, err
}

func (s *importService) FindJob(id string) (*entities.ImportJob, error) {
	var job entities.ImportJob
	if err := s.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
