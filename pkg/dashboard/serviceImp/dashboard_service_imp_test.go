package serviceImp

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/alerts"
	plantRepoImp "github.com/karamsafarli/siemens-hackathon/pkg/plant/repositoryImp"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Field{},
		&entities.PlantType{},
		&entities.PlantBatch{},
		&entities.Note{},
	))
	return db
}

func seedFarm(t *testing.T, db *gorm.DB, asOf time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Field{ID: "f1", UserID: "user-1", Name: "North"}).Error)
	require.NoError(t, db.Create(&entities.Field{ID: "f2", UserID: "user-1", Name: "South"}).Error)
	require.NoError(t, db.Create(&entities.PlantType{ID: "t1", Name: "Tomato", IrrigationFrequencyDays: 2}).Error)

	last := asOf.AddDate(0, 0, -1) // due tomorrow, on time
	old := asOf.AddDate(0, 0, -6)  // 4 days overdue, critical
	batches := []entities.PlantBatch{
		{ID: "b1", FieldID: "f1", PlantTypeID: "t1", BatchName: "Tomatoes A",
			CurrentStatus: entities.StatusHealthy, LastIrrigationDate: &last},
		{ID: "b2", FieldID: "f1", PlantTypeID: "t1", BatchName: "Tomatoes B",
			CurrentStatus: entities.StatusAtRisk, LastIrrigationDate: &old},
		{ID: "b3", FieldID: "f2", PlantTypeID: "t1", BatchName: "Tomatoes C",
			CurrentStatus: entities.StatusHealthy}, // never irrigated
	}
	for i := range batches {
		require.NoError(t, db.Create(&batches[i]).Error)
	}

	// A batch owned by somebody else must never leak into user-1's stats.
	require.NoError(t, db.Create(&entities.Field{ID: "f9", UserID: "user-2", Name: "Elsewhere"}).Error)
	require.NoError(t, db.Create(&entities.PlantBatch{
		ID: "b9", FieldID: "f9", PlantTypeID: "t1", BatchName: "Other",
		CurrentStatus: entities.StatusCritical,
	}).Error)
}

func TestStats(t *testing.T) {
	db := testDB(t)
	asOf := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	seedFarm(t, db, asOf)

	require.NoError(t, db.Create(&entities.Note{
		ID: "n1", PlantBatchID: "b1", NoteType: entities.NoteObservation,
		Content: "looking good", CreatedBy: "user-1", CreatedAt: asOf.AddDate(0, 0, -2),
	}).Error)
	require.NoError(t, db.Create(&entities.Note{
		ID: "n2", PlantBatchID: "b1", NoteType: entities.NoteObservation,
		Content: "old note", CreatedBy: "user-1", CreatedAt: asOf.AddDate(0, 0, -30),
	}).Error)

	svc := New(db, plantRepoImp.New(db))
	stats, err := svc.Stats("user-1", asOf)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalPlants)
	assert.Equal(t, 1, stats.ProblemPlants)
	assert.Equal(t, 1, stats.RecentActivity.NotesLast7Days)

	byStatus := map[string]int{}
	for _, s := range stats.PlantsByStatus {
		byStatus[s.CurrentStatus] = s.Count
	}
	assert.Equal(t, map[string]int{entities.StatusHealthy: 2, entities.StatusAtRisk: 1}, byStatus)

	byField := map[string]int{}
	for _, f := range stats.PlantsByField {
		byField[f.FieldName] = f.Count
	}
	assert.Equal(t, map[string]int{"North": 2, "South": 1}, byField)

	// b2 is 4 days overdue, b3 has never been irrigated: both critical.
	assert.Equal(t, 0, stats.Irrigation.Overdue)
	assert.Equal(t, 2, stats.Irrigation.Critical)
	assert.Equal(t, 2, stats.Irrigation.TotalOverdue)
}

func TestAlerts(t *testing.T) {
	db := testDB(t)
	asOf := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	seedFarm(t, db, asOf)

	svc := New(db, plantRepoImp.New(db))
	out, err := svc.Alerts("user-1", asOf)
	require.NoError(t, err)

	// b2: critical irrigation + warning status; b3: never irrigated.
	require.Len(t, out, 3)
	for _, a := range out {
		assert.NotEqual(t, "b9", a.PlantBatchID)
	}
	assert.Equal(t, alerts.SeverityCritical, out[0].Severity)
	assert.Equal(t, alerts.SeverityCritical, out[1].Severity)
	assert.Equal(t, alerts.SeverityWarning, out[2].Severity)
	assert.Equal(t, "status", out[2].Type)
	assert.Equal(t, "b2", out[2].PlantBatchID)
}

func TestStatsExcludesDeleted(t *testing.T) {
	db := testDB(t)
	asOf := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	seedFarm(t, db, asOf)

	now := time.Now()
	require.NoError(t, db.Model(&entities.PlantBatch{}).Where("id = ?", "b1").
		Update("deleted_at", &now).Error)

	svc := New(db, plantRepoImp.New(db))
	stats, err := svc.Stats("user-1", asOf)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPlants)
}
