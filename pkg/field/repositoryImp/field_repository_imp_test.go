package repositoryImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karamsafarli/siemens-hackathon/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Field{}, &entities.PlantBatch{}))
	return db
}

func TestFieldCRUD(t *testing.T) {
	repo := New(testDB(t))

	f := &entities.Field{UserID: "user-1", Name: "North", Location: "hillside"}
	require.NoError(t, repo.Create(f))
	require.NotEmpty(t, f.ID)

	got, err := repo.FindByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "North", got.Name)
	assert.Equal(t, "hillside", got.Location)

	got.Name = "North Slope"
	require.NoError(t, repo.Update(got))
	got, err = repo.FindByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "North Slope", got.Name)

	require.NoError(t, repo.SoftDelete(f.ID))
	_, err = repo.FindByID(f.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListByUserWithPlantCounts(t *testing.T) {
	db := testDB(t)
	repo := New(db)

	f1 := &entities.Field{ID: "f1", UserID: "user-1", Name: "North"}
	f2 := &entities.Field{ID: "f2", UserID: "user-1", Name: "South"}
	other := &entities.Field{ID: "f9", UserID: "user-2", Name: "Elsewhere"}
	for _, f := range []*entities.Field{f1, f2, other} {
		require.NoError(t, repo.Create(f))
	}

	require.NoError(t, db.Create(&entities.PlantBatch{ID: "b1", FieldID: "f1", BatchName: "A"}).Error)
	require.NoError(t, db.Create(&entities.PlantBatch{ID: "b2", FieldID: "f1", BatchName: "B"}).Error)

	fields, err := repo.ListByUser("user-1")
	require.NoError(t, err)
	require.Len(t, fields, 2)

	counts := map[string]int{}
	for _, f := range fields {
		counts[f.ID] = f.PlantCount
	}
	assert.Equal(t, map[string]int{"f1": 2, "f2": 0}, counts)
}

func TestListByUserSkipsDeletedBatches(t *testing.T) {
	db := testDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(&entities.Field{ID: "f1", UserID: "user-1", Name: "North"}))
	require.NoError(t, db.Create(&entities.PlantBatch{ID: "b1", FieldID: "f1", BatchName: "A"}).Error)
	require.NoError(t, db.Exec("UPDATE plant_batches SET deleted_at = CURRENT_TIMESTAMP WHERE id = 'b1'").Error)

	fields, err := repo.ListByUser("user-1")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, 0, fields[0].PlantCount)
}
