package database

import (
	"log"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karamsafarli/siemens-hackathon/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Field{},
		&entities.PlantType{},
		&entities.PlantBatch{},
		&entities.StatusHistory{},
		&entities.IrrigationEvent{},
		&entities.Note{},
		&entities.ImportJob{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := seedPlantTypes(db); err != nil {
		log.Fatalf("seed plant types: %v", err)
	}

	return db
}

// seedPlantTypes inserts the default catalogue on a fresh database.
func seedPlantTypes(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.PlantType{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	intp := func(v int) *int { return &v }
	defaults := []entities.PlantType{
		{Name: "Tomato", ScientificName: "Solanum lycopersicum", IrrigationFrequencyDays: 2, GrowthDurationDays: intp(80)},
		{Name: "Cucumber", ScientificName: "Cucumis sativus", IrrigationFrequencyDays: 2, GrowthDurationDays: intp(60)},
		{Name: "Wheat", ScientificName: "Triticum aestivum", IrrigationFrequencyDays: 7, GrowthDurationDays: intp(120)},
		{Name: "Potato", ScientificName: "Solanum tuberosum", IrrigationFrequencyDays: 5, GrowthDurationDays: intp(100)},
		{Name: "Pepper", ScientificName: "Capsicum annuum", IrrigationFrequencyDays: 3, GrowthDurationDays: intp(90)},
		{Name: "Apple", ScientificName: "Malus domestica", IrrigationFrequencyDays: 10, GrowthDurationDays: intp(180)},
	}
	now := time.Now()
	for i := range defaults {
		defaults[i].ID = uuid.NewString()
		defaults[i].CreatedAt = now
	}
	return db.Create(&defaults).Error
}
