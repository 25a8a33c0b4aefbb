package service

import (
	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/importer"
)

type ImportService interface {
	Run(userID, filename string, records []importer.Record) (*importer.Summary, error)
	ListJobs(userID string) ([]entities.ImportJob, error)
	FindJob(id string) (*entities.ImportJob, error)
}
