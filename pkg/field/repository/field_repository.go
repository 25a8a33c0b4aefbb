package repository

import "github.com/karamsafarli/siemens-hackathon/entities"

type FieldRepository interface {
	ListByUser(userID string) ([]entities.Field, error)
	FindByID(id string) (*entities.Field, error)
	Create(f *entities.Field) error
	Update(f *entities.Field) error
	SoftDelete(id string) error
}
