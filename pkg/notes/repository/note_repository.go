package repository

import "github.com/karamsafarli/siemens-hackathon/entities"

type NoteRepository interface {
	List(batchID, noteType string) ([]entities.Note, error)
	FindByID(id string) (*entities.Note, error)
	Create(n *entities.Note) error
	Update(n *entities.Note) error
	SoftDelete(id string) error
}
