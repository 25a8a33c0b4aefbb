package repository

import "github.com/karamsafarli/siemens-hackathon/entities"

type UserRepository interface {
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
}
