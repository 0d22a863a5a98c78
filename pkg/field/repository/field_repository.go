package repository

import "github.com/solvarsaurus/agriculture-programs/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	CreateBatch(fs []entities.Field) error
	FindByID(id uint, uid string) (*entities.Field, error)
	ListByUser(uid string) ([]entities.Field, error)
}
