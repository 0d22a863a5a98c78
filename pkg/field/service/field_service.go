package service

import (
	"errors"
	"io"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

var ErrNotFound = errors.New("field not found")

type FieldService interface {
	CreateField(f *entities.Field) (*entities.Field, error)
	GetFieldByID(id uint, uid string) (*entities.Field, error)
	ListFields(uid string) ([]entities.Field, error)
	ImportFields(uid, filename string, r io.Reader) ([]entities.Field, error)
	ContainsPoint(f *entities.Field, p entities.Point) bool
	// SaveBoundaries writes the boundary record to the configured directory and returns its path.
	SaveBoundaries(f *entities.Field) (string, error)
}
