package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/field"
	"github.com/solvarsaurus/agriculture-programs/pkg/field/importer"
	repo "github.com/solvarsaurus/agriculture-programs/pkg/field/repository"
	"github.com/solvarsaurus/agriculture-programs/pkg/field/service"
)

type fieldSvc struct {
	r   repo.FieldRepository
	dir string
}

func NewFieldService(r repo.FieldRepository, boundaryDir string) service.FieldService {
	return &fieldSvc{r: r, dir: boundaryDir}
}

func (s *fieldSvc) CreateField(f *entities.Field) (*entities.Field, error) {
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) GetFieldByID(id uint, uid string) (*entities.Field, error) {
	f, err := s.r.FindByID(id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	return f, err
}

func (s *fieldSvc) ListFields(uid string) ([]entities.Field, error) {
	return s.r.ListByUser(uid)
}

func (s *fieldSvc) ImportFields(uid, filename string, r io.Reader) ([]entities.Field, error) {
	var (
		fs  []entities.Field
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		fs, err = importer.FromXLSX(r)
	default:
		fs, err = importer.FromCSV(r)
	}
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", filename, err)
	}
	for i := range fs {
		fs[i].UserID = uid
	}
	if err := s.r.CreateBatch(fs); err != nil {
		return nil, err
	}
	log.Printf("[field] imported %d fields from %s for %s", len(fs), filename, uid)
	return fs, nil
}

func (s *fieldSvc) ContainsPoint(f *entities.Field, p entities.Point) bool {
	return field.ContainsPoint(f, p)
}

func (s *fieldSvc) SaveBoundaries(f *entities.Field) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("field_%d_boundaries.txt", f.FieldID))
	if err := field.SaveBoundaries(f, path); err != nil {
		return "", err
	}
	return path, nil
}
