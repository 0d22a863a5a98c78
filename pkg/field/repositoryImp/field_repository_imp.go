package repositoryImp

import (
	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/field/repository"
	"gorm.io/gorm"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) CreateBatch(fs []entities.Field) error {
	if len(fs) == 0 {
		return nil
	}
	return r.db.Create(&fs).Error
}

func (r *fieldRepo) FindByID(id uint, uid string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("field_id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) ListByUser(uid string) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Where("user_id = ?", uid).Order("field_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
