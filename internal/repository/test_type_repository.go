package repository

import (
	"context"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"gorm.io/gorm"
)

type TestTypeRepository interface {
	FindByID(ctx context.Context, id string) (*model.TestType, error)
	ListAll(ctx context.Context) ([]model.TestType, error)
	SetDB(db *gorm.DB)
}

type testTypeRepository struct {
	db *gorm.DB
}

func NewTestTypeRepository(db *gorm.DB) TestTypeRepository {
	return &testTypeRepository{db: db}
}

func (r *testTypeRepository) FindByID(ctx context.Context, id string) (*model.TestType, error) {
	var t model.TestType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testTypeRepository) ListAll(ctx context.Context) ([]model.TestType, error) {
	var list []model.TestType
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *testTypeRepository) SetDB(db *gorm.DB) {
	r.db = db
}
