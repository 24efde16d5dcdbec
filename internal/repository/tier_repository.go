package repository

import (
	"context"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"gorm.io/gorm"
)

type TierRepository interface {
	FindByID(ctx context.Context, id uint64) (*model.Tier, error)
	ListAll(ctx context.Context) ([]model.Tier, error)
	SetDB(db *gorm.DB)
}

type tierRepository struct {
	db *gorm.DB
}

func NewTierRepository(db *gorm.DB) TierRepository {
	return &tierRepository{db: db}
}

func (r *tierRepository) FindByID(ctx context.Context, id uint64) (*model.Tier, error) {
	var t model.Tier
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tierRepository) ListAll(ctx context.Context) ([]model.Tier, error) {
	var list []model.Tier
	if err := r.db.WithContext(ctx).Order("min_points ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *tierRepository) SetDB(db *gorm.DB) {
	r.db = db
}
