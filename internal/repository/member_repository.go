package repository

import (
	"context"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"gorm.io/gorm"
)

type MemberRepository interface {
	FindByID(ctx context.Context, id string) (*model.Member, error)
	List(ctx context.Context, limit, offset int) ([]model.Member, int64, error)
	ListAll(ctx context.Context) ([]model.Member, error)
	SetDB(db *gorm.DB)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	var m model.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) List(ctx context.Context, limit, offset int) ([]model.Member, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Member
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *memberRepository) ListAll(ctx context.Context) ([]model.Member, error) {
	var list []model.Member
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *memberRepository) SetDB(db *gorm.DB) {
	r.db = db
}
