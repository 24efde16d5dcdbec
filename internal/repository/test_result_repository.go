package repository

import (
	"context"
	"time"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"gorm.io/gorm"
)

// Promotion names the tier a member should advance to alongside a result
// insert. MinPoints guards the update so a concurrent promotion to a higher
// tier is never undone.
type Promotion struct {
	TierID    uint64
	MinPoints float64
}

// ResultFilter narrows List. Zero values mean "no filter".
type ResultFilter struct {
	UserID  string
	Day     *time.Time // calendar day of CreatedAt
	TypeIDs []string
}

type TestResultRepository interface {
	// CreateWithAccounting runs the bookkeeping side of an ingestion as one
	// transaction: insert the fact, bump the member's points with an atomic
	// expression, and advance the tier when a promotion is due.
	CreateWithAccounting(ctx context.Context, res *model.TestResult, pointsDelta float64, promote *Promotion) error
	List(ctx context.Context, f ResultFilter, limit, offset int) ([]model.TestResult, int64, error)
	ListByUser(ctx context.Context, userID string) ([]model.TestResult, error)
	ListAll(ctx context.Context) ([]model.TestResult, error)
	SetDB(db *gorm.DB)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) CreateWithAccounting(ctx context.Context, res *model.TestResult, pointsDelta float64, promote *Promotion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		if pointsDelta > 0 {
			if err := tx.Model(&model.Member{}).
				Where("id = ?", res.UserID).
				Update("points", gorm.Expr("points + ?", pointsDelta)).Error; err != nil {
				return err
			}
		}
		if promote != nil {
			// Only advance: a member already holding a tier at or above the
			// target threshold keeps it.
			lower := tx.Model(&model.Tier{}).Select("id").Where("min_points < ?", promote.MinPoints)
			if err := tx.Model(&model.Member{}).
				Where("id = ? AND (tier_id IS NULL OR tier_id IN (?))", res.UserID, lower).
				Update("tier_id", promote.TierID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *testResultRepository) List(ctx context.Context, f ResultFilter, limit, offset int) ([]model.TestResult, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.TestResult{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Day != nil {
		start := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, f.Day.Location())
		q = q.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}
	if f.TypeIDs != nil {
		q = q.Where("type_id IN ?", f.TypeIDs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.TestResult
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *testResultRepository) ListByUser(ctx context.Context, userID string) ([]model.TestResult, error) {
	var list []model.TestResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *testResultRepository) ListAll(ctx context.Context) ([]model.TestResult, error) {
	var list []model.TestResult
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *testResultRepository) SetDB(db *gorm.DB) {
	r.db = db
}
