package service

import (
	"context"
	"errors"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/Hossam-elsheikh/lap-bonus/internal/repository"
	"gorm.io/gorm"
)

type MemberDetail struct {
	Member  model.Member
	Tier    *model.Tier
	Results []model.TestResult
}

type MemberService interface {
	List(ctx context.Context, limit, offset int) ([]model.Member, int64, error)
	Get(ctx context.Context, id string) (*MemberDetail, error)
}

type memberService struct {
	members repository.MemberRepository
	tiers   repository.TierRepository
	results repository.TestResultRepository
}

func NewMemberService(members repository.MemberRepository, tiers repository.TierRepository, results repository.TestResultRepository) MemberService {
	return &memberService{members: members, tiers: tiers, results: results}
}

func (s *memberService) List(ctx context.Context, limit, offset int) ([]model.Member, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.members.List(ctx, limit, offset)
}

func (s *memberService) Get(ctx context.Context, id string) (*MemberDetail, error) {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	detail := &MemberDetail{Member: *m}
	if m.TierID != nil {
		if t, err := s.tiers.FindByID(ctx, *m.TierID); err == nil {
			detail.Tier = t
		}
	}
	results, err := s.results.ListByUser(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	detail.Results = results
	return detail, nil
}
