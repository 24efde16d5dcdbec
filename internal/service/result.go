package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/Hossam-elsheikh/lap-bonus/internal/repository"
	"github.com/Hossam-elsheikh/lap-bonus/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resultMediaType = "application/pdf"

// compensateTimeout bounds the cleanup delete. It runs on a detached context
// so a canceled request still gets its orphan removed.
const compensateTimeout = 10 * time.Second

type IngestInput struct {
	MemberID  string
	TypeID    string
	Cost      float64
	Notes     string
	CreatedAt time.Time
	Document  []byte
	MediaType string
}

type IngestOutcome struct {
	FactID       string
	FilePath     string
	PointsAdded  float64
	TierUpgraded bool
}

// ResultRow pairs a fact with the display names the admin tables want.
type ResultRow struct {
	Result    model.TestResult
	UserName  string
	TypeTitle string
}

type ResultListOptions struct {
	UserID   string
	Day      *time.Time
	TypeName string
	Limit    int
	Offset   int
}

type ResultService interface {
	// Ingest runs the full pipeline: upload the document, record the fact
	// and apply loyalty accounting in one relational transaction. If the
	// bookkeeping side fails after the upload, the uploaded object is
	// deleted before the error is returned.
	Ingest(ctx context.Context, role model.Role, in IngestInput) (*IngestOutcome, error)
	List(ctx context.Context, opts ResultListOptions) ([]ResultRow, int64, error)
}

type resultService struct {
	members repository.MemberRepository
	types   repository.TestTypeRepository
	tiers   repository.TierRepository
	results repository.TestResultRepository
	store   storage.ObjectStore
}

func NewResultService(
	members repository.MemberRepository,
	types repository.TestTypeRepository,
	tiers repository.TierRepository,
	results repository.TestResultRepository,
	store storage.ObjectStore,
) ResultService {
	return &resultService{
		members: members,
		types:   types,
		tiers:   tiers,
		results: results,
		store:   store,
	}
}

func (s *resultService) Ingest(ctx context.Context, role model.Role, in IngestInput) (*IngestOutcome, error) {
	if !role.AtLeast(model.RoleAdmin) {
		return nil, ErrUnauthorized
	}
	if in.MediaType != resultMediaType {
		return nil, &InvalidInputError{Field: "mediaType"}
	}
	if in.Cost < 0 || math.IsNaN(in.Cost) || math.IsInf(in.Cost, 0) {
		return nil, &InvalidInputError{Field: "cost"}
	}

	member, err := s.members.FindByID(ctx, in.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	typ, err := s.types.FindByID(ctx, in.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestTypeNotFound
		}
		return nil, err
	}

	occurred := in.CreatedAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	fileName := ResultFileName(member.Name, typ.DisplayName(), occurred)
	path, err := s.store.Put(ctx, fileName, in.Document, resultMediaType)
	if err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			return nil, ErrUploadConflict
		}
		return nil, fmt.Errorf("upload result file: %w", err)
	}

	fact := &model.TestResult{
		ID:        uuid.NewString(),
		UserID:    member.ID,
		TypeID:    typ.ID,
		Cost:      in.Cost,
		FilePath:  path,
		Notes:     in.Notes,
		CreatedAt: occurred,
	}

	outcome, err := s.book(ctx, member, fact)
	if err != nil {
		s.compensate(fileName, err)
		return nil, &BookkeepingError{Err: err}
	}
	return outcome, nil
}

// book is everything after the upload: point conversion, tier advancement
// and the transactional writes.
func (s *resultService) book(ctx context.Context, member *model.Member, fact *model.TestResult) (*IngestOutcome, error) {
	tiers, err := s.tiers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var pcr float64
	if member.TierID != nil {
		for i := range tiers {
			if tiers[i].ID == *member.TierID {
				pcr = tiers[i].PCR
				break
			}
		}
	}
	added := PointsForCost(fact.Cost, pcr)

	var promote *repository.Promotion
	upgraded := false
	if next := NextTier(tiers, member.TierID, member.Points+added); next != nil {
		promote = &repository.Promotion{TierID: next.ID, MinPoints: next.MinPoints}
		upgraded = true
	}

	if err := s.results.CreateWithAccounting(ctx, fact, added, promote); err != nil {
		return nil, err
	}
	return &IngestOutcome{
		FactID:       fact.ID,
		FilePath:     fact.FilePath,
		PointsAdded:  added,
		TierUpgraded: upgraded,
	}, nil
}

func (s *resultService) compensate(key string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), compensateTimeout)
	defer cancel()
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("compensation failed: orphaned object %s after bookkeeping error (%v): %v", key, cause, err)
	}
}

func (s *resultService) List(ctx context.Context, opts ResultListOptions) ([]ResultRow, int64, error) {
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 10
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	filter := repository.ResultFilter{UserID: opts.UserID, Day: opts.Day}
	typeTitles := map[string]string{}
	types, err := s.types.ListAll(ctx)
	if err == nil {
		for _, t := range types {
			typeTitles[t.ID] = t.DisplayName()
		}
	}
	if opts.TypeName != "" {
		needle := strings.ToLower(opts.TypeName)
		ids := []string{}
		for _, t := range types {
			if strings.Contains(strings.ToLower(t.DisplayName()), needle) {
				ids = append(ids, t.ID)
			}
		}
		filter.TypeIDs = ids
	}

	facts, total, err := s.results.List(ctx, filter, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]ResultRow, 0, len(facts))
	for _, f := range facts {
		row := ResultRow{Result: f, TypeTitle: typeTitles[f.TypeID]}
		if m, err := s.members.FindByID(ctx, f.UserID); err == nil {
			row.UserName = m.Name
		}
		rows = append(rows, row)
	}
	return rows, total, nil
}
