package service

import (
	"context"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/Hossam-elsheikh/lap-bonus/internal/repository"
	"github.com/Hossam-elsheikh/lap-bonus/internal/storage"
	"gorm.io/gorm"
)

type fakeMemberRepo struct {
	all       []model.Member
	listErr   error
	findCalls int
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*model.Member, error) {
	f.findCalls++
	for i := range f.all {
		if f.all[i].ID == id {
			cp := f.all[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMemberRepo) List(_ context.Context, limit, offset int) ([]model.Member, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	if offset >= len(f.all) {
		return nil, int64(len(f.all)), nil
	}
	end := offset + limit
	if end > len(f.all) {
		end = len(f.all)
	}
	return f.all[offset:end], int64(len(f.all)), nil
}

func (f *fakeMemberRepo) ListAll(_ context.Context) ([]model.Member, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.all, nil
}

func (f *fakeMemberRepo) SetDB(*gorm.DB) {}

type fakeTierRepo struct {
	all     []model.Tier
	listErr error
}

func (f *fakeTierRepo) FindByID(_ context.Context, id uint64) (*model.Tier, error) {
	for i := range f.all {
		if f.all[i].ID == id {
			cp := f.all[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTierRepo) ListAll(_ context.Context) ([]model.Tier, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.all, nil
}

func (f *fakeTierRepo) SetDB(*gorm.DB) {}

type fakeTypeRepo struct {
	all     []model.TestType
	listErr error
}

func (f *fakeTypeRepo) FindByID(_ context.Context, id string) (*model.TestType, error) {
	for i := range f.all {
		if f.all[i].ID == id {
			cp := f.all[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTypeRepo) ListAll(_ context.Context) ([]model.TestType, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.all, nil
}

func (f *fakeTypeRepo) SetDB(*gorm.DB) {}

type fakeResultRepo struct {
	created    []model.TestResult
	deltas     []float64
	promotions []*repository.Promotion
	createErr  error
	listErr    error
}

func (f *fakeResultRepo) CreateWithAccounting(_ context.Context, res *model.TestResult, delta float64, promote *repository.Promotion) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *res)
	f.deltas = append(f.deltas, delta)
	f.promotions = append(f.promotions, promote)
	return nil
}

func (f *fakeResultRepo) List(_ context.Context, filter repository.ResultFilter, limit, offset int) ([]model.TestResult, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []model.TestResult
	for _, r := range f.created {
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeResultRepo) ListByUser(_ context.Context, userID string) ([]model.TestResult, error) {
	var out []model.TestResult
	for _, r := range f.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) ListAll(_ context.Context) ([]model.TestResult, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.created, nil
}

func (f *fakeResultRepo) SetDB(*gorm.DB) {}

type fakeObjectStore struct {
	objects  map[string][]byte
	putErr   error
	delErr   error
	putCalls []string
	delCalls []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	f.putCalls = append(f.putCalls, key)
	if f.putErr != nil {
		return "", f.putErr
	}
	if _, ok := f.objects[key]; ok {
		return "", storage.ErrObjectExists
	}
	f.objects[key] = data
	return key, nil
}

func (f *fakeObjectStore) Delete(_ context.Context, keys ...string) error {
	f.delCalls = append(f.delCalls, keys...)
	if f.delErr != nil {
		return f.delErr
	}
	for _, k := range keys {
		delete(f.objects, k)
	}
	return nil
}
