package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixture(members *fakeMemberRepo, tiers *fakeTierRepo, types *fakeTypeRepo, results *fakeResultRepo, now time.Time) StatsService {
	return &statsService{
		members: members,
		tiers:   tiers,
		types:   types,
		results: results,
		now:     func() time.Time { return now },
	}
}

func TestDashboardTierDistributionComplete(t *testing.T) {
	bronze, dangling := uint64(1), uint64(99)
	members := &fakeMemberRepo{all: []model.Member{
		{ID: "m1", Points: 10, TierID: &bronze},
		{ID: "m2", Points: 20, TierID: &bronze},
		{ID: "m3", Points: 5, TierID: &dangling},
		{ID: "m4", Points: 0},
	}}
	tiers := &fakeTierRepo{all: tierFixture()}
	svc := statsFixture(members, tiers, &fakeTypeRepo{}, &fakeResultRepo{}, time.Now())

	stats := svc.Dashboard(context.Background())

	assert.Equal(t, 4, stats.UsersCount)
	assert.InDelta(t, 35, stats.PointsEarned, 1e-9)

	counts := map[string]int{}
	total := 0
	for _, nc := range stats.TierDistribution {
		counts[nc.Name] = nc.Count
		total += nc.Count
	}
	// Every known tier appears, zero-count included, and the distribution
	// sums to the member count.
	assert.Equal(t, map[string]int{"Bronze": 2, "Silver": 0, "Gold": 0, "Unknown": 2}, counts)
	assert.Equal(t, stats.UsersCount, total)
}

func TestDashboardTopFiveStableTies(t *testing.T) {
	typeList := []model.TestType{
		{ID: "A", Title: "A"}, {ID: "B", Title: "B"}, {ID: "C", Title: "C"},
		{ID: "D", Title: "D"}, {ID: "E", Title: "E"}, {ID: "F", Title: "F"},
	}
	// Frequencies {A:5,B:5,C:3,D:2,E:2,F:1}; A is seen before B and D before E.
	seq := []string{"A", "B", "C", "D", "E", "F", "A", "B", "C", "D", "E", "A", "B", "C", "A", "B", "A", "B"}
	results := &fakeResultRepo{}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range seq {
		results.created = append(results.created, model.TestResult{TypeID: id, Cost: 1, CreatedAt: base})
	}
	svc := statsFixture(&fakeMemberRepo{}, &fakeTierRepo{}, &fakeTypeRepo{all: typeList}, results, base)

	stats := svc.Dashboard(context.Background())

	require.Len(t, stats.TopTests, 5)
	names := make([]string, 0, 5)
	for _, nc := range stats.TopTests {
		names = append(names, nc.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names)
	assert.Equal(t, 5, stats.TopTests[0].Count)
	assert.Equal(t, 5, stats.TopTests[1].Count)
}

func TestDashboardRevenueWindowInclusive(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	results := &fakeResultRepo{created: []model.TestResult{
		{ID: "r1", TypeID: "t", Cost: 100, CreatedAt: now.AddDate(0, 0, -30)}, // exactly 30 days: in
		{ID: "r2", TypeID: "t", Cost: 50, CreatedAt: now.AddDate(0, 0, -31)},  // 31 days: out
		{ID: "r3", TypeID: "t", Cost: 25, CreatedAt: now},                     // boundary: in
	}}
	svc := statsFixture(&fakeMemberRepo{}, &fakeTierRepo{}, &fakeTypeRepo{}, results, now)

	stats := svc.Dashboard(context.Background())

	assert.InDelta(t, 175, stats.TotalProfits, 1e-9)
	assert.InDelta(t, 125, stats.LastMonthProfits, 1e-9)
	assert.Equal(t, 3, stats.TestsCount)
}

func TestDashboardUnknownTypeStillCounts(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	results := &fakeResultRepo{created: []model.TestResult{
		{ID: "r1", TypeID: "missing", Cost: 100, CreatedAt: now},
	}}
	svc := statsFixture(&fakeMemberRepo{}, &fakeTierRepo{}, &fakeTypeRepo{}, results, now)

	stats := svc.Dashboard(context.Background())

	require.Len(t, stats.TopTests, 1)
	assert.Equal(t, "Unknown", stats.TopTests[0].Name)
	assert.InDelta(t, 100, stats.TotalProfits, 1e-9)
	assert.InDelta(t, 100, stats.LastMonthProfits, 1e-9)
}

func TestDashboardDegradesPerSection(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	members := &fakeMemberRepo{listErr: errors.New("db down")}
	results := &fakeResultRepo{created: []model.TestResult{
		{ID: "r1", TypeID: "t", Cost: 10, CreatedAt: now},
	}}
	svc := statsFixture(members, &fakeTierRepo{}, &fakeTypeRepo{}, results, now)

	stats := svc.Dashboard(context.Background())

	// Member-driven sections are zeroed, fact-driven sections still computed.
	assert.Zero(t, stats.UsersCount)
	assert.Empty(t, stats.TierDistribution)
	assert.Zero(t, stats.PointsEarned)
	assert.Equal(t, 1, stats.TestsCount)
	assert.InDelta(t, 10, stats.TotalProfits, 1e-9)
}
