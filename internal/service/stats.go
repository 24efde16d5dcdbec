package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/Hossam-elsheikh/lap-bonus/internal/repository"
)

// unknownBucket collects members and facts whose foreign key does not
// resolve against the reference tables.
const unknownBucket = "Unknown"

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	UsersCount       int         `json:"usersCount"`
	TestsCount       int         `json:"testsCount"`
	TopTests         []NameCount `json:"topTests"`
	TierDistribution []NameCount `json:"tierDistribution"`
	PointsEarned     float64     `json:"pointsEarned"`
	TotalProfits     float64     `json:"totalProfits"`
	LastMonthProfits float64     `json:"lastMonthProfits"`
}

type StatsService interface {
	// Dashboard joins the four collections in memory. A failed source fetch
	// zeroes the sections that depend on it instead of failing the whole
	// snapshot; the dashboard always renders something.
	Dashboard(ctx context.Context) *DashboardStats
}

type statsService struct {
	members repository.MemberRepository
	tiers   repository.TierRepository
	types   repository.TestTypeRepository
	results repository.TestResultRepository
	now     func() time.Time
}

func NewStatsService(
	members repository.MemberRepository,
	tiers repository.TierRepository,
	types repository.TestTypeRepository,
	results repository.TestResultRepository,
) StatsService {
	return &statsService{
		members: members,
		tiers:   tiers,
		types:   types,
		results: results,
		now:     time.Now,
	}
}

func (s *statsService) Dashboard(ctx context.Context) *DashboardStats {
	stats := &DashboardStats{
		TopTests:         []NameCount{},
		TierDistribution: []NameCount{},
	}

	members, membersErr := s.members.ListAll(ctx)
	if membersErr != nil {
		log.Printf("dashboard: fetch members: %v", membersErr)
	}
	tiers, tiersErr := s.tiers.ListAll(ctx)
	if tiersErr != nil {
		log.Printf("dashboard: fetch tiers: %v", tiersErr)
	}
	types, typesErr := s.types.ListAll(ctx)
	if typesErr != nil {
		log.Printf("dashboard: fetch test types: %v", typesErr)
	}
	facts, factsErr := s.results.ListAll(ctx)
	if factsErr != nil {
		log.Printf("dashboard: fetch results: %v", factsErr)
	}

	if membersErr == nil {
		stats.UsersCount = len(members)

		// Pre-seed from the tier table so tiers nobody holds still show up
		// with a zero count.
		tierNames := map[uint64]string{}
		counts := map[string]int{}
		var order []string
		if tiersErr == nil {
			for _, t := range tiers {
				name := t.DisplayName()
				tierNames[t.ID] = name
				if _, ok := counts[name]; !ok {
					counts[name] = 0
					order = append(order, name)
				}
			}
		}
		for _, m := range members {
			stats.PointsEarned += m.Points
			name := unknownBucket
			if m.TierID != nil {
				if n, ok := tierNames[*m.TierID]; ok {
					name = n
				}
			}
			if _, ok := counts[name]; !ok {
				counts[name] = 0
				order = append(order, name)
			}
			counts[name]++
		}
		dist := make([]NameCount, 0, len(order))
		for _, name := range order {
			dist = append(dist, NameCount{Name: name, Count: counts[name]})
		}
		sort.SliceStable(dist, func(i, j int) bool { return dist[i].Count > dist[j].Count })
		stats.TierDistribution = dist
	}

	if factsErr == nil {
		stats.TestsCount = len(facts)

		typeNames := map[string]string{}
		if typesErr == nil {
			for _, t := range types {
				typeNames[t.ID] = t.DisplayName()
			}
		}

		counts := map[string]int{}
		var order []string
		now := s.now()
		windowStart := now.AddDate(0, 0, -30)
		for _, f := range facts {
			name, ok := typeNames[f.TypeID]
			if !ok || name == "" {
				name = unknownBucket
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++

			stats.TotalProfits += f.Cost
			// Trailing window, inclusive on both ends.
			if !f.CreatedAt.Before(windowStart) && !f.CreatedAt.After(now) {
				stats.LastMonthProfits += f.Cost
			}
		}

		// Ties keep first-seen order: the sort is stable and compares counts
		// only.
		top := make([]NameCount, 0, len(order))
		for _, name := range order {
			top = append(top, NameCount{Name: name, Count: counts[name]})
		}
		sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
		if len(top) > 5 {
			top = top[:5]
		}
		stats.TopTests = top
	}

	return stats
}
