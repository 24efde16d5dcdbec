package service

import (
	"testing"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPointsForCost(t *testing.T) {
	tests := []struct {
		name string
		cost float64
		pcr  float64
		want float64
	}{
		{"spec example", 100, 10, 10},
		{"fractional", 50, 15, 50.0 / 15},
		{"zero pcr", 100, 0, 0},
		{"negative pcr", 100, -5, 0},
		{"zero cost", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PointsForCost(tt.cost, tt.pcr), 1e-9)
		})
	}
}

func tierFixture() []model.Tier {
	return []model.Tier{
		{ID: 1, Title: "Bronze", PCR: 20, MinPoints: 0},
		{ID: 2, Title: "Silver", PCR: 15, MinPoints: 100},
		{ID: 3, Title: "Gold", PCR: 10, MinPoints: 250},
	}
}

func TestNextTier(t *testing.T) {
	tiers := tierFixture()
	bronze, silver, gold := uint64(1), uint64(2), uint64(3)

	t.Run("crossing a threshold promotes", func(t *testing.T) {
		next := NextTier(tiers, &bronze, 120)
		if assert.NotNil(t, next) {
			assert.Equal(t, silver, next.ID)
		}
	})

	t.Run("skips straight to the highest qualifying tier", func(t *testing.T) {
		next := NextTier(tiers, &bronze, 300)
		if assert.NotNil(t, next) {
			assert.Equal(t, gold, next.ID)
		}
	})

	t.Run("below next threshold keeps current tier", func(t *testing.T) {
		assert.Nil(t, NextTier(tiers, &silver, 120))
	})

	t.Run("never demotes", func(t *testing.T) {
		assert.Nil(t, NextTier(tiers, &gold, 5))
	})

	t.Run("no tier gets the base tier once qualified", func(t *testing.T) {
		next := NextTier(tiers, nil, 0)
		if assert.NotNil(t, next) {
			assert.Equal(t, bronze, next.ID)
		}
	})
}
