package model

import "time"

// Tier is immutable reference data. PCR/RCR are conversion rates in percent;
// MinPoints is the advancement threshold (tier ordinal follows MinPoints).
//
// Title and Name both exist because the two legacy schemas disagreed on the
// display column; DisplayName resolves the pair.
type Tier struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:120"`
	Name        string    `gorm:"size:120"`
	Description string    `gorm:"type:text"`
	PCR         float64   `gorm:"column:pcr;not null;default:0"`
	RCR         float64   `gorm:"column:rcr;not null;default:0"`
	MinPoints   float64   `gorm:"column:min_points;not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Tier) TableName() string {
	return "tiers"
}

func (t Tier) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	return "unknown"
}
