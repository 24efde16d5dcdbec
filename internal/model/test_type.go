package model

import "time"

// TestType is immutable reference data. Title/Name carry the same two-shape
// legacy split as Tier.
type TestType struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Title     string    `gorm:"size:120"`
	Name      string    `gorm:"size:120"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TestType) TableName() string {
	return "test_types"
}

func (t TestType) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	return "unknown"
}
