package model

import "time"

// Member is a loyalty program participant. Rows are provisioned by the
// account system; this backend only increments points and advances tier_id.
type Member struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:120;not null"`
	Phone     *string   `gorm:"size:32"`
	Age       *int      `gorm:"column:age"`
	Points    float64   `gorm:"not null;default:0"`
	TierID    *uint64   `gorm:"column:tier_id;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Member) TableName() string {
	return "members"
}
