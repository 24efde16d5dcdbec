package model

import "time"

// TestResult is the bookkeeping fact for one ingested result document.
// Rows are insert-only; FilePath must name an object that exists in the
// result bucket for every committed row.
type TestResult struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;size:36;index;not null"`
	TypeID    string    `gorm:"column:type_id;size:36;index;not null"`
	Cost      float64   `gorm:"not null"`
	FilePath  string    `gorm:"column:file_path;size:255;not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

func (TestResult) TableName() string {
	return "test_results"
}
