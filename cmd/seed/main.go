package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Hossam-elsheikh/lap-bonus/internal/config"
	"github.com/Hossam-elsheikh/lap-bonus/internal/db"
	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Tier{}, &model.TestType{}, &model.Member{}, &model.TestResult{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	force := strings.EqualFold(os.Getenv("FORCE_SEED"), "true")

	var tierCount int64
	if err := gdb.WithContext(ctx).Model(&model.Tier{}).Count(&tierCount).Error; err != nil {
		return fmt.Errorf("count tiers: %w", err)
	}
	if tierCount > 0 && !force {
		log.Printf("tiers already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	tiers := []model.Tier{
		{Title: "Bronze", Description: "Entry tier", PCR: 20, RCR: 10, MinPoints: 0},
		{Title: "Silver", Description: "100+ points", PCR: 15, RCR: 8, MinPoints: 100},
		{Title: "Gold", Description: "250+ points", PCR: 10, RCR: 5, MinPoints: 250},
		{Title: "Platinum", Description: "500+ points", PCR: 5, RCR: 3, MinPoints: 500},
	}
	typeTitles := []string{
		"Complete Blood Count",
		"Lipid Panel",
		"Thyroid Panel",
		"Liver Function",
		"Vitamin D",
		"HbA1c",
	}

	err = gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if force {
			if err := tx.Where("1 = 1").Delete(&model.TestType{}).Error; err != nil {
				return fmt.Errorf("clear test types: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&model.Tier{}).Error; err != nil {
				return fmt.Errorf("clear tiers: %w", err)
			}
		}
		for i := range tiers {
			if err := tx.Create(&tiers[i]).Error; err != nil {
				return fmt.Errorf("create tier %s: %w", tiers[i].Title, err)
			}
		}
		for _, title := range typeTitles {
			t := model.TestType{ID: uuid.NewString(), Title: title}
			if err := tx.Create(&t).Error; err != nil {
				return fmt.Errorf("create test type %s: %w", title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("seeded %d tiers and %d test types", len(tiers), len(typeTitles))
	return nil
}
