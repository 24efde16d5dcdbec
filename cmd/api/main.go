package main

import (
	"context"
	"log"

	"github.com/Hossam-elsheikh/lap-bonus/internal/config"
	"github.com/Hossam-elsheikh/lap-bonus/internal/db"
	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
	"github.com/Hossam-elsheikh/lap-bonus/internal/server"
	"github.com/Hossam-elsheikh/lap-bonus/internal/storage"
	"github.com/joho/godotenv"
)

// set via -ldflags at build time
var (
	gitSHA    string
	buildTime string
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.Tier{}, &model.TestType{}, &model.Member{}, &model.TestResult{}); err != nil {
		log.Printf("auto migrate error: %v", err)
	}

	ctx := context.Background()
	store, err := storage.NewGCSStore(ctx, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	srv := server.New(conn, store, cfg.FirebaseProjectID, gitSHA, buildTime)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
