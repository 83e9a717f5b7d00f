package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/oggyb/omni-notify/internal/config"
	"github.com/oggyb/omni-notify/internal/db/gormdb"
	domain "github.com/oggyb/omni-notify/internal/domain/notification"
	notifRepo "github.com/oggyb/omni-notify/internal/repository/gorm/notification"
)

const seedCount = 20

func main() {
	ctx := context.Background()

	cfg := config.New()

	db, err := gormdb.New(cfg.PostgresDSN(), gormdb.Options{LogLevel: cfg.DB.LogLevel})
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Printf("[Seed] Connected to database %q", cfg.DB.Name)

	repo := notifRepo.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatalf("[Seed] AutoMigrate failed: %v", err)
	}
	log.Println("[Seed] Notifications table is up to date.")

	instance := cfg.Omni.Instance
	if instance == "" {
		instance = "whatsapp-1"
	}

	log.Printf("[Seed] Inserting %d pending notifications for instance %q...", seedCount, instance)

	for i := 0; i < seedCount; i++ {
		n, err := seedNotification(instance, i+1)
		if err != nil {
			log.Fatalf("[Seed] Invalid notification #%d: %v", i+1, err)
		}

		if err := repo.Save(ctx, n); err != nil {
			log.Fatalf("[Seed] Failed to save notification #%d: %v", i+1, err)
		}

		log.Printf("[Seed] Created notification #%d: id=%s to=%s (%s)", i+1, n.ID, n.Recipient, n.RecipientType)
	}

	log.Printf("[Seed] Done. Inserted %d notifications.", seedCount)
}

// seedNotification alternates phone and user recipients so both
// gateway fields get exercised.
func seedNotification(instance string, i int) (*domain.Notification, error) {
	if i%2 == 0 {
		return domain.NewNotification(instance, fmt.Sprintf("user_%04d", rand.Intn(10000)), domain.RecipientUserID,
			fmt.Sprintf("Seed notification #%d at %s", i, time.Now().Format("15:04:05")))
	}
	return domain.NewTaskNotification(instance, randomPhone(), domain.RecipientPhoneNumber,
		fmt.Sprintf("Seed task #%d", i), "completed", "")
}

// randomPhone generates a fake E.164-like number, e.g. +15551234567.
func randomPhone() string {
	return fmt.Sprintf("+1555%07d", rand.Intn(10000000))
}
