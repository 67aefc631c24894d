package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/sevatrust/donation-engine/internal/config"
	"github.com/sevatrust/donation-engine/internal/repository"
	"github.com/sevatrust/donation-engine/internal/service"
)

func main() {
	log.Println("Starting donation scheduler...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	donationRepo := repository.NewDonationRepository(db)
	donationService := service.NewDonationService(donationRepo, nil, cfg)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))
	setupCronJobs(c, donationService)

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, donationService *service.DonationService) {
	// Daily job to cancel donations stuck in created/pending (runs at midnight)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		expired, err := donationService.ExpireStalePending(ctx)
		if err != nil {
			log.Printf("Error expiring stale pending donations: %v", err)
			return
		}
		log.Printf("Expired %d stale pending donations", expired)
	})
	if err != nil {
		log.Printf("Error scheduling stale pending job: %v", err)
	}

	// Daily stats snapshot for the ops log (runs at 6 AM)
	_, err = c.AddFunc("0 0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		stats, err := donationService.GetDashboardStats(ctx)
		if err != nil {
			log.Printf("Error computing daily stats snapshot: %v", err)
			return
		}
		log.Printf("Daily snapshot: total=%s completed=%d pending=%d this_month=%s",
			stats.TotalAmount, stats.CompletedCount, stats.PendingCount, stats.ThisMonthAmount)
	})
	if err != nil {
		log.Printf("Error scheduling daily snapshot job: %v", err)
	}

	log.Println("Cron jobs scheduled successfully")
}
