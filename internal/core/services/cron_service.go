package services

import (
	"context"
	"log"

	"chamahub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers jobs and starts the scheduler
func (s *CronService) Start() error {
	// Purge expired and revoked refresh tokens nightly
	_, err := s.cron.AddFunc("0 3 * * *", s.cleanupRefreshTokens)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("🚀 Cron scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron scheduler stopped")
}

func (s *CronService) cleanupRefreshTokens() {
	deleted, err := s.refreshTokenRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("❌ Refresh token cleanup failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("🧹 Removed %d stale refresh tokens", deleted)
	}
}
