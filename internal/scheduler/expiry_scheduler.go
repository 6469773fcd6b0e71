package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
)

// ExpirySchedule runs the sweep nightly at 02:30 server time.
const ExpirySchedule = "30 2 * * *"

// ExpiryScheduler disables stores whose subscription has lapsed.
type ExpiryScheduler struct {
	cron         *cron.Cron
	storeService service.StoreService
}

func NewExpiryScheduler(storeService service.StoreService) *ExpiryScheduler {
	return &ExpiryScheduler{
		cron:         cron.New(),
		storeService: storeService,
	}
}

func (s *ExpiryScheduler) Start() error {
	_, err := s.cron.AddFunc(ExpirySchedule, func() {
		logger.Info("Starting expired store sweep", nil)

		count, err := s.storeService.DeactivateExpiredStores()
		if err != nil {
			logger.Error("Expired store sweep failed", err)
			return
		}

		logger.Info("Expired store sweep finished", map[string]interface{}{
			"deactivated": count,
		})
	})
	if err != nil {
		logger.Error("Failed to register expiry sweep job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Expiry scheduler started (daily at 02:30)", nil)
	return nil
}

func (s *ExpiryScheduler) Stop() {
	logger.Info("Stopping expiry scheduler...", nil)
	s.cron.Stop()
}
