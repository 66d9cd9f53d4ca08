package export

import (
	"context"
	"os"
	"time"

	"go-pm/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RetentionSweeper prunes export files and history entries past the retention
// window on a cron schedule.
type RetentionSweeper struct {
	repo     ExportRepository
	config   *config.Config
	logger   *zap.Logger
	schedule *cron.Cron
}

func NewRetentionSweeper(repo ExportRepository, cfg *config.Config, logger *zap.Logger) *RetentionSweeper {
	return &RetentionSweeper{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

func (s *RetentionSweeper) Start() error {
	if _, err := cron.ParseStandard(s.config.RetentionSchedule); err != nil {
		return err
	}

	s.schedule = cron.New()
	if _, err := s.schedule.AddFunc(s.config.RetentionSchedule, s.Sweep); err != nil {
		return err
	}
	s.schedule.Start()

	s.logger.Info("export retention sweep scheduled",
		zap.String("schedule", s.config.RetentionSchedule),
		zap.Int("retention_days", s.config.ExportRetention))
	return nil
}

func (s *RetentionSweeper) Stop() {
	if s.schedule != nil {
		s.schedule.Stop()
	}
}

// Sweep removes every export older than the retention window.
func (s *RetentionSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.config.ExportRetention)
	stale, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("export retention sweep failed", zap.Error(err))
		return
	}

	removed := 0
	for _, job := range stale {
		if job.FilePath == "" {
			continue
		}
		if err := os.Remove(job.FilePath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("could not remove export file",
				zap.String("path", job.FilePath), zap.Error(err))
			continue
		}
		removed++
	}

	if len(stale) > 0 {
		s.logger.Info("export retention sweep done",
			zap.Int("entries", len(stale)),
			zap.Int("files_removed", removed))
	}
}
