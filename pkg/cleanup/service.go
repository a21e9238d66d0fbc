// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/processinglog"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/pkg/config"
	"github.com/autodiag/refinery/pkg/database"
)

// Service periodically enforces retention policies:
//   - Removes processing log rows past their TTL
//   - Removes settled crawl requests past their TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config *config.RetentionConfig
	db     *database.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, db *database.Client) *Service {
	return &Service{
		config: cfg,
		db:     db,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"processing_log_ttl", s.config.ProcessingLogTTL,
		"crawl_request_ttl", s.config.CrawlRequestTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupProcessingLogs(ctx)
	s.cleanupResolutionLogs(ctx)
	s.cleanupCrawlRequests(ctx)
}

func (s *Service) cleanupProcessingLogs(ctx context.Context) {
	if s.config.ProcessingLogTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.ProcessingLogTTL)
	count, err := s.db.ProcessingLog.Delete().
		Where(processinglog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: processing log cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed old processing log rows", "count", count)
	}
}

func (s *Service) cleanupResolutionLogs(ctx context.Context) {
	if s.config.ResolutionLogTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.ResolutionLogTTL)
	count, err := s.db.ResolutionLog.Delete().
		Where(resolutionlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: resolution log cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed old resolution log rows", "count", count)
	}
}

func (s *Service) cleanupCrawlRequests(ctx context.Context) {
	if s.config.CrawlRequestTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.CrawlRequestTTL)
	count, err := s.db.CrawlRequest.Delete().
		Where(
			crawlrequest.StatusIn(crawlrequest.StatusCompleted, crawlrequest.StatusFailed),
			crawlrequest.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: crawl request cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed settled crawl requests", "count", count)
	}
}
