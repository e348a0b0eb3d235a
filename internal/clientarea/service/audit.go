package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clientarea/pkg/metricsx"
)

// AuditService periodically checks unique code consistency and publishes
// the result as a gauge. It only reports; repairs are an explicit command.
type AuditService struct {
	Codes    *CodeService
	Metrics  *metricsx.Metrics
	Logger   *slog.Logger
	Interval time.Duration

	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewAuditService defaults interval to one hour.
func NewAuditService(codes *CodeService, metrics *metricsx.Metrics, logger *slog.Logger, interval time.Duration) *AuditService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AuditService{
		Codes:    codes,
		Metrics:  metrics,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs an audit now and then every Interval until Stop.
func (s *AuditService) Start() {
	s.started = true
	go s.run()
	s.Logger.Info("code audit started", "interval", s.Interval)
}

// Stop blocks until an in-flight audit has finished. It is a no-op if the
// service was never started.
func (s *AuditService) Stop() {
	if !s.started {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("code audit stopped")
}

func (s *AuditService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.audit()
	for {
		select {
		case <-ticker.C:
			s.audit()
		case <-s.stopCh:
			return
		}
	}
}

func (s *AuditService) audit() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := s.Codes.Audit(ctx)
	if err != nil {
		s.Logger.Error("code audit failed", "error", err)
		return
	}
	s.Metrics.SetInconsistentCodes(len(report.Missing), len(report.Mismatched))

	if report.Inconsistent() > 0 {
		s.Logger.Warn("inconsistent unique codes found",
			"checked", report.Checked,
			"missing", report.Missing,
			"mismatched", report.Mismatched,
		)
		return
	}
	s.Logger.Debug("code audit clean", "checked", report.Checked)
}
