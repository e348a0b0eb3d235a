package service

import (
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAuditServicePublishesGauge(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.professional(t, "dr.rossi")
	f.rawClient(t, owner.ID, "Anna")

	audit := NewAuditService(f.codes, f.metrics, slog.New(slog.DiscardHandler), time.Hour)
	audit.Start()

	require.Eventually(t, func() bool {
		n, err := testutil.GatherAndCount(f.metrics.Registry(), "clientarea_unique_codes_inconsistent")
		return err == nil && n > 0
	}, 5*time.Second, 20*time.Millisecond)

	audit.Stop()
}

func TestNewAuditServiceDefaultsInterval(t *testing.T) {
	t.Parallel()
	a := NewAuditService(nil, nil, slog.New(slog.DiscardHandler), 0)
	require.Equal(t, time.Hour, a.Interval)
}

func TestAuditServiceStopWithoutStart(t *testing.T) {
	t.Parallel()
	a := NewAuditService(nil, nil, slog.New(slog.DiscardHandler), time.Minute)
	a.Stop()
}
