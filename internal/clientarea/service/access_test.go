package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/stretchr/testify/require"
)

func TestRecordKeepsUserAgentValidUTF8(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	tests := map[string]struct {
		agent string
		want  string
	}{
		"multi-byte rune across the limit": {strings.Repeat("a", 511) + "é", strings.Repeat("a", 511)},
		"invalid bytes are replaced":       {"agent\xff/1.0", "agent�/1.0"},
		"short agents are untouched":       {"Mozilla/5.0 (è)", "Mozilla/5.0 (è)"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := f.access.Record(ctx, c.ID, domain.AccessMeta{UserAgent: tt.agent})
			require.NoError(t, err)
			require.Equal(t, tt.want, a.UserAgent)
			require.True(t, utf8.ValidString(a.UserAgent))
			require.LessOrEqual(t, len(a.UserAgent), maxUserAgent)
		})
	}
}

func TestListForOrdersByAccessTime(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	// Each record is stamped earlier than the one inserted before it.
	next := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	f.access.Now = func() time.Time {
		next = next.Add(-time.Minute)
		return next
	}
	for range 4 {
		_, err := f.access.Record(ctx, c.ID, testMeta)
		require.NoError(t, err)
	}

	accesses, err := f.access.ListFor(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, accesses, 4)
	for i := 1; i < len(accesses); i++ {
		require.False(t, accesses[i].AccessedAt.Before(accesses[i-1].AccessedAt),
			"access %d at %s listed after %s", i, accesses[i].AccessedAt, accesses[i-1].AccessedAt)
	}
	require.Equal(t, time.Date(2025, 6, 17, 11, 56, 0, 0, time.UTC), accesses[0].AccessedAt.UTC())
}
