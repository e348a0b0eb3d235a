package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var testMeta = domain.AccessMeta{IPAddress: "203.0.113.7", UserAgent: "test-agent"}

func accessCount(t *testing.T, f *fixture, clientID int64) int64 {
	t.Helper()
	n, err := f.access.CountFor(context.Background(), clientID)
	require.NoError(t, err)
	return n
}

func TestVerify(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	link, err := f.activation.Link(ctx, owner.ID, c.ID)
	require.NoError(t, err)

	t.Run("valid token records an access each time", func(t *testing.T) {
		for i := range 2 {
			safe, err := f.verify.Verify(ctx, link.Token, c.ID, testMeta)
			require.NoError(t, err)
			require.Equal(t, c.ID, safe.ID)
			require.Equal(t, "Anna", safe.FirstName)
			require.Equal(t, owner.ID, safe.OwnerID)
			require.EqualValues(t, i+1, accessCount(t, f, c.ID))
		}

		accesses, err := f.access.ListFor(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, accesses, 2)
		require.Equal(t, "203.0.113.7", accesses[0].IPAddress)
		require.Equal(t, "test-agent", accesses[0].UserAgent)
		require.Less(t, accesses[0].ID, accesses[1].ID)
	})

	t.Run("rejections record nothing", func(t *testing.T) {
		before := accessCount(t, f, c.ID)

		_, err := f.verify.Verify(ctx, link.Token+"x", c.ID, testMeta)
		require.ErrorIs(t, err, ErrTokenMismatch)

		_, err = f.verify.Verify(ctx, link.Token, c.ID+100, testMeta)
		require.ErrorIs(t, err, ErrClientNotFound)

		_, err = f.verify.Verify(ctx, "  "+link.Token+"\n", c.ID, testMeta)
		require.ErrorIs(t, err, ErrTokenMismatch)

		_, err = f.verify.Verify(ctx, "  ", c.ID, testMeta)
		require.ErrorIs(t, err, ErrValidation)

		_, err = f.verify.Verify(ctx, link.Token, 0, testMeta)
		require.ErrorIs(t, err, ErrValidation)

		require.Equal(t, before, accessCount(t, f, c.ID))
	})

	t.Run("token of another client does not open this one", func(t *testing.T) {
		other := f.client(t, owner.ID, "Bruno")
		_, err := f.verify.Verify(ctx, link.Token, other.ID, testMeta)
		require.ErrorIs(t, err, ErrTokenMismatch)
	})

	t.Run("outcomes are counted", func(t *testing.T) {
		n, err := testutil.GatherAndCount(f.metrics.Registry(), "clientarea_token_verifications_total")
		require.NoError(t, err)
		// authorized, token_mismatch, client_not_found, validation
		require.Equal(t, 4, n)
	})
}

func TestVerifyClientWithoutCode(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.professional(t, "dr.rossi")
	c := f.rawClient(t, owner.ID, "Carla")

	_, err := f.verify.Verify(context.Background(), "PROF_001_ABCD_CLIENT_001_ABCD_deadbeef", c.ID, testMeta)
	require.ErrorIs(t, err, ErrTokenMismatch)
	require.Zero(t, accessCount(t, f, c.ID))
}

func TestVerifyAfterReassign(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	alice := f.professional(t, "dr.alice")
	bob := f.professional(t, "dr.bob")
	c := f.client(t, alice.ID, "Anna")

	old, err := f.activation.Link(ctx, alice.ID, c.ID)
	require.NoError(t, err)

	_, err = f.clients.ReassignClient(ctx, alice.ID, c.ID, bob.ID)
	require.NoError(t, err)

	_, err = f.verify.Verify(ctx, old.Token, c.ID, testMeta)
	require.ErrorIs(t, err, ErrTokenMismatch)

	fresh, err := f.activation.Link(ctx, bob.ID, c.ID)
	require.NoError(t, err)
	_, err = f.verify.Verify(ctx, fresh.Token, c.ID, testMeta)
	require.NoError(t, err)
}

func TestVerifyHMAC(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	codec, err := accesstoken.NewHMACCodec("server-secret-with-enough-bytes")
	require.NoError(t, err)
	f.activation.Codec = codec
	f.verify.Codec = codec

	link, err := f.activation.Link(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	_, err = f.verify.Verify(ctx, link.Token, c.ID, testMeta)
	require.NoError(t, err)

	// A token computed the legacy way no longer opens the client area.
	legacy, err := accesstoken.MD5Codec{}.Compute(c.UniqueCode, owner.ID)
	require.NoError(t, err)
	_, err = f.verify.Verify(ctx, legacy, c.ID, testMeta)
	require.ErrorIs(t, err, ErrTokenMismatch)
}

func TestAccessCounts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	alice := f.professional(t, "dr.alice")
	bob := f.professional(t, "dr.bob")
	a := f.client(t, alice.ID, "Anna")
	b := f.client(t, alice.ID, "Bruno")
	f.client(t, bob.ID, "Carla")

	for range 3 {
		_, err := f.access.Record(ctx, a.ID, testMeta)
		require.NoError(t, err)
	}

	_, err := f.access.Record(ctx, a.ID+100, testMeta)
	require.ErrorIs(t, err, ErrClientNotFound)

	counts, err := f.access.CountsForOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	got := map[int64]int64{}
	for _, c := range counts {
		got[c.ClientID] = c.Count
	}
	require.Equal(t, map[int64]int64{a.ID: 3, b.ID: 0}, got)

	all, err := f.access.CountsForAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
