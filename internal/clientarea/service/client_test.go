package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientarea/pkg/uniquecode"
	"github.com/stretchr/testify/require"
)

func TestCreateClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")

	t.Run("assigns a code embedding the owner", func(t *testing.T) {
		c, err := f.clients.CreateClient(ctx, owner.ID, NewClientInput{
			FirstName: " Anna ",
			LastName:  "Bianchi",
			Email:     "Anna@Example.com",
			Phone:     "347 123 4567",
		})
		require.NoError(t, err)
		require.Equal(t, "Anna", c.FirstName)
		require.Equal(t, "anna@example.com", c.Email)
		require.Equal(t, "+393471234567", c.Phone)
		require.True(t, uniquecode.EmbedsOwner(c.UniqueCode, owner.ID))
		require.Equal(t, owner.Code, uniquecode.ProfessionalPrefix(c.UniqueCode))

		stored, err := f.store.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, c.UniqueCode, stored.UniqueCode)
	})

	t.Run("validates input", func(t *testing.T) {
		cases := map[string]NewClientInput{
			"missing last name": {FirstName: "Anna"},
			"bad email":         {FirstName: "Anna", LastName: "B", Email: "not-an-email"},
			"display name form": {FirstName: "Anna", LastName: "B", Email: "Anna <anna@example.com>"},
			"bad phone":         {FirstName: "Anna", LastName: "B", Phone: "12"},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := f.clients.CreateClient(ctx, owner.ID, in)
				require.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := f.clients.CreateClient(ctx, owner.ID+100, NewClientInput{FirstName: "A", LastName: "B"})
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})
}

func TestNormalisePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw, region, want string
		wantErr           bool
	}{
		{raw: "", want: ""},
		{raw: "+39 347 123 4567", want: "+393471234567"},
		{raw: "347 123 4567", want: "+393471234567"},
		{raw: "0412 345 678", region: "AU", want: "+61412345678"},
		{raw: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NormalisePhone(tt.raw, tt.region)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrValidation, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		require.Equal(t, tt.want, got, tt.raw)
	}
}

func TestOwnerScoping(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	alice := f.professional(t, "dr.alice")
	bob := f.professional(t, "dr.bob")
	c := f.client(t, alice.ID, "Anna")
	f.client(t, bob.ID, "Bruno")

	got, err := f.clients.GetOwnedClient(ctx, alice.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)

	_, err = f.clients.GetOwnedClient(ctx, bob.ID, c.ID)
	require.ErrorIs(t, err, ErrClientNotFound)

	list, err := f.clients.ListClients(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, c.ID, list[0].ID)
}

func TestReassignClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	alice := f.professional(t, "dr.alice")
	bob := f.professional(t, "dr.bob")

	f.clients.Now = func() time.Time { return time.UnixMilli(1750177330362) }
	c := f.client(t, alice.ID, "Anna")

	moved, err := f.clients.ReassignClient(ctx, alice.ID, c.ID, bob.ID)
	require.NoError(t, err)
	require.Equal(t, bob.ID, moved.OwnerID)
	require.True(t, uniquecode.EmbedsOwner(moved.UniqueCode, bob.ID))
	require.NotEqual(t, c.UniqueCode, moved.UniqueCode)

	// The previous owner can no longer see or move it.
	_, err = f.clients.ReassignClient(ctx, alice.ID, c.ID, alice.ID)
	require.ErrorIs(t, err, ErrClientNotFound)

	back, err := f.clients.ReassignClient(ctx, bob.ID, c.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, c.UniqueCode, back.UniqueCode, "codes are derived, so moving back restores the original")

	_, err = f.clients.ReassignClient(ctx, alice.ID, c.ID, bob.ID+100)
	require.ErrorIs(t, err, ErrProfessionalNotFound)

	_, err = f.clients.ReassignClient(ctx, alice.ID, c.ID, 0)
	require.ErrorIs(t, err, ErrValidation)
}

func TestReassignToProfessionalWithStaleCode(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	alice := f.professional(t, "dr.alice")
	bob := f.professional(t, "dr.bob")
	c := f.client(t, alice.ID, "Anna")
	require.NoError(t, f.store.Professionals().SetProfessionalCode(ctx, bob.ID, "PROF_099_ABCD"))

	moved, err := f.clients.ReassignClient(ctx, alice.ID, c.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, uniquecode.EmbedsOwner(moved.UniqueCode, bob.ID), moved.UniqueCode)

	report, err := f.codes.Audit(ctx)
	require.NoError(t, err)
	require.Zero(t, report.Inconsistent())
}
