package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/clientarea/pkg/uniquecode"
	"github.com/stretchr/testify/require"
)

func TestCodeAuditAndRepair(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	alice := f.professional(t, "dr.alice")
	bob := f.professional(t, "dr.bob")

	ok := f.client(t, alice.ID, "Anna")
	missing := f.rawClient(t, alice.ID, "Bruno")
	moved := f.client(t, alice.ID, "Carla")
	// Move without regenerating, as an old import would have.
	require.NoError(t, f.store.Clients().UpdateClientOwner(ctx, moved.ID, bob.ID, moved.UniqueCode))

	report, err := f.codes.Audit(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, report.Checked)
	require.Equal(t, []int64{missing.ID}, report.Missing)
	require.Equal(t, []int64{moved.ID}, report.Mismatched)
	require.Empty(t, report.Repaired)

	report, err = f.codes.Repair(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{missing.ID, moved.ID}, report.Repaired)

	for id, owner := range map[int64]int64{ok.ID: alice.ID, missing.ID: alice.ID, moved.ID: bob.ID} {
		c, err := f.store.Clients().GetClientByID(ctx, id)
		require.NoError(t, err)
		require.True(t, uniquecode.EmbedsOwner(c.UniqueCode, owner), c.UniqueCode)
	}

	unchanged, err := f.store.Clients().GetClientByID(ctx, ok.ID)
	require.NoError(t, err)
	require.Equal(t, ok.UniqueCode, unchanged.UniqueCode)

	again, err := f.codes.Repair(ctx)
	require.NoError(t, err)
	require.Zero(t, again.Inconsistent())
	require.Empty(t, again.Repaired)
}

func TestClientCodeIsStable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	stored, err := f.store.Clients().GetClientByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, c.UniqueCode, ClientCode(owner.Code, stored))
}

func TestRepairRegeneratesStaleProfessionalCode(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")
	c := f.rawClient(t, owner.ID, "Anna")
	require.NoError(t, f.store.Professionals().SetProfessionalCode(ctx, owner.ID, "PROF_099_ABCD"))

	report, err := f.codes.Repair(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{c.ID}, report.Repaired)

	stored, err := f.store.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, uniquecode.EmbedsOwner(stored.UniqueCode, owner.ID), stored.UniqueCode)

	p, err := f.professionals.GetProfessional(ctx, owner.ID)
	require.NoError(t, err)
	id, err := uniquecode.ParseProfessional(p.Code)
	require.NoError(t, err)
	require.Equal(t, owner.ID, id)
	require.Equal(t, uniquecode.ProfessionalPrefix(stored.UniqueCode), p.Code)

	again, err := f.codes.Repair(ctx)
	require.NoError(t, err)
	require.Zero(t, again.Inconsistent())
	require.Empty(t, again.Repaired)
}
