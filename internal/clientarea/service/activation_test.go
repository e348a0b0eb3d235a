package service

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"
	"testing"

	"github.com/aussiebroadwan/clientarea/pkg/qrx"
	"github.com/stretchr/testify/require"
)

func TestActivationLink(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	link, err := f.activation.Link(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, link.ClientID)
	require.Equal(t, "Anna Bianchi", link.ClientName)
	require.True(t, strings.HasPrefix(link.Token, c.UniqueCode+"_"), link.Token)
	require.Equal(t,
		fmt.Sprintf("https://example.com/client-area?token=%s&clientId=%d&autoLogin=true", link.Token, c.ID),
		link.URL)

	again, err := f.activation.Link(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, link, again)

	t.Run("other owners cannot build it", func(t *testing.T) {
		bob := f.professional(t, "dr.bob")
		_, err := f.activation.Link(ctx, bob.ID, c.ID)
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("needs a unique code", func(t *testing.T) {
		raw := f.rawClient(t, owner.ID, "Carla")
		_, err := f.activation.Link(ctx, owner.ID, raw.ID)
		require.ErrorIs(t, err, ErrUniqueCodeMissing)
	})
}

func TestActivationQRCode(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	owner := f.professional(t, "dr.rossi")
	c := f.client(t, owner.ID, "Anna")

	data, err := f.activation.QRCode(context.Background(), owner.ID, c.ID, 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dx())
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dy())
}
