package accesstoken_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/stretchr/testify/require"
)

const exampleCode = "PROF_014_9C1F_CLIENT_1750177330362_816C"

func TestMD5Codec(t *testing.T) {
	t.Parallel()
	codec := accesstoken.MD5Codec{}

	t.Run("matches tokens already printed on QR codes", func(t *testing.T) {
		token, err := codec.Compute(exampleCode, 14)
		require.NoError(t, err)
		require.Equal(t, exampleCode+"_5c1bfbc3", token)
	})

	t.Run("is deterministic", func(t *testing.T) {
		a, err := codec.Compute(exampleCode, 14)
		require.NoError(t, err)
		b, err := codec.Compute(exampleCode, 14)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("owner change yields a different token", func(t *testing.T) {
		token, err := codec.Compute(exampleCode, 15)
		require.NoError(t, err)
		require.Equal(t, exampleCode+"_c20e3d48", token)
	})

	t.Run("different codes yield different tokens", func(t *testing.T) {
		a, _ := codec.Compute("PROF_001_AAAA_CLIENT_001_BBBB", 1)
		b, _ := codec.Compute("PROF_001_AAAA_CLIENT_002_BBBB", 1)
		require.NotEqual(t, a, b)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := codec.Compute("", 14)
		require.ErrorIs(t, err, accesstoken.ErrEmptyCode)

		_, err = codec.Compute(exampleCode, 0)
		require.ErrorIs(t, err, accesstoken.ErrInvalidOwner)

		_, err = codec.Compute(exampleCode, -3)
		require.ErrorIs(t, err, accesstoken.ErrInvalidOwner)
	})
}

func TestHMACCodec(t *testing.T) {
	t.Parallel()

	t.Run("requires a secret", func(t *testing.T) {
		_, err := accesstoken.NewHMACCodec("")
		require.ErrorIs(t, err, accesstoken.ErrMissingSecret)
	})

	t.Run("keys the fingerprint", func(t *testing.T) {
		codec, err := accesstoken.NewHMACCodec("test-secret")
		require.NoError(t, err)

		token, err := codec.Compute(exampleCode, 14)
		require.NoError(t, err)
		require.Equal(t, exampleCode+"_5fd0996a75967d72", token)

		other, err := accesstoken.NewHMACCodec("other-secret")
		require.NoError(t, err)
		forged, err := other.Compute(exampleCode, 14)
		require.NoError(t, err)
		require.NotEqual(t, token, forged)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	codec, err := accesstoken.New("", "")
	require.NoError(t, err)
	require.Equal(t, accesstoken.AlgorithmMD5, codec.Algorithm())

	codec, err = accesstoken.New("HMAC-SHA256", "s3cret")
	require.NoError(t, err)
	require.Equal(t, accesstoken.AlgorithmHMACSHA256, codec.Algorithm())

	_, err = accesstoken.New("hmac-sha256", "")
	require.ErrorIs(t, err, accesstoken.ErrMissingSecret)

	_, err = accesstoken.New("sha1", "")
	require.ErrorIs(t, err, accesstoken.ErrUnknownAlgorithm)
}

func TestEqualAndFingerprint(t *testing.T) {
	t.Parallel()

	token := exampleCode + "_5c1bfbc3"
	require.True(t, accesstoken.Equal(token, token))
	require.False(t, accesstoken.Equal(token, exampleCode+"_00000000"))
	require.False(t, accesstoken.Equal(token, strings.TrimSuffix(token, "3")))

	require.Equal(t, "5c1bfbc3", accesstoken.Fingerprint(token))
	require.Empty(t, accesstoken.Fingerprint("nounderscore"))
}
