package uniquecode_test

import (
	"testing"

	"github.com/aussiebroadwan/clientarea/pkg/uniquecode"
	"github.com/stretchr/testify/require"
)

func TestProfessional(t *testing.T) {
	t.Parallel()

	code := uniquecode.Professional(1, "0")
	require.Equal(t, "PROF_001_6E48", code)

	owner, err := uniquecode.ParseProfessional(code)
	require.NoError(t, err)
	require.EqualValues(t, 1, owner)

	// Salt only changes the hash.
	other := uniquecode.Professional(1, "1")
	require.NotEqual(t, code, other)
	require.Equal(t, "PROF_001_", other[:9])
}

func TestClient(t *testing.T) {
	t.Parallel()

	code := uniquecode.Client("PROF_001_ABCD", 7, "0")
	require.Equal(t, "PROF_001_ABCD_CLIENT_007_3B5B", code)
	require.Equal(t, "PROF_001_ABCD", uniquecode.ProfessionalPrefix(code))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		want    uniquecode.Parts
		wantErr bool
	}{
		{
			name: "long client id",
			code: "PROF_014_9C1F_CLIENT_1750177330362_816C",
			want: uniquecode.Parts{OwnerID: 14, ProfessionalHash: "9C1F", ClientID: 1750177330362, ClientHash: "816C"},
		},
		{
			name: "owner id wider than padding",
			code: "PROF_1234_ABCD_CLIENT_005_0F0F",
			want: uniquecode.Parts{OwnerID: 1234, ProfessionalHash: "ABCD", ClientID: 5, ClientHash: "0F0F"},
		},
		{name: "lower case hash", code: "PROF_014_9c1f_CLIENT_001_816C", wantErr: true},
		{name: "missing client part", code: "PROF_014_9C1F", wantErr: true},
		{name: "short owner", code: "PROF_14_9C1F_CLIENT_001_816C", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := uniquecode.Parse(tt.code)
			if tt.wantErr {
				require.ErrorIs(t, err, uniquecode.ErrMalformed)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, parts)
		})
	}
}

func TestEmbedsOwner(t *testing.T) {
	t.Parallel()

	code := uniquecode.Client(uniquecode.Professional(14, "x"), 3, "y")
	require.True(t, uniquecode.EmbedsOwner(code, 14))
	require.False(t, uniquecode.EmbedsOwner(code, 15))
	require.False(t, uniquecode.EmbedsOwner("garbage", 14))
}
