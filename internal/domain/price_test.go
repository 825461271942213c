package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceMarshalsFixedTwoDecimals(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9.99", `"9.99"`},
		{"500", `"500.00"`},
		{"500.0", `"500.00"`},
		{"14.999", `"15.00"`},
	}
	for _, tc := range cases {
		p := MustPrice(tc.in)
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(b), "price %s", tc.in)
	}
}

func TestPriceUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var p Price
	require.NoError(t, json.Unmarshal([]byte(`"20.50"`), &p))
	assert.Equal(t, "20.50", p.String())

	require.NoError(t, json.Unmarshal([]byte(`500.0`), &p))
	assert.Equal(t, "500.00", p.String())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &p))
}

func TestPriceScanRoundTrip(t *testing.T) {
	v, err := MustPrice("8.99").Value()
	require.NoError(t, err)
	assert.Equal(t, "8.99", v)

	var p Price
	require.NoError(t, p.Scan("19.99"))
	assert.Equal(t, "19.99", p.String())
}

func TestRolesHas(t *testing.T) {
	r := Roles{RoleAdmin, RoleUser}
	assert.True(t, r.Has(RoleAdmin))
	assert.True(t, r.Has(RoleUser))
	assert.False(t, Roles{RoleUser}.Has(RoleAdmin))
}
