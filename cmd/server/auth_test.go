package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValueRoundTrip(t *testing.T) {
	auth, err := newAuthService(nil, "secret", false)
	require.NoError(t, err)

	value := auth.createSessionValue("admin@carcost.dev")
	email, ok := auth.verifySessionValue(value)

	assert.True(t, ok)
	assert.Equal(t, "admin@carcost.dev", email)
}

func TestSessionValueRejectsTampering(t *testing.T) {
	auth, err := newAuthService(nil, "secret", false)
	require.NoError(t, err)
	other, err := newAuthService(nil, "other-secret", false)
	require.NoError(t, err)

	value := auth.createSessionValue("admin@carcost.dev")
	payload, signature, _ := strings.Cut(value, ".")

	cases := map[string]string{
		"other secret":    other.createSessionValue("admin@carcost.dev"),
		"swapped payload": "ZXZpbEBjYXJjb3N0LmRldg." + signature,
		"bad hex":         payload + ".zz",
		"extra part":      value + ".x",
		"no separator":    payload,
		"empty":           "",
	}
	for name, v := range cases {
		_, ok := auth.verifySessionValue(v)
		assert.False(t, ok, name)
	}
}

func TestEmptySecretIsRandomised(t *testing.T) {
	a, err := newAuthService(nil, "", false)
	require.NoError(t, err)
	b, err := newAuthService(nil, "", false)
	require.NoError(t, err)

	assert.Len(t, a.sessionSecret, 32)
	_, ok := b.verifySessionValue(a.createSessionValue("admin@carcost.dev"))
	assert.False(t, ok)
}
