package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	raw, err := Generate("u1", "MANAGER", "secret", time.Minute)
	require.NoError(t, err)

	claims, err := Parse(raw, "secret")
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "MANAGER", claims.Role)
	require.Equal(t, "flowdesk", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := Generate("u1", "DEVELOPER", "secret", time.Minute)
	require.NoError(t, err)

	_, err = Parse(raw, "wrong")
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	raw, err := Generate("u1", "DEVELOPER", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(raw, "secret")
	require.Error(t, err)
}
