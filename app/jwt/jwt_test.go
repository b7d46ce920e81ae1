package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "pageforge", Validity: 7 * 24 * time.Hour}

	token, err := s.Sign("user-1", "alice")
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "pageforge", claims.Issuer)
	require.WithinDuration(t, time.Now().Add(s.Validity), claims.ExpiresAt.Time, time.Minute)
}

func TestParseExpiredToken(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "pageforge", Validity: -time.Minute}

	token, err := s.Sign("user-1", "alice")
	require.NoError(t, err)

	_, err = s.Parse(token)
	require.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "pageforge", Validity: time.Hour}
	other := &Signer{Secret: []byte("different"), Issuer: "pageforge", Validity: time.Hour}

	token, err := s.Sign("user-1", "alice")
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	s := &Signer{Secret: []byte("secret"), Issuer: "pageforge", Validity: time.Hour}
	_, err := s.Parse("not-a-token")
	require.Error(t, err)
}
