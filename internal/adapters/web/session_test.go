package web

import (
	"errors"
	"testing"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_RoundTrip(t *testing.T) {
	s := NewSessions(testSecret, time.Hour, false)
	user := &domain.User{ID: "42", DisplayName: "Nelly", Email: "nelly@example.com", AvatarURL: "https://cdn/a.png"}

	token, err := s.Issue(user)
	require.NoError(t, err)

	got, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestSessions_Parse_Rejects(t *testing.T) {
	s := NewSessions(testSecret, time.Hour, false)
	user := &domain.User{ID: "42", DisplayName: "Nelly"}

	otherSecret, err := NewSessions("ffffffffffffffffffffffffffffffff", time.Hour, false).Issue(user)
	require.NoError(t, err)

	past := NewSessions(testSecret, time.Hour, false)
	past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := past.Issue(user)
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42", Issuer: issuer},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"other secret": otherSecret,
		"expired":      expired,
		"wrong alg":    wrongAlg,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Parse(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSession))
		})
	}
}
