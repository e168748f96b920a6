package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestService()
	pair, err := s.Issue(Identity{UserID: "u1", Role: "admin"})
	require.NoError(t, err)

	id, err := s.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "u1", Role: "admin"}, id)
	assert.True(t, id.IsAdmin())

	id, err = s.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
}

func TestTokenService_KindsAreNotInterchangeable(t *testing.T) {
	t.Parallel()

	s := newTestService()
	pair, err := s.Issue(Identity{UserID: "u1", Role: "customer"})
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = s.VerifyRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	s := newTestService()
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.CreateAccessToken(Identity{UserID: "u1"})
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	t.Parallel()

	_, err := newTestService().VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
