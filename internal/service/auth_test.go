package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, *auth.TokenService, model.User) {
	t.Helper()

	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &memUsers{}
	user := users.add(model.RoleCustomer)
	users.users[0].Password = hashed
	user.Password = hashed

	tokens := auth.NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, tokens), tokens, user
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, tokens, user := newTestAuthService(t)

	_, err := svc.Login(ctx, "nobody@example.com", "correct-horse")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.Login(ctx, user.Email, "wrong")
	requireStatus(t, err, http.StatusUnauthorized)

	session, err := svc.Login(ctx, user.Email, "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.User.ID)

	identity, err := tokens.VerifyAccessToken(session.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: user.ID.Hex(), Role: model.RoleCustomer}, identity)
}

func TestAuthService_Refresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, tokens, user := newTestAuthService(t)

	_, err := svc.Refresh(ctx, "")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.Refresh(ctx, "not-a-token")
	requireStatus(t, err, http.StatusForbidden)

	pair, err := tokens.Issue(auth.Identity{UserID: user.ID.Hex(), Role: user.Role})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	requireStatus(t, err, http.StatusForbidden)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}
