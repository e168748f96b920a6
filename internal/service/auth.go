package service

import (
	"context"
	"strings"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type tokenIssuer interface {
	Issue(id auth.Identity) (auth.TokenPair, error)
	VerifyRefreshToken(token string) (auth.Identity, error)
}

type userLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	users  userLookup
	tokens tokenIssuer
}

func NewAuthService(users userLookup, tokens tokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Session is a logged-in user and its tokens.
type Session struct {
	User   *model.User
	Tokens auth.TokenPair
}

func identityOf(u *model.User) auth.Identity {
	return auth.Identity{UserID: u.ID.Hex(), Role: u.Role}
}

// Login checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	invalid := errs.NewUnauthorizedError("Invalid email or password", true)

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if isNotFound(err) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, invalid
	}

	tokens, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "issue tokens")
	}
	return &Session{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a refresh token for a new token pair. The role is read
// again from the account so a role change takes effect on refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if refreshToken == "" {
		return auth.TokenPair{}, errs.NewUnauthorizedError("Refresh token is required", true)
	}

	identity, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, errs.NewForbiddenError("Invalid refresh token", true)
	}

	id, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return auth.TokenPair{}, errs.NewForbiddenError("Invalid refresh token", true)
	}
	user, err := s.users.FindByID(ctx, id)
	if isNotFound(err) {
		return auth.TokenPair{}, errs.NewForbiddenError("Invalid refresh token", true)
	}
	if err != nil {
		return auth.TokenPair{}, err
	}

	tokens, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return auth.TokenPair{}, errors.Wrap(err, "issue tokens")
	}
	return tokens, nil
}
