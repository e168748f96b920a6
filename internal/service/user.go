package service

import (
	"context"
	"strings"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	All(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Replace(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type welcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, username string) error
}

type UserService struct {
	store  UserStore
	jobs   welcomeEnqueuer
	logger *zerolog.Logger
	now    clock
}

func NewUserService(store UserStore, jobs welcomeEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{store: store, jobs: jobs, logger: logger, now: time.Now}
}

var codeEmailExists = "EMAIL_ALREADY_EXISTS"

// Register creates a customer account and schedules its welcome email.
// A failure to enqueue the email does not fail the registration.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.store.FindByEmail(ctx, email)
	if err == nil {
		return nil, errs.NewBadRequestError("Email already exists", true, &codeEmailExists, nil, nil)
	}
	if !isNotFound(err) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "register user")
	}

	now := s.now()
	user := &model.User{
		Username:  username,
		Email:     email,
		Password:  hashed,
		Role:      model.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.jobs != nil {
		if err := s.jobs.EnqueueWelcomeEmail(ctx, user.Email, user.Username); err != nil {
			s.logger.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.All(ctx)
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, rootOrNotFound(err, "User")
	}
	return user, nil
}

// Me returns the account of the caller.
func (s *UserService) Me(ctx context.Context, caller auth.Identity) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		return nil, notFound("User")
	}
	return s.Get(ctx, id)
}

// ProfileUpdate is a profile change made by the owner or an admin.
// The role is changed through ChangeRole only.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Avatar   *string
	Password *string
}

func (s *UserService) UpdateProfile(ctx context.Context, caller auth.Identity, id primitive.ObjectID, update ProfileUpdate) (*model.User, error) {
	if caller.UserID != id.Hex() && !caller.IsAdmin() {
		return nil, errs.NewForbiddenError("You can only update your own profile", true)
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := model.UserPatch{Username: update.Username, Avatar: update.Avatar}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		patch.Email = &email
	}
	if update.Password != nil {
		hashed, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, errors.Wrap(err, "update profile")
		}
		patch.Password = &hashed
	}

	merged := model.MergeUser(*existing, patch, s.now())
	if err := s.store.Replace(ctx, merged); err != nil {
		return nil, rootOrNotFound(err, "User")
	}
	return &merged, nil
}

// guardTarget loads the target of an admin action. Admins can not act on
// themselves or on other admins.
func (s *UserService) guardTarget(ctx context.Context, caller auth.Identity, id primitive.ObjectID, action string) (*model.User, error) {
	if caller.UserID == id.Hex() {
		return nil, errs.NewForbiddenError("You cannot "+action+" your own account", true)
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.IsAdmin() {
		return nil, errs.NewForbiddenError("You cannot "+action+" another admin", true)
	}
	return target, nil
}

func (s *UserService) ChangeRole(ctx context.Context, caller auth.Identity, id primitive.ObjectID, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, errs.NewBadRequestError("Invalid role", true, nil,
			[]errs.FieldError{{Field: "role", Error: "must be one of: customer admin"}}, nil)
	}

	target, err := s.guardTarget(ctx, caller, id, "change the role of")
	if err != nil {
		return nil, err
	}

	merged := model.MergeUser(*target, model.UserPatch{Role: &role}, s.now())
	if err := s.store.Replace(ctx, merged); err != nil {
		return nil, rootOrNotFound(err, "User")
	}
	return &merged, nil
}

func (s *UserService) Delete(ctx context.Context, caller auth.Identity, id primitive.ObjectID) error {
	if _, err := s.guardTarget(ctx, caller, id, "delete"); err != nil {
		return err
	}
	return rootOrNotFound(s.store.Delete(ctx, id), "User")
}

// PublicProfile is what other users see next to a review.
type PublicProfile struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (s *UserService) PublicProfile(ctx context.Context, id primitive.ObjectID) (PublicProfile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return PublicProfile{}, err
	}
	return PublicProfile{Username: user.Username, Avatar: user.Avatar}, nil
}
