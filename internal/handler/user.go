package handler

import (
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

// RegisterRequest creates a customer. A role in the body is ignored.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) Register(c echo.Context, req *RegisterRequest) (Envelope, error) {
	user, err := h.users.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return Envelope{}, err
	}
	return success("User registered", user), nil
}

func (h *UserHandler) List(c echo.Context, _ *NoBody) (Envelope, error) {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return Envelope{}, err
	}
	return success("", users), nil
}

func (h *UserHandler) Me(c echo.Context, _ *NoBody) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}
	user, err := h.users.Me(c.Request().Context(), caller)
	if err != nil {
		return Envelope{}, err
	}
	return success("", user), nil
}

type PublicProfileRequest struct {
	UserID string `param:"userId" validate:"required"`
}

func (r *PublicProfileRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) PublicProfile(c echo.Context, req *PublicProfileRequest) (service.PublicProfile, error) {
	id, err := validation.ParseObjectID("userId", req.UserID)
	if err != nil {
		return service.PublicProfile{}, err
	}
	return h.users.PublicProfile(c.Request().Context(), id)
}

type UpdateProfileRequest struct {
	ID       string  `param:"id" json:"-" validate:"required"`
	Username *string `json:"username" validate:"omitempty,min=2,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) UpdateProfile(c echo.Context, req *UpdateProfileRequest) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}

	update := service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Password: req.Password,
	}
	user, err := h.users.UpdateProfile(c.Request().Context(), caller, id, update)
	if err != nil {
		return Envelope{}, err
	}
	return success("Profile updated", user), nil
}

type ChangeRoleRequest struct {
	ID   string `param:"id" json:"-" validate:"required"`
	Role string `json:"role" validate:"required"`
}

func (r *ChangeRoleRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) ChangeRole(c echo.Context, req *ChangeRoleRequest) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}

	user, err := h.users.ChangeRole(c.Request().Context(), caller, id, req.Role)
	if err != nil {
		return Envelope{}, err
	}
	return success("Role updated", user), nil
}

type DeleteUserRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *DeleteUserRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) Delete(c echo.Context, req *DeleteUserRequest) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}
	id, err := validation.ParseObjectID("id", req.ID)
	if err != nil {
		return Envelope{}, err
	}

	if err := h.users.Delete(c.Request().Context(), caller, id); err != nil {
		return Envelope{}, err
	}
	return success("User deleted", nil), nil
}
