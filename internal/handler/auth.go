package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{Handler: NewHandler(s), auth: authService}
}

func (h *AuthHandler) setTokenCookies(c echo.Context, tokens auth.TokenPair) {
	cfg := h.server.Config
	secure := !cfg.IsLocal()

	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   int(cfg.Auth.AccessTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    tokens.RefreshToken,
		Path:     "/api/refreshToken",
		MaxAge:   int(cfg.Auth.RefreshTTL / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

type LoginData struct {
	DataUser     *model.User `json:"dataUser"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (Envelope, error) {
	session, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return Envelope{}, err
	}

	h.setTokenCookies(c, session.Tokens)
	return success("Login success", LoginData{
		DataUser:     session.User,
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	}), nil
}

// RefreshRequest takes the refresh token from the body; the cookie wins
// when both are present.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshRequest) Validate() error { return nil }

type RefreshData struct {
	AccessToken string `json:"accessToken"`
}

func (h *AuthHandler) Refresh(c echo.Context, req *RefreshRequest) (Envelope, error) {
	token := req.RefreshToken
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		token = cookie.Value
	}

	tokens, err := h.auth.Refresh(c.Request().Context(), token)
	if err != nil {
		return Envelope{}, err
	}

	h.setTokenCookies(c, tokens)
	return success("Token refreshed", RefreshData{AccessToken: tokens.AccessToken}), nil
}
