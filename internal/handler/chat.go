package handler

import (
	"net/http"

	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	Handler
	chats *service.ChatService
}

func NewChatHandler(s *server.Server, chats *service.ChatService) *ChatHandler {
	return &ChatHandler{Handler: NewHandler(s), chats: chats}
}

type AppendChatRequest struct {
	UserID         string `json:"userId" validate:"required"`
	ConversationID string `json:"conversationId" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=user bot"`
	Message        string `json:"message" validate:"required"`
}

func (r *AppendChatRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ChatHandler) Append(c echo.Context, req *AppendChatRequest) (Response, error) {
	caller, err := identity(c)
	if err != nil {
		return Response{}, err
	}

	msg := model.Message{Role: req.Role, Message: req.Message}
	chat, err := h.chats.Append(c.Request().Context(), caller, req.UserID, req.ConversationID, msg)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: http.StatusCreated, Body: success("Message saved", chat)}, nil
}

type ChatUserRequest struct {
	UserID string `param:"userId" validate:"required"`
}

func (r *ChatUserRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ChatHandler) Get(c echo.Context, req *ChatUserRequest) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}
	chat, err := h.chats.Get(c.Request().Context(), caller, req.UserID)
	if err != nil {
		return Envelope{}, err
	}
	return success("", chat), nil
}

type DeleteConversationRequest struct {
	UserID         string `param:"userId" validate:"required"`
	ConversationID string `param:"conversationId" validate:"required"`
}

func (r *DeleteConversationRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ChatHandler) DeleteConversation(c echo.Context, req *DeleteConversationRequest) (Envelope, error) {
	caller, err := identity(c)
	if err != nil {
		return Envelope{}, err
	}
	chat, err := h.chats.DeleteConversation(c.Request().Context(), caller, req.UserID, req.ConversationID)
	if err != nil {
		return Envelope{}, err
	}
	return success("Conversation deleted", chat), nil
}
