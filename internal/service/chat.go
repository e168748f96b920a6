package service

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/model"
)

type ChatStore interface {
	FindByUser(ctx context.Context, userID string) (*model.Chat, error)
	AppendMessage(ctx context.Context, userID, conversationID string, msg model.Message, now time.Time) (*model.Chat, error)
	PullConversation(ctx context.Context, userID, conversationID string, now time.Time) (*model.Chat, error)
}

type ChatService struct {
	store ChatStore
	now   clock
}

func NewChatService(store ChatStore) *ChatService {
	return &ChatService{store: store, now: time.Now}
}

func canAccessChat(caller auth.Identity, userID string) error {
	if caller.UserID != userID && !caller.IsAdmin() {
		return errs.NewForbiddenError("You can only access your own chats", true)
	}
	return nil
}

// Append adds a message to the user's conversation, creating the chat and
// the conversation on first use.
func (s *ChatService) Append(ctx context.Context, caller auth.Identity, userID, conversationID string, msg model.Message) (*model.Chat, error) {
	if err := canAccessChat(caller, userID); err != nil {
		return nil, err
	}

	now := s.now()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	return s.store.AppendMessage(ctx, userID, conversationID, msg, now)
}

func (s *ChatService) Get(ctx context.Context, caller auth.Identity, userID string) (*model.Chat, error) {
	if err := canAccessChat(caller, userID); err != nil {
		return nil, err
	}

	chat, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, rootOrNotFound(err, "Chat")
	}
	return chat, nil
}

func (s *ChatService) DeleteConversation(ctx context.Context, caller auth.Identity, userID, conversationID string) (*model.Chat, error) {
	if _, err := s.Get(ctx, caller, userID); err != nil {
		return nil, err
	}

	chat, err := s.store.PullConversation(ctx, userID, conversationID, s.now())
	if isNotFound(err) {
		return nil, childError(model.ErrChildNotFound, "Conversation")
	}
	if err != nil {
		return nil, err
	}
	return chat, nil
}
