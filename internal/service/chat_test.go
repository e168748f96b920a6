package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memChats serializes writes the way single-document updates do on the server.
type memChats struct {
	mu    sync.Mutex
	chats map[string]model.Chat
}

func (m *memChats) FindByUser(_ context.Context, userID string) (*model.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	chat, ok := m.chats[userID]
	if !ok {
		return nil, missing("chats")
	}
	chat.Conversations = append([]model.Conversation(nil), chat.Conversations...)
	return &chat, nil
}

func (m *memChats) AppendMessage(_ context.Context, userID, conversationID string, msg model.Message, now time.Time) (*model.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	chat, ok := m.chats[userID]
	if !ok {
		chat = *model.NewChat(userID, now)
	}
	chat.Conversations = cloneConversations(chat.Conversations)
	chat.Append(conversationID, msg, now)
	m.chats[userID] = chat
	return &chat, nil
}

func (m *memChats) PullConversation(_ context.Context, userID, conversationID string, now time.Time) (*model.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	chat, ok := m.chats[userID]
	if !ok {
		return nil, missing("chats")
	}
	chat.Conversations = cloneConversations(chat.Conversations)
	if err := chat.RemoveConversation(conversationID, now); err != nil {
		return nil, missing("chats")
	}
	m.chats[userID] = chat
	return &chat, nil
}

func cloneConversations(in []model.Conversation) []model.Conversation {
	out := make([]model.Conversation, len(in))
	for i, c := range in {
		out[i] = model.Conversation{ConversationID: c.ConversationID, Messages: append([]model.Message(nil), c.Messages...)}
	}
	return out
}

func TestChatService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &memChats{chats: map[string]model.Chat{}}
	svc := NewChatService(store)
	svc.now = fixedClock

	owner := auth.Identity{UserID: "u1", Role: model.RoleCustomer}
	stranger := auth.Identity{UserID: "u2", Role: model.RoleCustomer}
	admin := auth.Identity{UserID: "a1", Role: model.RoleAdmin}

	_, err := svc.Get(ctx, owner, "u1")
	requireStatus(t, err, http.StatusNotFound)

	chat, err := svc.Append(ctx, owner, "u1", "c1", model.Message{Role: model.ChatRoleUser, Message: "Xin chào"})
	require.NoError(t, err)
	require.Len(t, chat.Conversations, 1)
	assert.Equal(t, fixedNow, chat.Conversations[0].Messages[0].CreatedAt)

	_, err = svc.Append(ctx, admin, "u1", "c1", model.Message{Role: model.ChatRoleBot, Message: "Hello"})
	require.NoError(t, err)
	assert.Len(t, store.chats["u1"].Conversations[0].Messages, 2)

	_, err = svc.Append(ctx, stranger, "u1", "c1", model.Message{Role: model.ChatRoleUser, Message: "hi"})
	requireStatus(t, err, http.StatusForbidden)

	_, err = svc.DeleteConversation(ctx, owner, "u1", "c9")
	requireStatus(t, err, http.StatusNotFound)

	chat, err = svc.DeleteConversation(ctx, owner, "u1", "c1")
	require.NoError(t, err)
	assert.Empty(t, chat.Conversations)
}

func TestChatService_ConcurrentAppendsKeepEveryMessage(t *testing.T) {
	t.Parallel()
	store := &memChats{chats: map[string]model.Chat{}}
	svc := NewChatService(store)
	owner := auth.Identity{UserID: "u1", Role: model.RoleCustomer}

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Append(context.Background(), owner, "u1", "c1", model.Message{Role: model.ChatRoleUser, Message: "hi"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	chat, err := svc.Get(context.Background(), owner, "u1")
	require.NoError(t, err)
	require.Len(t, chat.Conversations, 1)
	assert.Len(t, chat.Conversations[0].Messages, writers)
}
