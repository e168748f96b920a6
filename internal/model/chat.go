package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// Chat holds every conversation of one user.
type Chat struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID        string             `bson:"userId" json:"userId"`
	Conversations []Conversation     `bson:"conversation" json:"conversation"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Conversation struct {
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	Messages       []Message `bson:"messages" json:"messages"`
}

type Message struct {
	Role      string    `bson:"role" json:"role"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func ValidChatRole(role string) bool {
	return role == ChatRoleUser || role == ChatRoleBot
}

// NewChat starts an empty chat for userID.
func NewChat(userID string, now time.Time) *Chat {
	return &Chat{UserID: userID, Conversations: []Conversation{}, CreatedAt: now, UpdatedAt: now}
}

// Append adds msg to the conversation, opening it when it does not exist yet.
func (c *Chat) Append(conversationID string, msg Message, now time.Time) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	c.UpdatedAt = now

	i := indexOf(c.Conversations, func(conv Conversation) bool { return conv.ConversationID == conversationID })
	if i < 0 {
		c.Conversations = append(c.Conversations, Conversation{ConversationID: conversationID, Messages: []Message{msg}})
		return
	}
	c.Conversations[i].Messages = append(c.Conversations[i].Messages, msg)
}

func (c *Chat) RemoveConversation(conversationID string, now time.Time) error {
	i := indexOf(c.Conversations, func(conv Conversation) bool { return conv.ConversationID == conversationID })
	if i < 0 {
		return ErrChildNotFound
	}
	c.Conversations = removeAt(c.Conversations, i)
	c.UpdatedAt = now
	return nil
}
