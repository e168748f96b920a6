package repository

import (
	"context"
	"time"

	"github.com/deppfellow/travel-api/internal/database"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/mongoerr"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// appendAttempts bounds the retries when a concurrent first append creates
// the chat between our two updates.
const appendAttempts = 3

type ChatRepository struct {
	coll *mongo.Collection
}

func NewChatRepository(db *database.Database) *ChatRepository {
	return &ChatRepository{coll: db.Collection(database.CollectionChats)}
}

func (r *ChatRepository) FindByUser(ctx context.Context, userID string) (*model.Chat, error) {
	var chat model.Chat
	if err := r.coll.FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&chat); err != nil {
		return nil, mongoerr.NotFoundIn(database.CollectionChats, err)
	}
	return &chat, nil
}

// pushToConversation appends msg to an existing conversation.
func pushToConversation(userID, conversationID string, msg model.Message, now time.Time) (filter, update bson.D) {
	filter = bson.D{
		{Key: "userId", Value: userID},
		{Key: "conversation.conversationId", Value: conversationID},
	}
	update = bson.D{
		{Key: "$push", Value: bson.D{{Key: "conversation.$.messages", Value: msg}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}
	return filter, update
}

// openConversation adds a new conversation holding msg, creating the chat
// document when the user has none.
func openConversation(userID, conversationID string, msg model.Message, now time.Time) (filter, update bson.D) {
	filter = bson.D{
		{Key: "userId", Value: userID},
		{Key: "conversation.conversationId", Value: bson.D{{Key: "$ne", Value: conversationID}}},
	}
	update = bson.D{
		{Key: "$push", Value: bson.D{{Key: "conversation", Value: model.Conversation{
			ConversationID: conversationID,
			Messages:       []model.Message{msg},
		}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
	return filter, update
}

// AppendMessage pushes msg onto the user's conversation in place. The chat
// and the conversation are created on first use. Concurrent appends never
// overwrite each other.
func (r *ChatRepository) AppendMessage(ctx context.Context, userID, conversationID string, msg model.Message, now time.Time) (*model.Chat, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for attempt := 0; attempt < appendAttempts; attempt++ {
		var chat model.Chat

		filter, update := pushToConversation(userID, conversationID, msg, now)
		err := r.coll.FindOneAndUpdate(ctx, filter, update, after).Decode(&chat)
		if err == nil {
			return &chat, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(err, "append chat message")
		}

		filter, update = openConversation(userID, conversationID, msg, now)
		err = r.coll.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetUpsert(true)).Decode(&chat)
		switch {
		case err == nil:
			return &chat, nil
		case mongo.IsDuplicateKeyError(err):
			// Another request opened the chat or this conversation first.
			continue
		default:
			return nil, errors.Wrap(err, "open chat conversation")
		}
	}
	return nil, errors.Errorf("append chat message: conflicting writes for user %s", userID)
}

// PullConversation removes one conversation from the user's chat.
func (r *ChatRepository) PullConversation(ctx context.Context, userID, conversationID string, now time.Time) (*model.Chat, error) {
	var chat model.Chat
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{
			{Key: "userId", Value: userID},
			{Key: "conversation.conversationId", Value: conversationID},
		},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "conversation", Value: bson.D{{Key: "conversationId", Value: conversationID}}}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&chat)
	if err != nil {
		return nil, mongoerr.NotFoundIn(database.CollectionChats, err)
	}
	return &chat, nil
}
