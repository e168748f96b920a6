package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCuisineProvince_Lifecycle(t *testing.T) {
	t.Parallel()

	c := NewCuisineProvince("Hue", "hue", "Mien Trung", "hue.jpg", Food{FoodID: "f1", FoodName: "Bun bo"}, now)
	require.Len(t, c.Foods, 1)
	assert.Equal(t, now, c.Foods[0].CreatedAt)

	_, err := c.AddFood(Food{FoodID: "f2", FoodName: "Bun bo"}, now)
	assert.ErrorIs(t, err, ErrDuplicateChild)

	later := now.Add(time.Hour)
	updated, err := c.UpdateFood("f1", FoodPatch{FoodDesc: strPtr("spicy")}, later)
	require.NoError(t, err)
	assert.Equal(t, "Bun bo", updated.FoodName)
	assert.Equal(t, "spicy", updated.FoodDesc)
	assert.Equal(t, now, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)

	_, err = c.UpdateFood("f9", FoodPatch{}, later)
	assert.ErrorIs(t, err, ErrChildNotFound)

	require.NoError(t, c.RemoveFood("f1", later))
	assert.Empty(t, c.Foods)
}

func TestItineraryProvince_Lifecycle(t *testing.T) {
	t.Parallel()

	first := ItineraryEntry{TimeTrip: "3 days", Content: "Ha Long", UserCreate: "u1"}
	p := NewItineraryProvince("Quang Ninh", "quang-ninh", first, now)
	require.Len(t, p.Entries, 1)
	assert.False(t, p.Entries[0].ID.IsZero(), "entries get an id on insert")

	_, err := p.AddEntry(first, now)
	assert.ErrorIs(t, err, ErrDuplicateChild)

	second, err := p.AddEntry(ItineraryEntry{TimeTrip: "2 days", Content: "Co To", UserCreate: "u1"}, now)
	require.NoError(t, err)

	updated, err := p.UpdateEntry(second.ID, ItineraryEntryPatch{Content: strPtr("Quan Lan")}, now)
	require.NoError(t, err)
	assert.Equal(t, "2 days", updated.TimeTrip)
	assert.Equal(t, "Quan Lan", updated.Content)

	assert.ErrorIs(t, p.RemoveEntry(primitive.NewObjectID(), now), ErrChildNotFound)
	require.NoError(t, p.RemoveEntry(second.ID, now))
	assert.Len(t, p.Entries, 1)
}

func TestChat_AppendAndRemove(t *testing.T) {
	t.Parallel()

	c := NewChat("u1", now)
	c.Append("c1", Message{Role: ChatRoleUser, Message: "hi"}, now)
	c.Append("c1", Message{Role: ChatRoleBot, Message: "hello"}, now)
	c.Append("c2", Message{Role: ChatRoleUser, Message: "again"}, now)

	require.Len(t, c.Conversations, 2)
	assert.Len(t, c.Conversations[0].Messages, 2)
	assert.Equal(t, now, c.Conversations[0].Messages[0].CreatedAt)

	require.NoError(t, c.RemoveConversation("c1", now))
	assert.ErrorIs(t, c.RemoveConversation("c1", now), ErrChildNotFound)
	assert.Equal(t, "c2", c.Conversations[0].ConversationID)
}

func TestValidateRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		update  RatingUpdate
		wantErr bool
	}{
		{"zero", RatingUpdate{0, 0}, false},
		{"upper bound", RatingUpdate{5, 12}, false},
		{"above five", RatingUpdate{5.1, 1}, true},
		{"negative", RatingUpdate{-1, 1}, true},
		{"negative count", RatingUpdate{3, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRating(tt.update)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlace_WithImageURLs(t *testing.T) {
	t.Parallel()

	p := Place{Images: []string{"a.jpg", "b.jpg"}}
	withURLs := p.WithImageURLs("https://cdn.example.com/")
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, withURLs.ImageURLs)
	assert.Nil(t, p.ImageURLs)
}

func TestMergeUser(t *testing.T) {
	t.Parallel()

	u := User{Username: "an", Email: "an@example.com", Role: RoleCustomer}
	merged := MergeUser(u, UserPatch{Username: strPtr("binh")}, now)
	assert.Equal(t, "binh", merged.Username)
	assert.Equal(t, "an@example.com", merged.Email)
	assert.Equal(t, RoleCustomer, merged.Role)
	assert.False(t, UserPatch{}.ChangesRole())
	assert.True(t, UserPatch{Role: strPtr(RoleAdmin)}.ChangesRole())
}
