package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a named place (hotel, restaurant, destination).
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nameplate     string             `bson:"nameplate" json:"nameplate"`
	NameplateSlug string             `bson:"nameplateSlug" json:"nameplateSlug"`
	UserID        string             `bson:"userId" json:"userId"`
	Star          int                `bson:"star" json:"star"`
	Evaluate      string             `bson:"evaluate" json:"evaluate"`
	ReviewContent string             `bson:"reviewContent,omitempty" json:"reviewContent,omitempty"`
	ReviewImages  []string           `bson:"reviewImages,omitempty" json:"reviewImages,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
