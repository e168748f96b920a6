package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type News struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CategoryNews string             `bson:"categoryNews" json:"categoryNews"`
	TitleNews    string             `bson:"titleNews" json:"titleNews"`
	ImageNews    string             `bson:"imageNews" json:"imageNews"`
	Content      string             `bson:"content" json:"content"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type NewsPatch struct {
	CategoryNews *string
	TitleNews    *string
	ImageNews    *string
	Content      *string
}

func MergeNews(existing News, patch NewsPatch, now time.Time) News {
	merged := existing
	mergeString(&merged.CategoryNews, patch.CategoryNews)
	mergeString(&merged.TitleNews, patch.TitleNews)
	mergeString(&merged.ImageNews, patch.ImageNews)
	mergeString(&merged.Content, patch.Content)
	merged.UpdatedAt = now
	return merged
}
