package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceKind distinguishes the two flat point-of-interest collections.
type PlaceKind string

const (
	KindDestination PlaceKind = "destination"
	KindRestaurant  PlaceKind = "restaurant"
)

type OpeningHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Place is a destination or a restaurant. EntryFee and Activities only apply
// to destinations, Utilities only to restaurants.
type Place struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Description  string             `bson:"description" json:"description"`
	Rating       float64            `bson:"rating" json:"rating"`
	RatingCount  int                `bson:"rating_count" json:"rating_count"`
	Images       []string           `bson:"images" json:"images"`
	Location     GeoPoint           `bson:"location" json:"location"`
	OpeningHours OpeningHours       `bson:"opening_hours" json:"opening_hours"`
	EntryFee     string             `bson:"entryFee,omitempty" json:"entryFee,omitempty"`
	Activities   []string           `bson:"activities,omitempty" json:"activities,omitempty"`
	Utilities    []string           `bson:"utilities,omitempty" json:"utilities,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// ImageURLs is derived from Images for map responses.
	ImageURLs []string `bson:"-" json:"imageUrls,omitempty"`
}

type PlacePatch struct {
	Name         *string
	Category     *string
	Description  *string
	Images       *[]string
	Location     *GeoPoint
	OpeningHours *OpeningHours
	EntryFee     *string
	Activities   *[]string
	Utilities    *[]string
}

func MergePlace(existing Place, patch PlacePatch, now time.Time) Place {
	merged := existing
	mergeString(&merged.Name, patch.Name)
	mergeString(&merged.Category, patch.Category)
	mergeString(&merged.Description, patch.Description)
	mergeString(&merged.EntryFee, patch.EntryFee)
	mergeStrings(&merged.Images, patch.Images)
	mergeStrings(&merged.Activities, patch.Activities)
	mergeStrings(&merged.Utilities, patch.Utilities)
	if patch.Location != nil {
		merged.Location = patch.Location.Normalize()
	}
	if patch.OpeningHours != nil {
		merged.OpeningHours = *patch.OpeningHours
	}
	merged.UpdatedAt = now
	return merged
}

// RatingUpdate replaces the aggregate rating of a place.
type RatingUpdate struct {
	Rating      float64
	RatingCount int
}

// ValidateRating requires a rating in [0, 5] and a non-negative count.
func ValidateRating(r RatingUpdate) error {
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if r.RatingCount < 0 {
		return fmt.Errorf("rating_count must not be negative")
	}
	return nil
}

// WithImageURLs returns a copy with ImageURLs derived from Images.
func (p Place) WithImageURLs(baseURL string) Place {
	p.ImageURLs = make([]string, 0, len(p.Images))
	for _, key := range p.Images {
		p.ImageURLs = append(p.ImageURLs, baseURL+key)
	}
	return p
}
