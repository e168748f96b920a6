// Package repository handles all interactions with MongoDB.
//
// Each repository owns one collection and hides its query shapes (filters,
// aggregation pipelines, positional updates) from the service layer.
// Grouped collections share the grouped helper so every child write is a
// single-document update.
package repository

import (
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Hotels       *HotelRepository
	Cuisines     *CuisineRepository
	Itineraries  *ItineraryRepository
	Destinations *PlaceRepository
	Restaurants  *PlaceRepository
	News         *NewsRepository
	Reviews      *ReviewRepository
	Users        *UserRepository
	Chats        *ChatRepository
}

// NewRepositories constructs the repository container on top of s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Hotels:       NewHotelRepository(s.DB),
		Cuisines:     NewCuisineRepository(s.DB),
		Itineraries:  NewItineraryRepository(s.DB),
		Destinations: NewPlaceRepository(s.DB, model.KindDestination),
		Restaurants:  NewPlaceRepository(s.DB, model.KindRestaurant),
		News:         NewNewsRepository(s.DB),
		Reviews:      NewReviewRepository(s.DB),
		Users:        NewUserRepository(s.DB),
		Chats:        NewChatRepository(s.DB),
	}
}
