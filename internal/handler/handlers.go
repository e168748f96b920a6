package handler

import (
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Hotels       *HotelHandler
	Cuisines     *CuisineHandler
	Itineraries  *ItineraryHandler
	Destinations *PlaceHandler
	Restaurants  *PlaceHandler
	Map          *MapHandler
	News         *NewsHandler
	Reviews      *ReviewHandler
	Users        *UserHandler
	Auth         *AuthHandler
	Chats        *ChatHandler
	Uploads      *UploadHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Hotels:       NewHotelHandler(s, services.Hotels),
		Cuisines:     NewCuisineHandler(s, services.Cuisines),
		Itineraries:  NewItineraryHandler(s, services.Itineraries),
		Destinations: NewPlaceHandler(s, services.Destinations, model.KindDestination),
		Restaurants:  NewPlaceHandler(s, services.Restaurants, model.KindRestaurant),
		Map:          NewMapHandler(s, services.Map),
		News:         NewNewsHandler(s, services.News),
		Reviews:      NewReviewHandler(s, services.Reviews),
		Users:        NewUserHandler(s, services.Users),
		Auth:         NewAuthHandler(s, services.Auth),
		Chats:        NewChatHandler(s, services.Chats),
		Uploads:      NewUploadHandler(s, services.Uploads),
	}
}
