package service

import (
	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/lib/job"
	"github.com/deppfellow/travel-api/internal/repository"
	"github.com/deppfellow/travel-api/internal/server"
)

type Services struct {
	Hotels       *HotelService
	Cuisines     *CuisineService
	Itineraries  *ItineraryService
	Destinations *PlaceService
	Restaurants  *PlaceService
	Map          *MapService
	News         *NewsService
	Reviews      *ReviewService
	Users        *UserService
	Auth         *AuthService
	Chats        *ChatService
	Uploads      *UploadService
	Tokens       *auth.TokenService
	Job          *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	tokens := auth.NewTokenService(
		s.Config.Auth.AccessSecret,
		s.Config.Auth.RefreshSecret,
		s.Config.Auth.AccessTTL,
		s.Config.Auth.RefreshTTL,
	)

	uploads := NewUploadService(nil)
	if s.Storage != nil {
		uploads = NewUploadService(s.Storage)
	}

	var jobs welcomeEnqueuer
	if s.Job != nil {
		jobs = s.Job
	}

	return &Services{
		Hotels:       NewHotelService(repos.Hotels),
		Cuisines:     NewCuisineService(repos.Cuisines),
		Itineraries:  NewItineraryService(repos.Itineraries),
		Destinations: NewPlaceService(repos.Destinations),
		Restaurants:  NewPlaceService(repos.Restaurants),
		Map:          NewMapService(repos.Hotels, repos.Destinations, repos.Restaurants, s.Config.Storage.PublicBaseURL),
		News:         NewNewsService(repos.News),
		Reviews:      NewReviewService(repos.Reviews),
		Users:        NewUserService(repos.Users, jobs, s.Logger),
		Auth:         NewAuthService(repos.Users, tokens),
		Chats:        NewChatService(repos.Chats),
		Uploads:      uploads,
		Tokens:       tokens,
		Job:          s.Job,
	}, nil
}
