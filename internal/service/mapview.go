package service

import (
	"context"

	"github.com/deppfellow/travel-api/internal/lib/query"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MapDefaultLimit caps each place type returned by a viewport query.
const MapDefaultLimit = 50

type hotelViewport interface {
	WithinViewport(ctx context.Context, vp query.Viewport, limit int) ([]model.HotelItem, error)
}

type placeViewport interface {
	WithinViewport(ctx context.Context, vp query.Viewport, limit int) ([]model.Place, error)
}

// MapPoint is one row of a viewport response. The row types carry the
// fields a map marker needs for their kind.
type MapPoint interface {
	mapPoint()
}

type RestaurantPoint struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Location     model.GeoPoint     `json:"location"`
	Images       []string           `json:"images"`
	Description  string             `json:"description"`
	Rating       float64            `json:"rating"`
	RatingCount  int                `json:"rating_count"`
	OpeningHours model.OpeningHours `json:"opening_hours"`
	Utilities    []string           `json:"utilities"`
}

type HotelPoint struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Image          string         `json:"image"`
	HotelSlug      string         `json:"hotelSlug"`
	Category       string         `json:"category"`
	Stars          int            `json:"stars"`
	NumberOfReview int            `json:"numberOfReview"`
	Location       model.GeoPoint `json:"location"`
}

type DestinationPoint struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Rating      float64        `json:"rating"`
	RatingCount int            `json:"rating_count"`
	Location    model.GeoPoint `json:"location"`
	Images      []string       `json:"images"`
	ImageURLs   []string       `json:"imageUrls"`
}

func (RestaurantPoint) mapPoint()  {}
func (HotelPoint) mapPoint()       {}
func (DestinationPoint) mapPoint() {}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func restaurantPoint(p model.Place) RestaurantPoint {
	return RestaurantPoint{
		ID:           p.ID.Hex(),
		Name:         p.Name,
		Category:     p.Category,
		Location:     p.Location,
		Images:       orEmpty(p.Images),
		Description:  p.Description,
		Rating:       p.Rating,
		RatingCount:  p.RatingCount,
		OpeningHours: p.OpeningHours,
		Utilities:    orEmpty(p.Utilities),
	}
}

func hotelPoint(h model.HotelItem) HotelPoint {
	return HotelPoint{
		ID:             h.ID,
		Name:           h.Name,
		Image:          h.Image,
		HotelSlug:      h.HotelSlug,
		Category:       h.Category,
		Stars:          h.Stars,
		NumberOfReview: h.NumberOfReview,
		Location:       h.Location,
	}
}

func destinationPoint(p model.Place, baseURL string) DestinationPoint {
	p = p.WithImageURLs(baseURL)
	return DestinationPoint{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Category:    p.Category,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		Location:    p.Location,
		Images:      orEmpty(p.Images),
		ImageURLs:   orEmpty(p.ImageURLs),
	}
}

type MapService struct {
	hotels        hotelViewport
	destinations  placeViewport
	restaurants   placeViewport
	publicBaseURL string
}

func NewMapService(hotels hotelViewport, destinations, restaurants placeViewport, publicBaseURL string) *MapService {
	return &MapService{
		hotels:        hotels,
		destinations:  destinations,
		restaurants:   restaurants,
		publicBaseURL: publicBaseURL,
	}
}

// Viewport runs the three place queries concurrently and returns one flat
// list: restaurants, then hotels, then destinations. The first failure
// cancels the others and fails the whole request.
func (s *MapService) Viewport(ctx context.Context, vp query.Viewport, limit int) ([]MapPoint, error) {
	if limit <= 0 {
		limit = MapDefaultLimit
	}

	var (
		restaurants  []model.Place
		hotels       []model.HotelItem
		destinations []model.Place
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		restaurants, err = s.restaurants.WithinViewport(gctx, vp, limit)
		return errors.Wrap(err, "restaurants in viewport")
	})

	g.Go(func() (err error) {
		hotels, err = s.hotels.WithinViewport(gctx, vp, limit)
		return errors.Wrap(err, "hotels in viewport")
	})

	g.Go(func() (err error) {
		destinations, err = s.destinations.WithinViewport(gctx, vp, limit)
		return errors.Wrap(err, "destinations in viewport")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	points := make([]MapPoint, 0, len(restaurants)+len(hotels)+len(destinations))
	for _, r := range restaurants {
		points = append(points, restaurantPoint(r))
	}
	for _, h := range hotels {
		if len(h.Location.Coordinates) != 2 {
			continue
		}
		points = append(points, hotelPoint(h))
	}
	for _, d := range destinations {
		points = append(points, destinationPoint(d, s.publicBaseURL))
	}
	return points, nil
}
