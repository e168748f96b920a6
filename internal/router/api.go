package router

import (
	"net/http"

	"github.com/deppfellow/travel-api/internal/handler"
	"github.com/deppfellow/travel-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	auth := m.Auth.RequireAuth
	admin := m.Auth.RequireAdmin

	registerHotelRoutes(api, h.Hotels, admin)
	registerCuisineRoutes(api, h.Cuisines, admin)
	registerItineraryRoutes(api, h.Itineraries, auth, admin)
	registerPlaceRoutes(api, h, auth, admin)

	api.GET("/map/viewport", handler.Handle(h.Map.Handler, h.Map.Viewport, http.StatusOK, &handler.ViewportRequest{}))

	news := h.News
	api.GET("/news/:categoryNews", handler.Handle(news.Handler, news.ByCategory, http.StatusOK, &handler.NewsCategoryRequest{}))
	api.GET("/news/detail/:id", handler.Handle(news.Handler, news.Get, http.StatusOK, &handler.NewsIDRequest{}))
	api.POST("/news", handler.Handle(news.Handler, news.Create, http.StatusCreated, &handler.CreateNewsRequest{}), admin)
	api.PUT("/news/:id", handler.Handle(news.Handler, news.Update, http.StatusOK, &handler.UpdateNewsRequest{}), admin)
	api.DELETE("/news/:id", handler.Handle(news.Handler, news.Delete, http.StatusOK, &handler.NewsIDRequest{}), admin)

	reviews := h.Reviews
	api.GET("/review/:nameplateSlug", handler.Handle(reviews.Handler, reviews.ByNameplate, http.StatusOK, &handler.ListReviewsRequest{}))
	api.POST("/review", handler.Handle(reviews.Handler, reviews.Create, http.StatusCreated, &handler.CreateReviewRequest{}), auth)

	registerUserRoutes(api, h, m, auth, admin)

	chats := h.Chats
	chatLimit := m.RateLimit.Limit()
	api.POST("/chats", handler.Handle(chats.Handler, chats.Append, http.StatusCreated, &handler.AppendChatRequest{}), auth, chatLimit)
	api.GET("/chats/:userId", handler.Handle(chats.Handler, chats.Get, http.StatusOK, &handler.ChatUserRequest{}), auth)
	api.DELETE("/chats/:userId/conversations/:conversationId",
		handler.Handle(chats.Handler, chats.DeleteConversation, http.StatusOK, &handler.DeleteConversationRequest{}), auth)

	uploads := h.Uploads
	api.POST("/uploads/presign", handler.Handle(uploads.Handler, uploads.Presign, http.StatusOK, &handler.PresignRequest{}), auth)
}

func registerHotelRoutes(api *echo.Group, h *handler.HotelHandler, admin echo.MiddlewareFunc) {
	api.GET("/hotels", handler.Handle(h.Handler, h.List, http.StatusOK, &handler.ListHotelsRequest{}))
	api.GET("/search/hotels", handler.Handle(h.Handler, h.Search, http.StatusOK, &handler.NoBody{}))
	api.GET("/hotel-provinces", handler.Handle(h.Handler, h.Provinces, http.StatusOK, &handler.NoBody{}))
	api.GET("/hotels/detail/:name", handler.Handle(h.Handler, h.Detail, http.StatusOK, &handler.HotelDetailRequest{}))
	api.GET("/hotels/:hotel", handler.Handle(h.Handler, h.List, http.StatusOK, &handler.ListHotelsRequest{}))

	api.GET("/admin/hotels", handler.Handle(h.Handler, h.Stats, http.StatusOK, &handler.NoBody{}), admin)
	api.GET("/admin/hotels/:hotel", handler.Handle(h.Handler, h.ProvinceItems, http.StatusOK, &handler.ProvinceHotelsRequest{}), admin)

	api.POST("/hotel", handler.Handle(h.Handler, h.Add, http.StatusCreated, &handler.AddHotelRequest{}), admin)
	api.PUT("/hotel/:slug/:id", handler.Handle(h.Handler, h.Update, http.StatusOK, &handler.UpdateHotelRequest{}), admin)
	api.DELETE("/hotels/:id", handler.Handle(h.Handler, h.Delete, http.StatusOK, &handler.DeleteHotelRequest{}), admin)
}

func registerCuisineRoutes(api *echo.Group, h *handler.CuisineHandler, admin echo.MiddlewareFunc) {
	api.GET("/cuisine", handler.Handle(h.Handler, h.List, http.StatusOK, &handler.ListCuisineRequest{}))
	api.GET("/cuisine/search", handler.Handle(h.Handler, h.Search, http.StatusOK, &handler.NoBody{}))
	api.GET("/cuisine/all", handler.Handle(h.Handler, h.Summaries, http.StatusOK, &handler.NoBody{}))
	api.GET("/cuisine/region/:region", handler.Handle(h.Handler, h.ByRegion, http.StatusOK, &handler.CuisineRegionRequest{}))
	api.GET("/cuisine/food/:id", handler.Handle(h.Handler, h.Food, http.StatusOK, &handler.FoodRequest{}))
	api.GET("/cuisine/:provinceSlug", handler.Handle(h.Handler, h.BySlug, http.StatusOK, &handler.CuisineProvinceRequest{}))

	api.POST("/cuisine", handler.Handle(h.Handler, h.Add, http.StatusCreated, &handler.AddFoodRequest{}), admin)
	api.PUT("/cuisine/:provinceSlug/:foodId", handler.Handle(h.Handler, h.Update, http.StatusOK, &handler.UpdateFoodRequest{}), admin)
	api.DELETE("/cuisine/:provinceSlug/:foodId", handler.Handle(h.Handler, h.Delete, http.StatusOK, &handler.DeleteFoodRequest{}), admin)
}

func registerItineraryRoutes(api *echo.Group, h *handler.ItineraryHandler, auth, admin echo.MiddlewareFunc) {
	api.GET("/itineraries", handler.Handle(h.Handler, h.Count, http.StatusOK, &handler.NoBody{}))
	api.GET("/itineraries/:provinceSlug", handler.Handle(h.Handler, h.BySlug, http.StatusOK, &handler.ItineraryProvinceRequest{}))

	api.POST("/itineraries", handler.Handle(h.Handler, h.Add, http.StatusCreated, &handler.AddItineraryRequest{}), auth)
	api.PUT("/itineraries/:provinceSlug/:itineraryDetailId",
		handler.Handle(h.Handler, h.Update, http.StatusOK, &handler.UpdateItineraryRequest{}), admin)
	api.DELETE("/itineraries/:provinceSlug/:itineraryDetailId",
		handler.Handle(h.Handler, h.Delete, http.StatusOK, &handler.DeleteItineraryRequest{}), admin)
}

func registerPlaceRoutes(api *echo.Group, h *handler.Handlers, auth, admin echo.MiddlewareFunc) {
	d := h.Destinations
	api.GET("/destinations", handler.Handle(d.Handler, d.List, http.StatusOK, &handler.ListPlacesRequest{}))
	api.GET("/destinations/:name", handler.Handle(d.Handler, d.ByName, http.StatusOK, &handler.PlaceByNameRequest{}))
	api.GET("/v2/destinations", handler.Handle(d.Handler, d.All, http.StatusOK, &handler.ListPlacesRequest{}))
	api.POST("/destination", handler.Handle(d.Handler, d.Create, http.StatusCreated, &handler.CreatePlaceRequest{}), admin)
	api.PUT("/destination/review/:id", handler.Handle(d.Handler, d.Rate, http.StatusOK, &handler.RatePlaceRequest{}), auth)
	api.PUT("/destination/:id", handler.Handle(d.Handler, d.Update, http.StatusOK, &handler.UpdatePlaceRequest{}), admin)
	api.DELETE("/destination/:id", handler.Handle(d.Handler, d.Delete, http.StatusOK, &handler.PlaceIDRequest{}), admin)

	r := h.Restaurants
	api.GET("/restaurants", handler.Handle(r.Handler, r.All, http.StatusOK, &handler.ListPlacesRequest{}))
	api.GET("/restaurant/:id", handler.Handle(r.Handler, r.ByID, http.StatusOK, &handler.PlaceIDRequest{}))
	api.POST("/restaurant", handler.Handle(r.Handler, r.Create, http.StatusCreated, &handler.CreatePlaceRequest{}), admin)
	api.PUT("/restaurant/review/:id", handler.Handle(r.Handler, r.Rate, http.StatusOK, &handler.RatePlaceRequest{}), auth)
	api.PUT("/restaurant/:id", handler.Handle(r.Handler, r.Update, http.StatusOK, &handler.UpdatePlaceRequest{}), admin)
	api.DELETE("/restaurant/:id", handler.Handle(r.Handler, r.Delete, http.StatusOK, &handler.PlaceIDRequest{}), admin)
}

func registerUserRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares, auth, admin echo.MiddlewareFunc) {
	u := h.Users
	api.POST("/users", handler.Handle(u.Handler, u.Register, http.StatusCreated, &handler.RegisterRequest{}))
	api.GET("/users", handler.Handle(u.Handler, u.List, http.StatusOK, &handler.NoBody{}), admin)
	api.GET("/users/me", handler.Handle(u.Handler, u.Me, http.StatusOK, &handler.NoBody{}), auth)
	api.GET("/users/review/:userId", handler.Handle(u.Handler, u.PublicProfile, http.StatusOK, &handler.PublicProfileRequest{}))
	api.PUT("/users/:id", handler.Handle(u.Handler, u.UpdateProfile, http.StatusOK, &handler.UpdateProfileRequest{}), auth)
	api.PUT("/admin/users/:id", handler.Handle(u.Handler, u.ChangeRole, http.StatusOK, &handler.ChangeRoleRequest{}), admin)
	api.DELETE("/users/:id", handler.Handle(u.Handler, u.Delete, http.StatusOK, &handler.DeleteUserRequest{}), admin)

	a := h.Auth
	api.POST("/login", handler.Handle(a.Handler, a.Login, http.StatusOK, &handler.LoginRequest{}), m.RateLimit.Limit())
	api.POST("/refreshToken", handler.Handle(a.Handler, a.Refresh, http.StatusOK, &handler.RefreshRequest{}), m.RateLimit.Limit())
}
