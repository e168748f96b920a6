package handler

import (
	"net/http"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/lib/auth"
	"github.com/deppfellow/travel-api/internal/lib/paginate"
	"github.com/deppfellow/travel-api/internal/middleware"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/validation"
	"github.com/labstack/echo/v4"
)

const statusSuccess = "Success"

// Envelope is the generic success body.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func success(message string, data interface{}) Envelope {
	return Envelope{Status: statusSuccess, Message: message, Data: data}
}

// created answers 201 when the parent document was created and 200 when the
// child was appended to an existing one.
func created(wasCreated bool, message string, data interface{}) Response {
	status := http.StatusOK
	if wasCreated {
		status = http.StatusCreated
	}
	return Response{Status: status, Body: success(message, data)}
}

// pageBody renders a paginated result under a resource specific key, e.g.
// {hotelItems, currentPage, totalPages, totalItems}.
func pageBody[T any](key string, r paginate.Result[T]) map[string]interface{} {
	return map[string]interface{}{
		key:           r.Items,
		"currentPage": r.CurrentPage,
		"totalPages":  r.TotalPages,
		"totalItems":  r.TotalItems,
	}
}

// identity returns the caller verified by RequireAuth.
func identity(c echo.Context) (auth.Identity, error) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return auth.Identity{}, errs.NewUnauthorizedError("Authentication required", true)
	}
	return id, nil
}

// validateLocation reports out-of-range coordinates as a field error.
func validateLocation(loc *model.GeoPoint) error {
	if loc == nil {
		return nil
	}
	if err := loc.Validate(); err != nil {
		return validation.CustomValidationErrors{{Field: "location", Message: err.Error()}}
	}
	return nil
}

// NoBody is the request of endpoints without inputs.
type NoBody struct{}

func (*NoBody) Validate() error { return nil }
