package mongoerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Index:   0,
			Code:    11000,
			Message: `E11000 duplicate key error collection: travel.users index: unique_users_email dup key: { email: "a@b.c" }`,
		}},
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DuplicateKey, Classify(duplicateKeyErr()))
	assert.Equal(t, NoDocuments, Classify(fmt.Errorf("find user: %w", mongo.ErrNoDocuments)))
	assert.Equal(t, InvalidID, Classify(primitive.ErrInvalidHex))
	assert.Equal(t, Other, Classify(errors.New("boom")))
}

func TestHandleError_DuplicateKey(t *testing.T) {
	t.Parallel()

	err := HandleError(duplicateKeyErr())

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_NotFound(t *testing.T) {
	t.Parallel()

	var httpErr *errs.HTTPError

	require.True(t, errors.As(HandleError(mongo.ErrNoDocuments), &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)

	require.True(t, errors.As(HandleError(NotFoundIn("itineraries", mongo.ErrNoDocuments)), &httpErr))
	assert.Equal(t, "ITINERARY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Itinerary not found", httpErr.Message)
}

func TestHandleError_PassThroughAndFallback(t *testing.T) {
	t.Parallel()

	original := errs.NewForbiddenError("nope", false)
	assert.Same(t, original, HandleError(original))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(errors.New("socket closed")), &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "socket")

	require.True(t, errors.As(HandleError(primitive.ErrInvalidHex), &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestExtractFieldFromIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "email", extractFieldFromIndex("unique_users_email"))
	assert.Equal(t, "hotelSlug", extractFieldFromIndex("unique_hotels_hotelSlug"))
	assert.Equal(t, "email", extractFieldFromIndex("email_1"))
	assert.Equal(t, "", extractFieldFromIndex("id"))
}

func TestHumanizeAndSingular(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "First Name", humanizeText("first_name"))
	assert.Equal(t, "Hotel Slug", humanizeText("hotelSlug"))
	assert.Equal(t, "itinerary", singular("itineraries"))
	assert.Equal(t, "news", singular("news"))
	assert.Equal(t, "hotel", singular("hotels"))
}
