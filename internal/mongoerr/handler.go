package mongoerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/travel-api/internal/errs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HandleError converts a driver error into an application error.
//
//   - *errs.HTTPError is returned unchanged
//   - duplicate key -> 409 with a USER_ALREADY_EXISTS style code
//   - no documents -> 404
//   - malformed ObjectID -> 400
//   - anything else -> generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	converted := Convert(err)
	errorCode := generateErrorCode(converted.Collection, converted.Code)

	switch converted.Code {
	case DuplicateKey:
		return errs.NewConflictError(formatUserFriendlyMessage(converted), true, &errorCode)

	case NoDocuments:
		if converted.Collection == "" {
			return errs.NewNotFoundError("Resource not found", false, nil)
		}
		return errs.NewNotFoundError(formatUserFriendlyMessage(converted), true, &errorCode)

	case InvalidID:
		return errs.NewBadRequestError("Invalid identifier format", true, &errorCode, nil, nil)

	default:
		return errs.NewInternalServerError()
	}
}

// generateErrorCode builds <ENTITY>_<ACTION>, e.g. users + DuplicateKey => USER_ALREADY_EXISTS.
func generateErrorCode(collection string, code Code) string {
	if collection == "" {
		collection = "RECORD"
	}

	domain := strings.ToUpper(singular(collection))

	action := "ERROR"
	switch code {
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	case NoDocuments:
		action = "NOT_FOUND"
	case InvalidID:
		action = "INVALID_ID"
	case Timeout:
		action = "TIMEOUT"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(e *Error) string {
	entity := getEntityName(e.Collection)

	switch e.Code {
	case DuplicateKey:
		if e.Field != "" {
			return fmt.Sprintf("A %s with this %s already exists", entity, humanizeText(e.Field))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entity)
	case NoDocuments:
		return fmt.Sprintf("%s not found", entity)
	default:
		return "An error occurred while processing your request"
	}
}

func getEntityName(collection string) string {
	if collection == "" {
		return "record"
	}
	return humanizeText(singular(collection))
}

// singular is deliberately naive: itineraries -> itinerary, users -> user, news -> news.
func singular(word string) string {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(lower, "ss"), strings.HasSuffix(lower, "news"):
		return word
	case strings.HasSuffix(lower, "s") && len(word) > 1:
		return word[:len(word)-1]
	}
	return word
}

// humanizeText converts snake_case and camelCase identifiers into Title Case.
//
//	"first_name" -> "First Name", "hotelSlug" -> "Hotel Slug"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range text {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return cases.Title(language.English).String(strings.ReplaceAll(b.String(), "_", " "))
}
