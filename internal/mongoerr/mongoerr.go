// Package mongoerr translates MongoDB driver errors into application errors.
//
// Driver errors are classified (duplicate key, no documents, malformed id,
// timeout) and turned into errs.HTTPError values with stable machine codes
// such as USER_ALREADY_EXISTS and messages that never leak driver details.
package mongoerr

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Code is the category of a driver error.
type Code string

const (
	DuplicateKey Code = "duplicate_key"
	NoDocuments  Code = "no_documents"
	InvalidID    Code = "invalid_id"
	Timeout      Code = "timeout"
	Other        Code = "other"
)

// Error is a classified driver error.
type Error struct {
	Code       Code
	Collection string
	Field      string
	Message    string
	driverErr  error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Classify reports the category of err.
func Classify(err error) Code {
	var classified *Error
	switch {
	case err == nil:
		return Other
	case errors.As(err, &classified):
		return classified.Code
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case errors.Is(err, mongo.ErrNoDocuments):
		return NoDocuments
	case errors.Is(err, primitive.ErrInvalidHex):
		return InvalidID
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return Timeout
	default:
		return Other
	}
}

// Convert wraps err into an *Error, extracting collection and field for duplicate keys.
func Convert(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	converted := &Error{
		Code:      Classify(err),
		Message:   err.Error(),
		driverErr: err,
	}

	if converted.Code == DuplicateKey {
		converted.Collection, converted.Field = parseDuplicateKey(err.Error())
	}

	return converted
}

// NotFoundIn tags a no-documents error with the collection it came from so the
// resulting message can name the entity ("User not found").
func NotFoundIn(collection string, err error) error {
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return &Error{
		Code:       NoDocuments,
		Collection: collection,
		Message:    "no documents in " + collection,
		driverErr:  err,
	}
}

// duplicateKeyPattern matches the server message
// "E11000 duplicate key error collection: travel.users index: unique_users_email dup key: {...}".
var duplicateKeyPattern = regexp.MustCompile(`collection: [^.\s]+\.(\S+) index: (\S+)`)

func parseDuplicateKey(message string) (collection, field string) {
	matches := duplicateKeyPattern.FindStringSubmatch(message)
	if len(matches) < 3 {
		return "", ""
	}
	return matches[1], extractFieldFromIndex(matches[2])
}

// extractFieldFromIndex infers the field from an index name.
//
// Supports "unique_<collection>_<field>" and the server default "<field>_1".
func extractFieldFromIndex(indexName string) string {
	if strings.HasPrefix(indexName, "unique_") {
		parts := strings.SplitN(indexName, "_", 3)
		if len(parts) == 3 {
			return parts[2]
		}
	}

	if idx := strings.LastIndex(indexName, "_"); idx > 0 {
		return indexName[:idx]
	}

	return ""
}
