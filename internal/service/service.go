// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// data from the handler, applies the aggregate rules of the model package
// and calls repository methods to persist the result.
//
// Each service declares the store interface it needs; the repository
// package provides the MongoDB implementations and tests provide fakes.
package service

import (
	"time"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	codeDuplicateChild = "DUPLICATE_CHILD"
	codeChildNotFound  = "CHILD_NOT_FOUND"
)

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func notFound(entity string) error {
	return errs.NewNotFoundError(entity+" not found", true, nil)
}

// childError translates the aggregate sentinels into HTTP errors.
func childError(err error, entity string) error {
	switch {
	case errors.Is(err, model.ErrDuplicateChild):
		return errs.NewConflictError(entity+" already exists", true, &codeDuplicateChild)
	case errors.Is(err, model.ErrChildNotFound):
		return errs.NewNotFoundError(entity+" not found", true, &codeChildNotFound)
	default:
		return err
	}
}

// rootOrNotFound turns a missing root into a 404 naming entity.
func rootOrNotFound(err error, entity string) error {
	if isNotFound(err) {
		return notFound(entity)
	}
	return err
}

type clock func() time.Time
