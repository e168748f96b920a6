// Package paginate flattens child lists embedded in root documents and
// returns one page of the flattened sequence with its totals.
//
// Two strategies produce the same page for the same inputs:
//
//   - Aggregate pushes the work into a MongoDB pipeline ($unwind, $match, $skip, $limit)
//   - InMemory flattens already-loaded roots in process
//
// Both order roots by _id ascending and children by array position.
package paginate

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a validated 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// New builds a Page, replacing non-positive values by the defaults.
func New(page, limit, defaultLimit int) Page {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Page{Page: page, Limit: limit}
}

// Parse reads page and limit from raw query values. Missing or malformed
// values fall back to the defaults.
func Parse(page, limit string, defaultLimit int) Page {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = 0
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = 0
	}
	return New(p, l, defaultLimit)
}

// Skip is the number of items before this page. It saturates instead of overflowing.
func (p Page) Skip() int64 {
	skip := int64(p.Page-1) * int64(p.Limit)
	if p.Page > 1 && skip/int64(p.Page-1) != int64(p.Limit) {
		return math.MaxInt64
	}
	return skip
}

// TotalPages is ceil(total / limit), and 0 when total is 0.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Result is one page of items plus the totals of the whole filtered sequence.
type Result[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalItems  int64
}

func NewResult[T any](items []T, page Page, total int64) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:       items,
		CurrentPage: page.Page,
		TotalPages:  TotalPages(total, page.Limit),
		TotalItems:  total,
	}
}
