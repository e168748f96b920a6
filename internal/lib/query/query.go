// Package query turns HTTP query parameters into MongoDB filters and the
// equivalent in-process predicates.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contains is an unanchored case-insensitive match on term.
func Contains(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// Prefix is a case-insensitive match anchored at the start of the value.
func Prefix(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term), Options: "i"}
}

// ContainsFold reports whether value contains term, ignoring case.
func ContainsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// HasPrefixFold reports whether value starts with term, ignoring case.
func HasPrefixFold(value, term string) bool {
	return strings.HasPrefix(strings.ToLower(value), strings.ToLower(term))
}

// ParseInt reads an optional integer parameter. ok is false when the value is
// absent or malformed, which callers treat as "no filter".
func ParseInt(raw string) (value int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
