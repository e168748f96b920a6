// Package validation binds and validates request payloads.
//
// Struct tags are checked by the `validator` library. Rules tags can not
// express (coordinate ranges, viewport bounds, file lists) are returned as
// CustomValidationErrors. Both are turned into a 400 HTTPError with one
// entry per offending field.
package validation
