package services

import "errors"

// ErrUniversityNotFound indicates a referenced identifier is absent from
// the catalog.
var ErrUniversityNotFound = errors.New("university not found")

// ErrInvalidComparison indicates the caller did not supply exactly two
// distinct university identifiers.
var ErrInvalidComparison = errors.New("comparison requires exactly two distinct university ids")
