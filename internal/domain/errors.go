package domain

import "errors"

// Sentinel errors for the domain layer. Lookup misses are expected during normal
// use and callers treat them as no-ops; the remaining errors are raised while
// loading a dataset.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrStockNotFound  = errors.New("stock not found")
	ErrDuplicateUser  = errors.New("duplicate user id")
	ErrDuplicateStock = errors.New("duplicate stock symbol")
	ErrInvalidRecord  = errors.New("invalid record")
)
