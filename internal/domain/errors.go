package domain

import "errors"

// Store errors
var (
	ErrConnection = errors.New("database connection failed")
	ErrQuery      = errors.New("database query failed")
	ErrNoData     = errors.New("no rotation data found")
)
