package domain

import "errors"

var (
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
	ErrInvalidQuery           = errors.New("invalid query")
)
