package repository

import "errors"

// Storage-level sentinels, discriminated at the HTTP boundary.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrUsernameTaken  = errors.New("username already taken")
)
