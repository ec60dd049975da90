package common

import "errors"

var (
	// Local storage errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("not signed in")
	ErrNotInitialized   = errors.New("session store not initialized")

	// Cache configuration errors.
	ErrUnknownCacheBackend = errors.New("unknown cache backend")
)
