// Package common contains constants and sentinel errors shared by the
// UniSwap client packages.
package common

// Outbound HTTP header names.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the persisted session snapshot in the local metadata store.
const (
	AuthTokenKey = "auth_token"
	AuthUserKey  = "auth_user"
)

// DefaultAPIBaseURL is used when no base URL is configured.
const DefaultAPIBaseURL = "http://localhost:8080"

// UploadsFilesPath is the path prefix under which the backend serves
// uploaded files.
const UploadsFilesPath = "/api/uploads/files/"
