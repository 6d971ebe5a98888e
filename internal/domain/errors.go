package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrAuthDisabled       = errors.New("authentication disabled")

	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidProvider     = errors.New("invalid map provider")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrPositionTimeout     = errors.New("position request timed out")
	ErrPermissionDenied    = errors.New("position permission denied")

	ErrProviderUnavailable = errors.New("map provider unavailable")
	ErrProviderLoadTimeout = errors.New("map provider load timed out")
	ErrMapNotInitialized   = errors.New("map not initialized")
	ErrNoHealthyProvider   = errors.New("no healthy map provider")

	ErrGeocodeNotFound = errors.New("address not found")
	ErrLoopStopped     = errors.New("event loop stopped")
)
