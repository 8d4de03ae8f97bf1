package errs

import "errors"

// Sentinel errors shared between usecase and handler layers
var (
	// Campaign errors
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidCursor    = errors.New("invalid cursor")

	// Cooldown / scraping errors
	ErrCooldownActive = errors.New("cooldown active")
	ErrDispatchFailed = errors.New("scraping dispatch failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
