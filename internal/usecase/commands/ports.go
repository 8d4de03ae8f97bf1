package commands

import (
	"context"

	"creator-market/internal/domain/scraping"
)

// KeyValueStore is the durable client-local storage for cooldown end times.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Dispatcher hands a scraping batch to the remote scraper. It must not block
// for the duration of the scrape itself.
type Dispatcher interface {
	Dispatch(ctx context.Context, engine scraping.Engine, params scraping.RunParams) (*DispatchReceipt, error)
}

type DispatchReceipt struct {
	BatchID  string
	Accepted int
}
