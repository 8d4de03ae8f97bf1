// Package kvstore provides durable key-value backends for client-local state
// such as button cooldowns.
package kvstore

import "context"

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
