// internal/storage/kv.go
// Key-value backends for persisted snapshots

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/database"
)

// Driver names accepted by Open
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// KV is a string key-value store. Get reports found=false for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Driver      string
	DatabaseURL string
	RedisURL    string
	KeyPrefix   string
}

// Open connects the backend named by opts.Driver
func Open(ctx context.Context, opts Options) (KV, error) {
	switch opts.Driver {
	case DriverMemory, "":
		return NewMemory(), nil

	case DriverRedis:
		client, err := database.NewRedisClientFromURL(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedis(client, opts.KeyPrefix), nil

	case DriverPostgres:
		db, err := database.NewPostgresDBFromURL(ctx, opts.DatabaseURL, database.DefaultPool)
		if err != nil {
			return nil, err
		}
		kv, err := NewPostgres(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return kv, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
