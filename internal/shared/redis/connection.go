package redis

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 5 * time.Second
	// Summaries are written once per run and read by a handful of handlers.
	poolSize = 4
)

// Client is the connection behind the analytics summary cache.
type Client struct {
	*redis.Client
	addr string
}

// Addr is the host:port the client talks to.
func (c *Client) Addr() string {
	return c.addr
}

// Options builds client options from the cache configuration. A REDIS_URL
// wins over the host/port pair.
func Options(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.WrapValidation("REDIS_URL is not a valid redis URL", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     poolSize,
	}, nil
}

// Connect returns nil without error when the cache is disabled, so callers
// fall back to process memory.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	logger := slog.With("component", "redis", "operation", "connect")

	if !cfg.Enabled {
		logger.Info("Redis disabled, summaries cached in memory")
		return nil, nil
	}

	opts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	client := &Client{Client: redis.NewClient(opts), addr: opts.Addr}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Client.Close()
		logger.Error("Summary cache unreachable", "addr", client.addr, "error", err)
		return nil, errors.WrapExternal(fmt.Sprintf("summary cache at %s unreachable", client.addr), err)
	}

	logger.Info("Summary cache connected", "addr", client.addr, "db", opts.DB, "ttl", cfg.CacheTTL)
	return client, nil
}

func (c *Client) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
