// Package redis connects the layout service to Redis, which holds the
// component metadata cache and the feature-flag store.
package redis

import (
	"context"
	"crypto/tls"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

// Namespace prefixes every key the service writes
const Namespace = "layout"

// Options configures the connection
type Options struct {
	DB          int
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	UseTLS      bool
}

// Connect opens a client for the endpoints. One endpoint yields a
// single-node client; more than one yields a cluster client.
func Connect(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	uopts := &redis.UniversalOptions{
		Addrs:       endpoints,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}
	if len(endpoints) > 1 {
		// cluster mode has no database selection
		uopts.DB = 0
	}
	if opts.UseTLS {
		uopts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: hostOf(endpoints[0]),
		}
	}

	return redis.NewUniversalClient(uopts), nil
}

// Check pings the server within timeout
func Check(ctx context.Context, client Client, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable")
	}
	return nil
}

// Key joins parts under Namespace: Key("flag", "unified") is "layout:flag:unified"
func Key(parts ...string) string {
	return Namespace + ":" + strings.Join(parts, ":")
}

func hostOf(endpoint string) string {
	host, _, err := net.SplitHostPort(endpoint)
	if err != nil {
		return endpoint
	}
	return host
}
