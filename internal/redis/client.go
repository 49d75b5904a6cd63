// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	ReadOnly        bool // For cluster mode routing
}

// NewClient creates a Redis client for a single instance. The
// connection is lazy, so a bad endpoint only surfaces on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // self-signed certs in dev
		}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:        endpoints,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
		ReadOnly:     opts.ReadOnly,
	}

	if opts.UseTLS {
		clusterOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// NewFailoverClient creates a Redis client with Sentinel support
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	if masterName == "" {
		return nil, errors.New("redis: master name is required")
	}
	if len(sentinelAddrs) == 0 {
		return nil, errors.New("redis: at least one sentinel address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	failoverOpts := &redis.FailoverOptions{
		MasterName:    masterName,
		SentinelAddrs: sentinelAddrs,
		MinIdleConns:  opts.MinIdleConns,
		PoolSize:      opts.PoolSize,
		MaxRetries:    opts.MaxRetries,
	}

	if opts.UseTLS {
		failoverOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}

	return redis.NewFailoverClient(failoverOpts), nil
}
