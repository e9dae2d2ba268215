package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores use. It is the full
// UniversalClient so single-node and miniredis clients both satisfy it.
type Client interface {
	redis.UniversalClient
}
