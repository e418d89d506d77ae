package redis

import "github.com/redis/go-redis/v9"

// Client is what the component cache and flag repositories hold.
// Connect returns one for single-node and cluster deployments alike.
type Client = redis.UniversalClient

// Nil is returned by reads of missing keys
const Nil = redis.Nil
