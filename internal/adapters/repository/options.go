package repository

type memConfig struct {
	shardCount int
}

// MemOption applies a configuration option to the MemStore.
type MemOption func(*memConfig)

// WithShardCount sets the number of lock shards.
func WithShardCount(count int) MemOption {
	return func(c *memConfig) {
		if count > 0 {
			c.shardCount = count
		}
	}
}
