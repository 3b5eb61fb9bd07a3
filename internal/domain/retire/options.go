package retire

// Option applies a configuration option to the Model.
type Option func(*Model)

// WithSeed sets the base seed all per-player streams derive from.
// Typically set once per simulated season.
func WithSeed(seed int64) Option {
	return func(m *Model) {
		m.seed = seed
	}
}
