package sweep

import (
	"github.com/gridironsim/gridiron/pkg/logger"
)

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkerCount sets the number of sweep workers.
func WithWorkerCount(count int) Option {
	return func(p *Pool) {
		if count > 0 {
			p.workers = count
		}
	}
}

// WithProgression sets the external skill progression collaborator.
func WithProgression(fn Progression) Option {
	return func(p *Pool) {
		p.progression = fn
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(log logger.Logger) Option {
	return func(p *Pool) {
		if log != nil {
			p.logger = log.Named("sweep")
		}
	}
}
