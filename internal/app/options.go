package service

import (
	"github.com/gridironsim/gridiron/internal/adapters/repository"
	"github.com/gridironsim/gridiron/internal/domain/profile"
	"github.com/gridironsim/gridiron/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithStore sets the player store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRegistry sets a pre-built profile registry, bypassing ProfilePath.
func WithRegistry(registry *profile.Registry) Option {
	return func(s *Service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithProfilePath sets the YAML profile file loaded at Start.
func WithProfilePath(path string) Option {
	return func(s *Service) {
		s.profilePath = path
	}
}

// WithWorkerCount sets the number of sweep workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithSeed sets the base seed for retirement draws and draft generation.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithDraftClassCounts overrides prospects generated per position code.
func WithDraftClassCounts(counts map[string]int) Option {
	return func(s *Service) {
		s.draftClassCounts = counts
	}
}
