package rosterkit

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rosterkit/rosterkit/pkg/cluster"
	"github.com/rosterkit/rosterkit/pkg/logging"
	"github.com/rosterkit/rosterkit/pkg/similarity"
)

// config holds the engine configuration assembled from options.
type config struct {
	scorer   *similarity.Scorer
	strategy cluster.Strategy
	logger   zerolog.Logger
	now      func() time.Time
	newID    func() string
}

func defaultConfig() *config {
	return &config{
		scorer:   similarity.NewScorer(),
		strategy: cluster.ConnectedComponents,
		logger:   *logging.Default(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Option configures the engine.
type Option func(*config) error

// WithScorer replaces the record scorer, including its weights and
// thresholds.
func WithScorer(scorer *similarity.Scorer) Option {
	return func(c *config) error {
		if scorer != nil {
			c.scorer = scorer
		}
		return nil
	}
}

// WithThresholds overrides just the decision cutoffs while keeping the
// default field weights.
func WithThresholds(thresholds similarity.Thresholds) Option {
	return func(c *config) error {
		c.scorer.Thresholds = thresholds
		return nil
	}
}

// WithLegacyClustering switches grouping to the representative-anchored
// single pass instead of connected components. Transitive duplicate
// chains may split into separate groups under this strategy.
func WithLegacyClustering() Option {
	return func(c *config) error {
		c.strategy = cluster.RepresentativeAnchored
		return nil
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithClock overrides the time source used to stamp merges. Intended for
// tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now != nil {
			c.now = now
		}
		return nil
	}
}

// WithIDGenerator overrides the generator for group and merged-record
// IDs. Intended for tests.
func WithIDGenerator(newID func() string) Option {
	return func(c *config) error {
		if newID != nil {
			c.newID = newID
		}
		return nil
	}
}
