package nereval

import (
	"log/slog"
	"strings"
)

// Option configures loading and normalization.
type Option func(*config)

type config struct {
	entities map[string]struct{}
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithEntities restricts evaluation to the given labels. Values are
// upper-cased before filtering, as are record labels during the
// comparison. Passing no labels leaves the filter unset.
func WithEntities(labels ...string) Option {
	return func(c *config) {
		for _, label := range labels {
			label = strings.ToUpper(strings.TrimSpace(label))
			if label == "" {
				continue
			}
			if c.entities == nil {
				c.entities = make(map[string]struct{}, len(labels))
			}
			c.entities[label] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for data-quality warnings (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
