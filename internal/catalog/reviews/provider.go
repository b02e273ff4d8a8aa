package reviews

import (
	"context"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// Provider supplies external review aggregates keyed by StandardCoffee or
// Product id. The catalog never computes these; a review pipeline maintains
// them out of band.
type Provider interface {
	StatsFor(ctx context.Context, ids []string) (map[string]domain.ReviewStats, error)
}

// NoopProvider returns no aggregates; used when no review backend is
// configured.
type NoopProvider struct{}

func (NoopProvider) StatsFor(ctx context.Context, ids []string) (map[string]domain.ReviewStats, error) {
	return nil, nil
}
