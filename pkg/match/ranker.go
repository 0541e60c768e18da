package match

import (
	"context"
	"strings"

	"catalog-chatbot-be/internal/entity"
)

// SimilarityThreshold is the pg_trgm sensitivity shared by every search
// surface. Matches scoring at or below it are never returned.
const SimilarityThreshold = 0.1

// Gateway is the search side of the catalog store.
type Gateway interface {
	Search(ctx context.Context, query string) ([]*entity.ProductMatch, error)
}

// Ranker is the single definition of how similar is close enough and in what
// order matches are presented. Scoring happens in the store; the ranker never
// re-sorts or re-filters, so every presentation surface agrees on ranking.
type Ranker struct {
	gateway Gateway
}

// NewRanker creates a ranker delegating to the given catalog gateway.
func NewRanker(gateway Gateway) *Ranker {
	return &Ranker{gateway: gateway}
}

// Rank returns the ranked matches for a free-text query. A blank query yields
// no matches without touching the store.
func (r *Ranker) Rank(ctx context.Context, query string) ([]*entity.ProductMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return r.gateway.Search(ctx, query)
}
