package contract

import (
	"context"

	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar runs a trigram similarity search over product names.
	// Only rows whose similarity exceeds the threshold are returned, ordered
	// by similarity descending with ties broken by id ascending.
	SearchSimilar(ctx context.Context, query string, threshold float64) ([]*entity.ProductMatch, error)

	// Probe checks that the products relation is reachable.
	Probe(ctx context.Context) error
}
