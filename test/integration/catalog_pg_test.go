package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/internal/repository/specification"
	"catalog-chatbot-be/internal/repository/unitofwork"
	"catalog-chatbot-be/internal/service"
	"catalog-chatbot-be/pkg/database"
	"catalog-chatbot-be/pkg/match"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, []byte) error { return nil }

// TestCatalogSearchAgainstPostgres exercises the real pg_trgm path. Requires
// a migrated database (cmd/migrate) reachable via DB_CONNECTION_STRING.
func TestCatalogSearchAgainstPostgres(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	catalog := service.NewCatalogService(uowFactory, nopPublisher{}, nil, logger.NewNopLogger())
	ctx := context.Background()

	// Unique name so reruns don't collide with earlier rows.
	name := "Widget " + uuid.New().String()

	err = catalog.AddProduct(ctx, "  "+name+"  ")
	assert.NoError(t, err)

	t.Run("insert stores the trimmed name", func(t *testing.T) {
		repo := uowFactory.NewUnitOfWork(ctx).ProductRepository()
		product, err := repo.FindOne(ctx, specification.ByName{Name: name})
		assert.NoError(t, err)
		if assert.NotNil(t, product) {
			assert.Equal(t, name, product.Name)
			assert.NotZero(t, product.Id)
		}
	})

	t.Run("exact match ranks first with similarity 1.0", func(t *testing.T) {
		matches, err := catalog.Search(ctx, name)
		assert.NoError(t, err)
		if assert.NotEmpty(t, matches) {
			assert.Equal(t, name, matches[0].Name)
			assert.InDelta(t, 1.0, matches[0].Similarity, 1e-9)
		}
	})

	t.Run("typo still matches above threshold but below 1.0", func(t *testing.T) {
		// Swap two characters in the unique name.
		typo := []byte(name)
		typo[1], typo[2] = typo[2], typo[1]

		matches, err := catalog.Search(ctx, string(typo))
		assert.NoError(t, err)

		var found *entity.ProductMatch
		for _, m := range matches {
			if m.Name == name {
				found = m
				break
			}
		}
		if assert.NotNil(t, found, "typo query should still surface the product") {
			assert.Greater(t, found.Similarity, match.SimilarityThreshold)
			assert.Less(t, found.Similarity, 1.0)
		}
	})

	t.Run("results exceed threshold and are sorted descending", func(t *testing.T) {
		matches, err := catalog.Search(ctx, name)
		assert.NoError(t, err)
		for i, m := range matches {
			assert.Greater(t, m.Similarity, match.SimilarityThreshold)
			if i > 0 {
				assert.GreaterOrEqual(t, matches[i-1].Similarity, m.Similarity)
			}
		}
	})

	t.Run("catalog listing pages newest first", func(t *testing.T) {
		repo := uowFactory.NewUnitOfWork(ctx).ProductRepository()
		products, err := repo.FindAll(ctx,
			specification.OrderBy{Field: "id", Desc: true},
			specification.Pagination{Limit: 10, Offset: 0},
		)
		assert.NoError(t, err)
		if assert.NotEmpty(t, products) {
			assert.LessOrEqual(t, len(products), 10)
			assert.Equal(t, name, products[0].Name)
		}
	})

	t.Run("repeated query is idempotent", func(t *testing.T) {
		first, err := catalog.Search(ctx, name)
		assert.NoError(t, err)
		second, err := catalog.Search(ctx, name)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
