package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/internal/repository/unitofwork"
	"catalog-chatbot-be/pkg/events"
	"catalog-chatbot-be/pkg/match"
	pktNats "catalog-chatbot-be/pkg/nats"
	"catalog-chatbot-be/pkg/utils"
)

// ErrEmptyInput marks text that is blank after trimming. It is rejected
// before reaching the store.
var ErrEmptyInput = errors.New("empty input")

// ICatalogService is the gateway to the persistent catalog. Store failures
// never escape it: a failed insert is reported as success and a failed search
// as an empty result, both with an error log. The conversation stays polite
// even when the database is down.
type ICatalogService interface {
	AddProduct(ctx context.Context, name string) error
	Search(ctx context.Context, query string) ([]*entity.ProductMatch, error)
	Probe(ctx context.Context)
	Count(ctx context.Context) (int64, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (c *catalogService) AddProduct(ctx context.Context, name string) error {
	name = utils.CleanProductName(name)
	if name == "" {
		return ErrEmptyInput
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	product := entity.Product{
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		c.logger.Error("CatalogGateway", "Product insert failed", map[string]interface{}{
			"name":  name,
			"error": err.Error(),
		})
		// Swallowed on purpose: the conversation reports success regardless.
		return nil
	}

	c.publishProductAdded(ctx, &product)
	return nil
}

func (c *catalogService) publishProductAdded(ctx context.Context, product *entity.Product) {
	msgPayload := dto.ProductAddedMessage{
		ProductId: product.Id,
		Name:      product.Name,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		c.logger.Error("CatalogGateway", "Failed to marshal product added message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		c.logger.Warn("CatalogGateway", "Failed to publish product added message", map[string]interface{}{
			"product_id": product.Id,
			"error":      err.Error(),
		})
	}

	// External event bus is auxiliary; log and move on when unavailable.
	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeProductAdded,
			Data: map[string]interface{}{
				"product_id": product.Id,
				"name":       product.Name,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.logger.Warn("CatalogGateway", "Failed to publish PRODUCT_ADDED event", map[string]interface{}{
				"product_id": product.Id,
				"error":      err.Error(),
			})
		}
	}
}

func (c *catalogService) Search(ctx context.Context, query string) ([]*entity.ProductMatch, error) {
	query = utils.CleanProductName(query)
	if query == "" {
		return nil, ErrEmptyInput
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	matches, err := uow.ProductRepository().SearchSimilar(ctx, query, match.SimilarityThreshold)
	if err != nil {
		c.logger.Error("CatalogGateway", "Product search failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		// Indistinguishable from "nothing found" for the caller.
		return []*entity.ProductMatch{}, nil
	}
	return matches, nil
}

// Probe verifies the products relation is reachable. Failure is logged but
// never fatal; the process starts and keeps swallowing store errors.
func (c *catalogService) Probe(ctx context.Context) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProductRepository().Probe(ctx); err != nil {
		c.logger.Error("CatalogGateway", "Products table unreachable, check that the relation exists", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *catalogService) Count(ctx context.Context) (int64, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().Count(ctx)
}
