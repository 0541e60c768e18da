package service

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService listens for product-added messages and keeps a cached
// catalog count so the stats surface never hits the store per request.
type IConsumerService interface {
	Consume(ctx context.Context) error
	ProductCount() int64
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	logger       logger.ILogger
	productCount atomic.Int64
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	// Prime the count so stats are meaningful before the first event.
	cs.refreshCount(ctx)

	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) ProductCount() int64 {
	return cs.productCount.Load()
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProductAddedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.refreshCount(ctx)
	cs.logger.Info("Consumer", "Product added to catalog", map[string]interface{}{
		"product_id":    payload.ProductId,
		"name":          payload.Name,
		"catalog_count": cs.productCount.Load(),
	})

	msg.Ack()
}

func (cs *consumerService) refreshCount(ctx context.Context) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ProductRepository().Count(ctx)
	if err != nil {
		cs.logger.Warn("Consumer", "Failed to refresh catalog count", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	cs.productCount.Store(count)
}
