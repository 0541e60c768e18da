package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

func TestConsumerTracksCatalogCount(t *testing.T) {
	repo := &fakeProductRepository{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	const topic = "test_product_added"

	consumer := NewConsumerService(pubSub, topic, &fakeRepositoryFactory{repo: repo}, logger.NewNopLogger())
	publisher := NewPublisherService(pubSub, topic)

	ctx := context.Background()
	assert.NoError(t, consumer.Consume(ctx))
	assert.Equal(t, int64(0), consumer.ProductCount())

	repo.products = append(repo.products, &entity.Product{Id: 1, Name: "Widget"})
	payload, _ := json.Marshal(dto.ProductAddedMessage{ProductId: 1, Name: "Widget"})
	assert.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		return consumer.ProductCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestConsumerIgnoresMalformedMessages(t *testing.T) {
	repo := &fakeProductRepository{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	const topic = "test_product_added_malformed"

	consumer := NewConsumerService(pubSub, topic, &fakeRepositoryFactory{repo: repo}, logger.NewNopLogger())
	publisher := NewPublisherService(pubSub, topic)

	ctx := context.Background()
	assert.NoError(t, consumer.Consume(ctx))

	assert.NoError(t, publisher.Publish(ctx, []byte("not json")))

	repo.products = append(repo.products, &entity.Product{Id: 1, Name: "Widget"})
	payload, _ := json.Marshal(dto.ProductAddedMessage{ProductId: 1, Name: "Widget"})
	assert.NoError(t, publisher.Publish(ctx, payload))

	// The malformed message is acked and skipped; the valid one still lands.
	assert.Eventually(t, func() bool {
		return consumer.ProductCount() == 1
	}, time.Second, 10*time.Millisecond)
}
