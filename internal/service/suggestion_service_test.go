package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/internal/repository/memory"
	"catalog-chatbot-be/pkg/match"
	"catalog-chatbot-be/pkg/present"
	"catalog-chatbot-be/pkg/session"

	"github.com/stretchr/testify/assert"
)

func newSuggestionFixture(repo *fakeProductRepository) (ISuggestionService, *session.Manager) {
	log := logger.NewNopLogger()
	sessions := session.NewManager(memory.NewSessionRepository(time.Hour), log)
	catalog := NewCatalogService(&fakeRepositoryFactory{repo: repo}, nopPublisher{}, nil, log)
	ranker := match.NewRanker(catalog)
	return NewSuggestionService(ranker, sessions, log), sessions
}

func TestSuggestCapsResults(t *testing.T) {
	matches := make([]*entity.ProductMatch, present.MaxSuggestions+10)
	for i := range matches {
		matches[i] = &entity.ProductMatch{
			ProductId:  int64(i + 1),
			Name:       "Item " + strconv.Itoa(i+1),
			Similarity: 0.5,
		}
	}
	svc, _ := newSuggestionFixture(&fakeProductRepository{matches: matches})

	items, err := svc.Suggest(context.Background(), "item")

	assert.NoError(t, err)
	assert.Len(t, items, present.MaxSuggestions)
}

func TestSuggestEmptyResultGivesSyntheticAddEntry(t *testing.T) {
	svc, _ := newSuggestionFixture(&fakeProductRepository{})

	items, err := svc.Suggest(context.Background(), "nothing like this")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, present.AddProductActionID, items[0].Id)
	assert.NotNil(t, items[0].Action)
}

func TestSuggestBlankQuerySkipsStore(t *testing.T) {
	repo := &fakeProductRepository{}
	svc, _ := newSuggestionFixture(repo)

	items, err := svc.Suggest(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, present.AddProductActionID, items[0].Id)
	assert.Zero(t, repo.searchCalls)
}

func TestSuggestCachesIdenticalQueries(t *testing.T) {
	repo := &fakeProductRepository{matches: []*entity.ProductMatch{
		{ProductId: 1, Name: "Widget", Similarity: 0.9},
	}}
	svc, _ := newSuggestionFixture(repo)
	ctx := context.Background()

	first, err := svc.Suggest(ctx, "widget")
	assert.NoError(t, err)
	second, err := svc.Suggest(ctx, "widget")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.searchCalls, "second call within the TTL must hit the cache")
}

func TestInvokeAddActionOpensAddFlow(t *testing.T) {
	svc, sessions := newSuggestionFixture(&fakeProductRepository{})
	ctx := context.Background()

	reply, err := svc.InvokeAction(ctx, "u1", present.AddProductActionID)

	assert.NoError(t, err)
	assert.Equal(t, ActionPromptReply, reply)
	assert.Equal(t, session.StateAwaitingProductName, sessions.State(ctx, "u1"))
}

func TestInvokeUnknownActionFails(t *testing.T) {
	svc, sessions := newSuggestionFixture(&fakeProductRepository{})
	ctx := context.Background()

	_, err := svc.InvokeAction(ctx, "u1", "bogus")

	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, session.StateIdle, sessions.State(ctx, "u1"))
}
