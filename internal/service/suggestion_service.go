package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/entity"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/pkg/match"
	"catalog-chatbot-be/pkg/present"
	"catalog-chatbot-be/pkg/session"

	"github.com/patrickmn/go-cache"
)

// ErrUnknownAction is returned when a suggestion action id is not recognized.
var ErrUnknownAction = errors.New("unknown suggestion action")

// ActionPromptReply is sent after the synthetic add suggestion is invoked.
const ActionPromptReply = "Enter the product name to add:"

// resultCacheTTL keeps identical live queries from hammering the store while
// the user types. The surface tolerates results this stale.
const resultCacheTTL = 1 * time.Second

// ISuggestionService resolves live-query events. Suggest is stateless; only
// InvokeAction touches the user's session, and only through the synthetic
// add entry.
type ISuggestionService interface {
	Suggest(ctx context.Context, query string) ([]dto.SuggestionItem, error)
	InvokeAction(ctx context.Context, userID, actionID string) (string, error)
}

type suggestionService struct {
	ranker   *match.Ranker
	sessions *session.Manager
	results  *cache.Cache
	logger   logger.ILogger
}

func NewSuggestionService(
	ranker *match.Ranker,
	sessions *session.Manager,
	log logger.ILogger,
) ISuggestionService {
	return &suggestionService{
		ranker:   ranker,
		sessions: sessions,
		results:  cache.New(resultCacheTTL, time.Minute),
		logger:   log,
	}
}

func (s *suggestionService) Suggest(ctx context.Context, query string) ([]dto.SuggestionItem, error) {
	query = strings.TrimSpace(query)

	cacheKey := "q:" + query
	if x, found := s.results.Get(cacheKey); found {
		return x.([]dto.SuggestionItem), nil
	}

	var matches []*entity.ProductMatch
	if query != "" {
		var err error
		matches, err = s.ranker.Rank(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	items := present.Suggestions(matches)
	s.results.Set(cacheKey, items, cache.DefaultExpiration)
	return items, nil
}

// InvokeAction fires the action attached to a suggestion entry. The add
// action opens the add flow exactly as the explicit add command does.
func (s *suggestionService) InvokeAction(ctx context.Context, userID, actionID string) (string, error) {
	if actionID != present.AddProductActionID {
		return "", ErrUnknownAction
	}

	err := s.sessions.Do(ctx, userID, func(sess *session.Session) error {
		s.sessions.Transition(sess, session.StateAwaitingProductName)
		return nil
	})
	return ActionPromptReply, err
}
