package service

import (
	"context"
	"fmt"

	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/pkg/match"
	"catalog-chatbot-be/pkg/present"
	"catalog-chatbot-be/pkg/session"
	"catalog-chatbot-be/pkg/utils"
)

// Conversation replies.
const (
	StartReply = "Send \"add\" to add a product, \"search\" to find one, or use the inline lookup to search as you type."

	PromptNameReply  = "Enter the product name:"
	PromptQueryReply = "Enter a search query:"

	addedReplyFmt = "Product '%s' added."
)

// IConversationService drives the per-user dialog: commands open a flow,
// the next free-text message completes it.
type IConversationService interface {
	HandleCommand(ctx context.Context, userID, command string) (string, error)
	HandleMessage(ctx context.Context, userID, text string) (string, error)
	Reset(ctx context.Context, userID string) error
}

type conversationService struct {
	sessions *session.Manager
	catalog  ICatalogService
	ranker   *match.Ranker
	logger   logger.ILogger
}

func NewConversationService(
	sessions *session.Manager,
	catalog ICatalogService,
	ranker *match.Ranker,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions: sessions,
		catalog:  catalog,
		ranker:   ranker,
		logger:   log,
	}
}

func (c *conversationService) HandleCommand(ctx context.Context, userID, command string) (string, error) {
	switch command {
	case "start":
		return StartReply, nil
	case "add":
		err := c.sessions.Do(ctx, userID, func(s *session.Session) error {
			c.sessions.Transition(s, session.StateAwaitingProductName)
			return nil
		})
		return PromptNameReply, err
	case "search":
		err := c.sessions.Do(ctx, userID, func(s *session.Session) error {
			c.sessions.Transition(s, session.StateAwaitingSearchQuery)
			return nil
		})
		return PromptQueryReply, err
	default:
		// Unrecognized tokens are not this core's business.
		return "", nil
	}
}

// HandleMessage routes a free-text message by the user's current state. The
// session drops back to Idle only after the store operation and the reply
// have both been attempted, so the user's next message cannot be misrouted.
func (c *conversationService) HandleMessage(ctx context.Context, userID, text string) (string, error) {
	var reply string

	err := c.sessions.Do(ctx, userID, func(s *session.Session) error {
		switch s.State {
		case session.StateAwaitingProductName:
			name := utils.CleanProductName(text)
			if name == "" {
				// Blank input never reaches the store; keep waiting.
				reply = PromptNameReply
				return nil
			}
			if err := c.catalog.AddProduct(ctx, name); err != nil {
				reply = PromptNameReply
				return nil
			}
			reply = fmt.Sprintf(addedReplyFmt, name)
			c.sessions.Transition(s, session.StateIdle)

		case session.StateAwaitingSearchQuery:
			query := utils.CleanProductName(text)
			if query == "" {
				reply = PromptQueryReply
				return nil
			}
			matches, err := c.ranker.Rank(ctx, query)
			if err != nil {
				return err
			}
			reply = present.Reply(matches)
			c.sessions.Transition(s, session.StateIdle)

		default:
			// Idle: free text without a command is ignored here; the
			// transport decides whether to answer at all.
			reply = ""
		}
		return nil
	})

	return reply, err
}

func (c *conversationService) Reset(ctx context.Context, userID string) error {
	return c.sessions.Do(ctx, userID, func(s *session.Session) error {
		c.sessions.Transition(s, session.StateIdle)
		return nil
	})
}
