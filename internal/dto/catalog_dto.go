package dto

type CommandRequest struct {
	UserId  string `json:"user_id" validate:"required"`
	Command string `json:"command" validate:"required,oneof=start add search"`
}

type MessageRequest struct {
	UserId string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

type ResetRequest struct {
	UserId string `json:"user_id" validate:"required"`
}

type ReplyResponse struct {
	Reply string `json:"reply"`
}

// SuggestionAction is the optional button attached to a suggestion entry.
type SuggestionAction struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// SuggestionItem matches the transport's inline item shape.
type SuggestionItem struct {
	Id          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	MessageText string            `json:"message_text"`
	Action      *SuggestionAction `json:"action,omitempty"`
}

type SuggestResponse struct {
	Results []SuggestionItem `json:"results"`
}

type SuggestionActionRequest struct {
	UserId   string `json:"user_id" validate:"required"`
	ActionId string `json:"action_id" validate:"required"`
}

type CatalogStatsResponse struct {
	ProductCount int64 `json:"product_count"`
}

// ProductAddedMessage is the payload published on the internal event bus
// whenever a product row is inserted.
type ProductAddedMessage struct {
	ProductId int64  `json:"product_id"`
	Name      string `json:"name"`
}
