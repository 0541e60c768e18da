package present

import (
	"fmt"
	"strconv"

	"catalog-chatbot-be/internal/dto"
	"catalog-chatbot-be/internal/entity"
)

// MaxSuggestions is the hard cap of the live suggestion surface.
const MaxSuggestions = 50

// AddProductActionID identifies the synthetic suggestion that starts the add
// flow when a live query finds nothing.
const AddProductActionID = "add_product"

const addProductTitle = "Add a new product"

// Suggestions renders ranked matches for the live suggestion surface,
// truncated to MaxSuggestions. An empty match list yields exactly one
// synthetic entry offering to add a product instead.
func Suggestions(matches []*entity.ProductMatch) []dto.SuggestionItem {
	if len(matches) == 0 {
		return []dto.SuggestionItem{
			{
				Id:          AddProductActionID,
				Title:       addProductTitle,
				MessageText: addProductTitle,
				Action: &dto.SuggestionAction{
					Id:    AddProductActionID,
					Label: "Add",
				},
			},
		}
	}

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}

	items := make([]dto.SuggestionItem, len(matches))
	for i, m := range matches {
		items[i] = dto.SuggestionItem{
			Id:          strconv.FormatInt(m.ProductId, 10),
			Title:       m.Name,
			Description: fmt.Sprintf("Match: %.2f%%", m.Similarity*100),
			MessageText: MatchLine(m),
		}
	}
	return items
}
