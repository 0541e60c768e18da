package present

import (
	"fmt"
	"strings"

	"catalog-chatbot-be/internal/entity"
)

// NoResultsReply is the fixed text used when a search finds nothing (or the
// store failed and was swallowed; the user cannot tell the difference).
const NoResultsReply = "No products found."

// MatchLine renders the single-match text shared by the conversational reply
// and the suggestion message payload.
func MatchLine(m *entity.ProductMatch) string {
	return fmt.Sprintf("%d: %s\n(match: %.2f%%)", m.ProductId, m.Name, m.Similarity*100)
}

// Reply renders the conversational search response. Every match is included,
// no truncation.
func Reply(matches []*entity.ProductMatch) string {
	if len(matches) == 0 {
		return NoResultsReply
	}

	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = MatchLine(m)
	}
	return strings.Join(lines, "\n")
}
