package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"rift-rewind/internal/domain"
	"rift-rewind/internal/stats"
)

const systemPrompt = `You are an analyst for League of Legends season reviews.
You receive a player's match performances grouped by month and classify their
playstyle, strengths, weaknesses, and give advice.

Respond with ONLY a JSON object, no prose, in this exact shape:
{
  "playstyle": {"type": "<PLAYSTYLE_TAG>", "reason": "<one sentence>"},
  "strengths": [{"type": "<ELEMENT_TAG>", "reason": "<one sentence>"}],
  "weaknesses": [{"type": "<ELEMENT_TAG>", "reason": "<one sentence>"}],
  "advice": [{"type": "<ANY_TAG>", "reason": "<one sentence>"}]
}

Playstyle tags (pick exactly one): %s
Gameplay element tags (for strengths and weaknesses): %s
Advice entries may use either tag set.
Give 2-3 strengths, 1-2 weaknesses, and 2-3 pieces of advice.`

func buildPrompt(months []stats.MonthlyOverview) (string, error) {
	payload, err := json.Marshal(months)
	if err != nil {
		return "", fmt.Errorf("encoding match overviews: %w", err)
	}
	return fmt.Sprintf("Season match data by month:\n%s", payload), nil
}

func buildSystemPrompt() string {
	return fmt.Sprintf(systemPrompt,
		strings.Join(domain.PlaystyleTypes, ", "),
		strings.Join(domain.GameplayElementTypes, ", "))
}

// stripCodeFences removes a markdown fence the model sometimes wraps around
// its JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
