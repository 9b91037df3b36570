package domain

import "strings"

// GeneratedSeparator separates cards in generated flashcard text.
const GeneratedSeparator = "###"

// GeneratedCard is one question/answer pair parsed from generated text.
type GeneratedCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ParseGenerated splits LLM output of the form "Q: ...\nA: ..." blocks
// separated by "###". Blocks missing either part are skipped. Lines after
// "A:" are appended to the answer.
func ParseGenerated(text string) []GeneratedCard {
	var cards []GeneratedCard
	for _, block := range strings.Split(text, GeneratedSeparator) {
		card, ok := parseBlock(block)
		if ok {
			cards = append(cards, card)
		}
	}
	return cards
}

func parseBlock(block string) (GeneratedCard, bool) {
	var (
		card     GeneratedCard
		inAnswer bool
		hasQ     bool
		hasA     bool
	)
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		switch {
		case strings.HasPrefix(line, "Q:"):
			card.Question = strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
			hasQ, inAnswer = true, false
		case strings.HasPrefix(line, "A:"):
			card.Answer = strings.TrimSpace(strings.TrimPrefix(line, "A:"))
			hasA, inAnswer = true, true
		case inAnswer && line != "":
			card.Answer += "\n" + line
		}
	}
	return card, hasQ && hasA
}
