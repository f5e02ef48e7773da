// Package engram extracts the character's short-term attentional focus:
// the most salient keywords across the recent conversation window plus
// injected environmental and identity context.
package engram

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pascolabs/neuralsim/internal/keywords"
	"github.com/pascolabs/neuralsim/internal/types"
)

const (
	// messageWindow is how many trailing messages are scanned.
	messageWindow = 5
	// maxFocus caps the returned keyword list.
	maxFocus = 5

	locationWeight = 1.2
	activityWeight = 1.0
	identityWeight = 0.5
	roleWeight     = 0.6
)

// IdentityContext seeds the extractor with names the conversation orbits.
type IdentityContext struct {
	UserName string
	CharName string
	CharRole string
}

// Extract returns up to five capitalized keywords describing the current
// conversational focus. Pure function: identical inputs give the identical
// ordered list.
func Extract(messages []types.Message, location, activity string, identity IdentityContext) []string {
	scores := make(map[string]float64)
	var order []string

	add := func(token string, weight float64) {
		if _, seen := scores[token]; !seen {
			order = append(order, token)
		}
		scores[token] += weight
	}

	window := types.LastN(messages, messageWindow)
	for i, msg := range window {
		// Oldest of the window lands near 0.7, the newest at 1.5.
		weight := 0.5 + float64(i+1)/float64(len(window))
		for _, token := range tokenize(msg.Text) {
			add(token, weight)
		}
	}

	for _, token := range tokenize(location) {
		add(token, locationWeight)
	}
	for _, token := range tokenize(activity) {
		add(token, activityWeight)
	}
	for _, token := range tokenize(identity.UserName) {
		add(token, identityWeight)
	}
	for _, token := range tokenize(identity.CharName) {
		add(token, identityWeight)
	}
	for _, token := range tokenize(identity.CharRole) {
		add(token, roleWeight)
	}

	// Stable sort keeps first-occurrence order among equal scores.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > maxFocus {
		order = order[:maxFocus]
	}
	focus := make([]string, len(order))
	for i, token := range order {
		focus[i] = capitalize(token)
	}
	return focus
}

// tokenize lowercases text, strips everything but letters, digits and
// spaces, and drops stop-words and tokens of length <= 2.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	fields := strings.Fields(sb.String())
	tokens := fields[:0]
	for _, token := range fields {
		if len([]rune(token)) <= 2 {
			continue
		}
		if keywords.IsStopWord(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func capitalize(token string) string {
	runes := []rune(token)
	if len(runes) == 0 {
		return token
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
