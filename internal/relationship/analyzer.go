package relationship

import (
	"math"
	"strings"

	"github.com/pascolabs/neuralsim/internal/keywords"
	"github.com/pascolabs/neuralsim/internal/psyche"
	"github.com/pascolabs/neuralsim/internal/types"
)

// Trend describes the bond's direction of travel.
type Trend string

const (
	TrendImproving     Trend = "improving"
	TrendDeteriorating Trend = "deteriorating"
	TrendStagnant      Trend = "stagnant"
	TrendVolatile      Trend = "volatile"
)

// State is the derived relationship snapshot. Ephemeral like psyche.State:
// re-derived from the full message log on every call.
type State struct {
	Score    int     `json:"score"`
	Tier     Tier    `json:"tier"`
	Progress float64 `json:"progress"`
	Trend    Trend   `json:"trend"`
	Context  string  `json:"context"`
}

// relationRule maps free-text relation descriptions onto a starting
// disposition. Rules apply in order; later matches overwrite earlier ones,
// so "ex-girlfriend" lands on the ex rule even though "girlfriend" matched
// the romantic-partner rule first.
type relationRule struct {
	keys     []string
	score    float64
	romantic bool
}

var relationRules = []relationRule{
	{keys: []string{"friend", "teman"}, score: 40},
	{keys: []string{"best friend", "sahabat"}, score: 60},
	{keys: []string{"ally", "rekan"}, score: 35},
	{keys: []string{"family", "keluarga", "saudara", "kakak", "adik"}, score: 70},
	{keys: []string{"childhood", "masa kecil"}, score: 65},
	{keys: []string{"girlfriend", "boyfriend", "pacar", "kekasih", "wife", "husband", "istri", "suami", "lover"}, score: 75, romantic: true},
	{keys: []string{"ex", "mantan"}, score: -10},
	{keys: []string{"crush", "gebetan"}, score: 45, romantic: true},
	{keys: []string{"enemy", "musuh"}, score: -60},
	{keys: []string{"rival", "saingan"}, score: -30},
	{keys: []string{"hater", "benci"}, score: -80},
	{keys: []string{"stranger", "orang asing", "unknown"}, score: 0},
}

// parseRelation derives the starting disposition from the lore's free-text
// relation-to-user field. No match means a neutral stranger.
func parseRelation(text string) (float64, bool) {
	lowered := strings.ToLower(text)
	score := 0.0
	romantic := false
	for _, rule := range relationRules {
		if keywords.ContainsAny(lowered, rule.keys) {
			score = rule.score
			romantic = rule.romantic
		}
	}
	return score, romantic
}

// Analyze derives the relationship state. The psyche state must already be
// computed: a shaken mind dampens trust gains and amplifies volatility.
func Analyze(character *types.Character, messages []types.Message, mind psyche.State) State {
	if character == nil {
		return neutralState()
	}

	score, romantic := parseRelation(character.Lore.UserRelationship)

	trustDampener := 1.0
	if mind.Score < 40 {
		trustDampener = 0.5
	}
	volatility := 1.0
	switch {
	case mind.Score < 40:
		volatility = 1.5
	case mind.Score > 80:
		volatility = 0.8
	}

	// A trailing user message gets instant-impact treatment; everything
	// before it accumulates into the baseline.
	history := messages
	var lastMsg *types.Message
	if len(messages) > 0 && messages[len(messages)-1].Role == types.RoleUser {
		lastMsg = &messages[len(messages)-1]
		history = messages[:len(messages)-1]
	}

	for _, msg := range history {
		if msg.Role != types.RoleUser {
			continue
		}
		lowered := strings.ToLower(msg.Text)
		if score > -20 {
			// Showing up at all maintains trust, slowly.
			score += 0.1 * trustDampener
		}
		if keywords.ContainsAny(lowered, keywords.Romance) {
			score += 1.0 * trustDampener
			if score > 30 {
				romantic = true
			}
		}
		if keywords.ContainsAny(lowered, keywords.Hostility) {
			score -= 3.0 * volatility
		}
	}
	score = clampScore(score)

	trend := TrendStagnant
	contextLabel := ""

	if lastMsg != nil {
		impactMult := 1.0
		if math.Abs(score) > 80 {
			// Inertia: entrenched relationships move slowly.
			impactMult = 0.5
		}
		lowered := strings.ToLower(lastMsg.Text)
		shift := 0.0

		switch {
		case keywords.ContainsAny(lowered, keywords.Hostility):
			if score > 60 {
				if romantic {
					shift = -50 * volatility
					romantic = false
					contextLabel = "Heartbroken / Betrayed"
					trend = TrendVolatile
				} else {
					shift = -35 * volatility
					contextLabel = "Deeply Hurt"
					trend = TrendDeteriorating
				}
			} else {
				shift = -5 * volatility
				trend = TrendDeteriorating
			}
		case keywords.ContainsAny(lowered, keywords.Romance):
			switch {
			case romantic:
				shift = 2 * trustDampener * impactMult
				trend = TrendImproving
			case score > 75:
				// Friend-zone friction: a deep platonic bond recoils
				// from sudden romance.
				shift = -5
				contextLabel = "Awkward Tension"
				trend = TrendStagnant
			case score > 30:
				shift = 2 * trustDampener
				romantic = true
				trend = TrendImproving
			default:
				shift = -2
				contextLabel = "Uncomfortable"
			}
		default:
			if score > -20 {
				shift = 0.2 * impactMult
			}
		}
		score += shift
	}

	score = clampScore(score)
	final := int(math.Round(score))
	tier := FindTier(final, romantic)

	// The final label is always recomputed from the final score; the branch
	// labels above survive only until here. Kept for output compatibility.
	switch {
	case final < -80:
		contextLabel = "Nemesis"
	case final < -40:
		contextLabel = "Hostile"
	case final < 0:
		contextLabel = "Cold"
	case romantic:
		contextLabel = "Romantic Interest"
	default:
		contextLabel = "Platonic Bond"
	}
	if mind.Score < 30 {
		contextLabel += " (Unstable)"
	}

	progress := 100.0
	if tier.MaxScore != tier.MinScore {
		progress = float64(final-tier.MinScore) / float64(tier.MaxScore-tier.MinScore) * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	return State{
		Score:    final,
		Tier:     tier,
		Progress: progress,
		Trend:    trend,
		Context:  contextLabel,
	}
}

func clampScore(score float64) float64 {
	switch {
	case score < -100:
		return -100
	case score > 100:
		return 100
	default:
		return score
	}
}

// neutralState is the fail-to-neutral fallback for malformed inputs; the
// analyzer runs inline in a render path and must never panic.
func neutralState() State {
	return State{
		Score:    0,
		Tier:     DefaultTier(),
		Progress: 0,
		Trend:    TrendStagnant,
		Context:  "Initializing...",
	}
}
