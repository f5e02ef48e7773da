package psyche

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/pascolabs/neuralsim/internal/keywords"
	"github.com/pascolabs/neuralsim/internal/types"
)

const (
	baselineScore = 80.0
	fragileScore  = 60.0
	stoicScore    = 90.0

	historyWindow    = 10
	modelStateWindow = 5
	midnightStress   = 5.0
	trendDeadband    = 2.0
	yellStress       = 15.0
	aggressionStress = 20.0
	stalkingStress   = 25.0
	comfortBase      = 10.0
	comfortBoostBase = 5.0
	resilienceBuffer = 0.4
	minDecay         = 0.1
)

// Analyze derives the psyche state from the character profile, the full
// message history, and the current virtual time in milliseconds. The full
// history is re-scanned on every call; there is no hidden accumulator, so
// the result is reproducible from the message log alone.
func Analyze(character *types.Character, messages []types.Message, virtualTimeMs int64) State {
	if character == nil {
		return neutralState()
	}

	traits := character.Personality
	resilience := 1 - float64(traits.Neuroticism)/100
	eq := clampScore(float64(traits.Empathy)*0.4 +
		float64(traits.Agreeableness)*0.3 +
		float64(traits.Openness)*0.2 +
		float64(100-traits.Neuroticism)*0.1)

	score := baselineScore
	stability := strings.ToLower(character.Emotional.Stability)
	if strings.Contains(stability, "low") || strings.Contains(stability, "fragile") {
		score = fragileScore
	} else if strings.Contains(stability, "high") || strings.Contains(stability, "stoic") {
		score = stoicScore
	}

	var modifiers []string

	// Scenario stress plus the deterministic chaos term. Chaos is a pure
	// function of the scenario text: identical text, identical variance.
	scenarioText := strings.TrimSpace(strings.ToLower(
		character.Scenario.CurrentLocation + " " + character.Scenario.CurrentActivity))
	scenarioImpact := 0.0
	switch {
	case keywords.ContainsAny(scenarioText, keywords.HighStress):
		scenarioImpact = -15
		modifiers = append(modifiers, "Scenario Stress (High)")
	case keywords.ContainsAny(scenarioText, keywords.ModerateStress):
		scenarioImpact = -8
		modifiers = append(modifiers, "Scenario Stress (Mod)")
	case keywords.ContainsAny(scenarioText, keywords.ComfortPlace):
		scenarioImpact = 10
	}
	scenarioImpact += scenarioChaos(scenarioText)
	score += scenarioImpact

	// Somatic scan over the character's own recent messages.
	modelMessages := types.LastN(types.FilterRole(messages, types.RoleModel), modelStateWindow)
	somatic := AnalyzeInternalState(modelMessages, character)
	score += somatic.Impact
	if somatic.Modifier != "" {
		modifiers = append(modifiers, somatic.Modifier)
	}

	cumulativeStress := 0.0
	if hour := time.UnixMilli(virtualTimeMs).Hour(); hour >= 0 && hour < 4 {
		cumulativeStress += midnightStress
		modifiers = append(modifiers, "Midnight Melancholy")
	}

	baseRecovery := 2 + eq/20 + resilience*3
	recoveryBoost := 0.0
	newestStressed := false

	recent := types.LastN(messages, historyWindow)
	for i, msg := range recent {
		if msg.Role != types.RoleUser {
			continue
		}
		msgAge := len(recent) - 1 - i
		decay := math.Max(minDecay, 1-float64(msgAge)*(0.15+eq/500))
		lowered := strings.ToLower(msg.Text)
		newest := i == len(recent)-1

		msgStress := 0.0
		msgComfort := 0.0

		if isYelling(msg.Text) || strings.Count(msg.Text, "!") > 2 {
			msgStress += yellStress
			if newest {
				modifiers = append(modifiers, "Verbal Aggression")
				newestStressed = true
			}
		}
		if keywords.ContainsAny(lowered, keywords.Aggression) {
			msgStress += aggressionStress
			if newest {
				modifiers = append(modifiers, "Emotional Abuse")
				newestStressed = true
			}
		}
		if keywords.ContainsAny(lowered, keywords.Stalking) &&
			(strings.Contains(lowered, "kamu") || strings.Contains(lowered, "u")) {
			msgStress += stalkingStress
			if newest {
				modifiers = append(modifiers, "Paranoia Trigger")
			}
		}
		if keywords.ContainsAny(lowered, keywords.Comfort) {
			forgiveness := 1 + eq/100
			msgComfort += comfortBase * forgiveness
			if newest {
				recoveryBoost += comfortBoostBase * forgiveness
			}
		}

		cumulativeStress += msgStress * decay
		score += msgComfort * decay
	}

	effectiveStress := cumulativeStress * (1 - resilience*resilienceBuffer)
	score -= effectiveStress

	// Natural healing applies only while not actively being stressed, and
	// only once there is a history to heal from.
	totalRecovery := baseRecovery + recoveryBoost
	if len(recent) > 0 && !newestStressed {
		score += totalRecovery
	}

	score = clampScore(score)

	trend := TrendStable
	switch {
	case effectiveStress > totalRecovery+trendDeadband:
		trend = TrendFalling
	case totalRecovery > effectiveStress+trendDeadband:
		trend = TrendRising
	}

	return State{
		Score:                 int(math.Round(score)),
		Status:                statusForScore(int(math.Round(score))),
		Modifiers:             dedupe(modifiers),
		Trend:                 trend,
		EmotionalIntelligence: int(math.Round(eq)),
		RecoveryRate:          totalRecovery,
	}
}

// scenarioChaos is a 32-bit rolling hash of the scenario text, truncated
// mod 10 (roughly -9..9). Deliberately not a seeded RNG: reproducibility
// requires a pure function of the text.
func scenarioChaos(text string) float64 {
	var h int32
	for _, r := range text {
		h = h*31 + int32(r)
	}
	return float64(h % 10)
}

// isYelling reports whether a non-trivial message is written entirely in
// uppercase and contains at least one letter.
func isYelling(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= 4 {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	return hasLetter && trimmed == strings.ToUpper(trimmed)
}

func dedupe(modifiers []string) []string {
	if len(modifiers) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(modifiers))
	out := modifiers[:0]
	for _, m := range modifiers {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// neutralState is the fail-to-neutral fallback when no character is
// supplied. Analyzers run inline in a render path and must never panic.
func neutralState() State {
	return State{
		Score:                 int(baselineScore),
		Status:                StatusStable,
		Trend:                 TrendStable,
		EmotionalIntelligence: 50,
		RecoveryRate:          2 + 50.0/20 + 0.5*3,
	}
}
