package psyche

import (
	"strings"

	"github.com/pascolabs/neuralsim/internal/keywords"
	"github.com/pascolabs/neuralsim/internal/types"
)

// StateImpact is the result of the internal-state scan over the character's
// own recent messages: a signed score delta and an optional effect label.
type StateImpact struct {
	Impact   float64
	Modifier string
}

// Trait substrings that mark a character as weather-sensitive.
var (
	stormSensitivity = []string{"thunder", "storm", "loud", "petir", "kaget", "takut"}
	coldSensitivity  = []string{"cold", "sick", "weak", "dingin", "lemah"}
)

// AnalyzeInternalState inspects the last three model-authored messages for
// violence, euphoria, health, comfort, and weather cues. Categories are
// checked in strict priority order against the single latest message; the
// first hit wins outright. Health is the exception: it accumulates over the
// scanned window. Pass nil character to skip weather sensitivity.
func AnalyzeInternalState(modelMessages []types.Message, character *types.Character) StateImpact {
	recent := types.LastN(modelMessages, 3)
	if len(recent) == 0 {
		return StateImpact{}
	}
	latest := strings.ToLower(recent[len(recent)-1].Text)

	if keywords.ContainsAny(latest, keywords.Violence) {
		return StateImpact{Impact: -25, Modifier: "Physical Trauma"}
	}
	if keywords.ContainsAny(latest, keywords.Pleasure) {
		return StateImpact{Impact: 15, Modifier: "Euphoric State"}
	}

	if impact := scanHealth(recent); impact.Impact < -5 {
		return impact
	}

	if keywords.ContainsAny(latest, keywords.Comfort) {
		return StateImpact{Impact: 8, Modifier: "Feeling Safe"}
	}

	if character != nil {
		if impact := weatherImpact(latest, character); impact != 0 {
			modifier := "Weather Distress"
			if impact > 0 {
				modifier = "Weather Comfort"
			}
			return StateImpact{Impact: impact, Modifier: modifier}
		}
	}

	return StateImpact{}
}

// scanHealth walks the window newest-first, accumulating severity impact.
// The label comes only from the newest message; severe outranks moderate
// there. A recovery mention anywhere in the window mitigates by +10, capped
// so the total never crosses zero.
func scanHealth(recent []types.Message) StateImpact {
	impact := 0.0
	severity := 0
	label := ""
	recovery := false

	for i := 0; i < len(recent); i++ {
		text := strings.ToLower(recent[len(recent)-1-i].Text)
		if n := keywords.CountMatches(text, keywords.HealthSevere); n > 0 {
			impact -= 15 * float64(n)
			if i == 0 {
				severity = 2
				label = "Critical Condition"
			}
		}
		if n := keywords.CountMatches(text, keywords.HealthModerate); n > 0 {
			impact -= 8 * float64(n)
			if i == 0 && severity < 2 {
				severity = 1
				label = "Feeling Unwell"
			}
		}
		if keywords.ContainsAny(text, keywords.HealthRecovery) {
			recovery = true
		}
	}

	if recovery {
		impact += 10
		if impact > 0 {
			impact = 0
		}
	}
	if label == "" && impact < 0 {
		// Impact driven entirely by older messages in the window.
		label = "Lingering Illness"
	}
	return StateImpact{Impact: impact, Modifier: label}
}

// weatherImpact checks the latest message against storm/cold/rain tables and
// cross-references the character's traits for matching sensitivities.
func weatherImpact(latest string, character *types.Character) float64 {
	traits := strings.ToLower(strings.Join([]string{
		character.Emotional.Flaws,
		character.Emotional.SadnessTriggers,
		character.Emotional.AngerTriggers,
		character.Lore.Backstory,
		character.Description,
	}, " "))
	joy := strings.ToLower(character.Emotional.JoyTriggers)

	if keywords.ContainsAny(latest, keywords.WeatherStorm) {
		if keywords.ContainsAny(traits, stormSensitivity) {
			return -15
		}
		// Storms unsettle everyone a little.
		return -2
	}

	if keywords.ContainsAny(latest, keywords.WeatherCold) || keywords.ContainsAny(latest, keywords.WeatherRain) {
		if strings.Contains(joy, "hujan") || strings.Contains(joy, "rain") {
			return 5
		}
		if keywords.ContainsAny(traits, coldSensitivity) {
			return -10
		}
	}
	return 0
}
