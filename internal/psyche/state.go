// Package psyche derives the character's mental-stability state from the
// message history, scenario context, and trait configuration. Everything in
// this package is a pure function: the state is re-derived from scratch on
// every call, never accumulated.
package psyche

// Status is the discrete stability tier.
type Status string

const (
	StatusStable     Status = "Stable"
	StatusAnxious    Status = "Anxious"
	StatusFrightened Status = "Frightened"
	StatusPanicked   Status = "Panicked"
	StatusBroken     Status = "Broken"
)

// Trend is the direction the score is moving.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// State is the derived psyche snapshot. Ephemeral: recomputed per render,
// never persisted by the core.
type State struct {
	Score                 int      `json:"score"`
	Status                Status   `json:"status"`
	Modifiers             []string `json:"modifiers"`
	Trend                 Trend    `json:"trend"`
	EmotionalIntelligence int      `json:"emotional_intelligence"`
	RecoveryRate          float64  `json:"recovery_rate"`
}

// statusForScore maps a clamped score onto the status taxonomy. Thresholds
// are evaluated in order; the last matching one wins, so a score of 5 is
// Broken, not Anxious.
func statusForScore(score int) Status {
	status := StatusStable
	if score < 80 {
		status = StatusAnxious
	}
	if score < 50 {
		status = StatusFrightened
	}
	if score < 30 {
		status = StatusPanicked
	}
	if score < 10 {
		status = StatusBroken
	}
	return status
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
