// Package types holds the plain data structures the simulation core reads.
// The core never writes back to any of them.
package types

import "time"

// Character is the profile the analyzers read. It mirrors the stored
// character card; all fields are read-only from the core's point of view.
type Character struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	Species     string           `json:"species"`
	Description string           `json:"description"`
	Appearance  Appearance       `json:"appearance"`
	Personality Personality      `json:"personality"`
	Emotional   EmotionalProfile `json:"emotional_profile"`
	Alignment   string           `json:"alignment"`
	Social      SocialProfile    `json:"social"`
	Duality     Duality          `json:"duality"`
	Lore        Lore             `json:"lore"`
	Memories    []MemoryRecord   `json:"memories"`
	Scenario    Scenario         `json:"scenario"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Appearance describes the character's default look.
type Appearance struct {
	Style       string `json:"style"`
	Description string `json:"description"`
}

// Personality holds five-factor trait scores in [0,100] plus decision style
// and empathy. A card that omits neuroticism decodes to 50.
type Personality struct {
	Openness          int    `json:"openness"`
	Conscientiousness int    `json:"conscientiousness"`
	Extraversion      int    `json:"extraversion"`
	Agreeableness     int    `json:"agreeableness"`
	Neuroticism       int    `json:"neuroticism"`
	Empathy           int    `json:"empathy"`
	DecisionStyle     string `json:"decision_style"`
}

// EmotionalProfile is free-text descriptors of the character's emotional
// makeup. Analyzers match substrings against these, never parse them.
type EmotionalProfile struct {
	Stability       string `json:"stability"`
	JoyTriggers     string `json:"joy_triggers"`
	SadnessTriggers string `json:"sadness_triggers"`
	AngerTriggers   string `json:"anger_triggers"`
	Flaws           string `json:"flaws"`
}

// SocialProfile is free-text social battery and trust descriptors.
type SocialProfile struct {
	Battery string `json:"battery"`
	Trust   string `json:"trust"`
}

// Duality describes the gap between the presented self and the hidden one.
type Duality struct {
	SurfaceMask   string `json:"surface_mask"`
	HiddenCore    string `json:"hidden_core"`
	BreakingPoint string `json:"breaking_point"`
}

// Lore is the character's background material.
type Lore struct {
	Backstory string `json:"backstory"`
	Secrets   string `json:"secrets"`
	// UserRelationship is free text describing the relation to the user,
	// e.g. "childhood friend", "ex-girlfriend". Parsed by substring rules.
	UserRelationship string `json:"user_relationship"`
}

// Scenario is the character's current environment.
type Scenario struct {
	CurrentLocation string `json:"current_location"`
	CurrentActivity string `json:"current_activity"`
}

// OutfitItem is a wardrobe entry. Target selects who wears it; the engine
// only looks at items targeting "char".
type OutfitItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Target      string `json:"target"`
	Description string `json:"description"`
}
