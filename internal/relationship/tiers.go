// Package relationship derives the social bond between character and user:
// a -100..100 score, a tier from a static 45-row catalog, and an instant
// reaction to the latest user message layered on a long-history baseline.
package relationship

// TierType partitions the tier catalog by relational flavor. Hostile and
// Neutral tiers are always eligible; Platonic and Romantic are mutually
// exclusive, selected by the romantic-context flag.
type TierType string

const (
	TierHostile  TierType = "Hostile"
	TierNeutral  TierType = "Neutral"
	TierPlatonic TierType = "Platonic"
	TierRomantic TierType = "Romantic"
)

// Tier is one static band of the relationship scale. Icon and Color are
// symbolic tags; the rendering layer maps them to visuals.
type Tier struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	MinScore int      `json:"min_score"`
	MaxScore int      `json:"max_score"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
	Type     TierType `json:"type"`
}

// Tiers is the full 45-row catalog. Hostile covers -100..-1 in 10 bands,
// Neutral 0..29 in 5, Platonic and Romantic each 30..100 in 15. Platonic
// and Romantic bands overlap by score but never by type filter.
var Tiers = []Tier{
	// Hostile: -100..-1
	{ID: "h1", Label: "Nemesis", MinScore: -100, MaxScore: -91, Icon: "skull", Color: "crimson", Type: TierHostile},
	{ID: "h2", Label: "Archenemy", MinScore: -90, MaxScore: -81, Icon: "crossed-swords", Color: "crimson", Type: TierHostile},
	{ID: "h3", Label: "Sworn Enemy", MinScore: -80, MaxScore: -71, Icon: "dagger", Color: "red", Type: TierHostile},
	{ID: "h4", Label: "Despised", MinScore: -70, MaxScore: -61, Icon: "storm-cloud", Color: "red", Type: TierHostile},
	{ID: "h5", Label: "Hated", MinScore: -60, MaxScore: -51, Icon: "flame", Color: "red", Type: TierHostile},
	{ID: "h6", Label: "Hostile", MinScore: -50, MaxScore: -41, Icon: "shield-off", Color: "orange", Type: TierHostile},
	{ID: "h7", Label: "Antagonistic", MinScore: -40, MaxScore: -31, Icon: "zap", Color: "orange", Type: TierHostile},
	{ID: "h8", Label: "Resentful", MinScore: -30, MaxScore: -21, Icon: "frown", Color: "amber", Type: TierHostile},
	{ID: "h9", Label: "Disliked", MinScore: -20, MaxScore: -11, Icon: "thumbs-down", Color: "amber", Type: TierHostile},
	{ID: "h10", Label: "Uneasy", MinScore: -10, MaxScore: -1, Icon: "alert", Color: "yellow", Type: TierHostile},

	// Neutral: 0..29
	{ID: "n1", Label: "Stranger", MinScore: 0, MaxScore: 5, Icon: "user", Color: "slate", Type: TierNeutral},
	{ID: "n2", Label: "Acquaintance", MinScore: 6, MaxScore: 11, Icon: "user-check", Color: "slate", Type: TierNeutral},
	{ID: "n3", Label: "Familiar Face", MinScore: 12, MaxScore: 17, Icon: "smile", Color: "sky", Type: TierNeutral},
	{ID: "n4", Label: "Casual Contact", MinScore: 18, MaxScore: 23, Icon: "coffee", Color: "sky", Type: TierNeutral},
	{ID: "n5", Label: "Friendly Acquaintance", MinScore: 24, MaxScore: 29, Icon: "wave", Color: "teal", Type: TierNeutral},

	// Platonic: 30..100
	{ID: "p1", Label: "New Friend", MinScore: 30, MaxScore: 34, Icon: "handshake", Color: "teal", Type: TierPlatonic},
	{ID: "p2", Label: "Friend", MinScore: 35, MaxScore: 39, Icon: "users", Color: "teal", Type: TierPlatonic},
	{ID: "p3", Label: "Good Friend", MinScore: 40, MaxScore: 44, Icon: "sun", Color: "green", Type: TierPlatonic},
	{ID: "p4", Label: "Close Friend", MinScore: 45, MaxScore: 49, Icon: "star", Color: "green", Type: TierPlatonic},
	{ID: "p5", Label: "Trusted Friend", MinScore: 50, MaxScore: 54, Icon: "shield", Color: "green", Type: TierPlatonic},
	{ID: "p6", Label: "Confidant", MinScore: 55, MaxScore: 59, Icon: "key", Color: "emerald", Type: TierPlatonic},
	{ID: "p7", Label: "Best Friend", MinScore: 60, MaxScore: 64, Icon: "medal", Color: "emerald", Type: TierPlatonic},
	{ID: "p8", Label: "Inseparable", MinScore: 65, MaxScore: 69, Icon: "link", Color: "emerald", Type: TierPlatonic},
	{ID: "p9", Label: "Sworn Friend", MinScore: 70, MaxScore: 74, Icon: "anchor", Color: "emerald", Type: TierPlatonic},
	{ID: "p10", Label: "Kindred Spirit", MinScore: 75, MaxScore: 79, Icon: "feather", Color: "violet", Type: TierPlatonic},
	{ID: "p11", Label: "Chosen Family", MinScore: 80, MaxScore: 84, Icon: "house-heart", Color: "violet", Type: TierPlatonic},
	{ID: "p12", Label: "Lifelong Bond", MinScore: 85, MaxScore: 89, Icon: "infinity", Color: "violet", Type: TierPlatonic},
	{ID: "p13", Label: "Platonic Soulmate", MinScore: 90, MaxScore: 94, Icon: "sparkles", Color: "violet", Type: TierPlatonic},
	{ID: "p14", Label: "Unbreakable Bond", MinScore: 95, MaxScore: 97, Icon: "diamond", Color: "fuchsia", Type: TierPlatonic},
	{ID: "p15", Label: "Other Half", MinScore: 98, MaxScore: 100, Icon: "crown", Color: "fuchsia", Type: TierPlatonic},

	// Romantic: 30..100
	{ID: "r1", Label: "Spark of Interest", MinScore: 30, MaxScore: 34, Icon: "spark", Color: "rose", Type: TierRomantic},
	{ID: "r2", Label: "Crush", MinScore: 35, MaxScore: 39, Icon: "heart-outline", Color: "rose", Type: TierRomantic},
	{ID: "r3", Label: "Infatuated", MinScore: 40, MaxScore: 44, Icon: "heart-half", Color: "rose", Type: TierRomantic},
	{ID: "r4", Label: "Courting", MinScore: 45, MaxScore: 49, Icon: "flower", Color: "pink", Type: TierRomantic},
	{ID: "r5", Label: "Dating", MinScore: 50, MaxScore: 54, Icon: "heart", Color: "pink", Type: TierRomantic},
	{ID: "r6", Label: "Sweethearts", MinScore: 55, MaxScore: 59, Icon: "hearts", Color: "pink", Type: TierRomantic},
	{ID: "r7", Label: "Falling in Love", MinScore: 60, MaxScore: 64, Icon: "heart-arrow", Color: "pink", Type: TierRomantic},
	{ID: "r8", Label: "In Love", MinScore: 65, MaxScore: 69, Icon: "heart-fire", Color: "red", Type: TierRomantic},
	{ID: "r9", Label: "Devoted Partner", MinScore: 70, MaxScore: 74, Icon: "ring", Color: "red", Type: TierRomantic},
	{ID: "r10", Label: "Deeply In Love", MinScore: 75, MaxScore: 79, Icon: "heart-glow", Color: "red", Type: TierRomantic},
	{ID: "r11", Label: "Madly in Love", MinScore: 80, MaxScore: 84, Icon: "heart-storm", Color: "red", Type: TierRomantic},
	{ID: "r12", Label: "Soulmate", MinScore: 85, MaxScore: 89, Icon: "soul", Color: "violet", Type: TierRomantic},
	{ID: "r13", Label: "Eternal Love", MinScore: 90, MaxScore: 94, Icon: "eternal", Color: "violet", Type: TierRomantic},
	{ID: "r14", Label: "Twin Flame", MinScore: 95, MaxScore: 97, Icon: "twin-flame", Color: "fuchsia", Type: TierRomantic},
	{ID: "r15", Label: "Destined", MinScore: 98, MaxScore: 100, Icon: "comet", Color: "fuchsia", Type: TierRomantic},
}

// fallbackTier is the synthetic last resort when no band matches. With full
// coverage it should never surface; it exists so tier lookup cannot fail.
var fallbackTier = Tier{
	ID:       "unknown",
	Label:    "Unknown",
	MinScore: 0,
	MaxScore: 0,
	Icon:     "question",
	Color:    "slate",
	Type:     TierNeutral,
}

// FindTier returns the band containing score among the eligible types.
// Hostile and Neutral are always eligible; romantic selects between the
// Romantic and Platonic partitions. When no band contains the score the
// nearest band by midpoint wins.
func FindTier(score int, romantic bool) Tier {
	var nearest *Tier
	nearestDist := 0

	for i := range Tiers {
		tier := &Tiers[i]
		switch tier.Type {
		case TierPlatonic:
			if romantic {
				continue
			}
		case TierRomantic:
			if !romantic {
				continue
			}
		}
		if score >= tier.MinScore && score <= tier.MaxScore {
			return *tier
		}
		mid := (tier.MinScore + tier.MaxScore) / 2
		dist := score - mid
		if dist < 0 {
			dist = -dist
		}
		if nearest == nil || dist < nearestDist {
			nearest = tier
			nearestDist = dist
		}
	}

	if nearest != nil {
		return *nearest
	}
	return fallbackTier
}

// DefaultTier is the neutral starting band, used by the fail-to-neutral
// fallback state.
func DefaultTier() Tier {
	return Tiers[10] // n1 Stranger
}
