// Package profile composes the analyzers into one immutable Neural Profile
// snapshot per render. Computation is pure; the engine adds memoization so
// repeated renders inside the same simulated minute reuse the last result.
package profile

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/pascolabs/neuralsim/internal/engram"
	"github.com/pascolabs/neuralsim/internal/psyche"
	"github.com/pascolabs/neuralsim/internal/relationship"
	"github.com/pascolabs/neuralsim/internal/types"
)

// Settings is the slice of user settings the core reads.
type Settings struct {
	UserName string
}

// SettingsSource supplies current settings; the core never persists them.
type SettingsSource func() Settings

// SnapshotCache shares computed profiles across engine instances. Optional;
// implementations must treat entries as immutable.
type SnapshotCache interface {
	Get(key uint64) (*NeuralProfile, bool)
	Put(key uint64, profile *NeuralProfile)
}

// DualityState is the mask-vs-core readout derived from the psyche score.
type DualityState struct {
	Alignment      string `json:"alignment"`
	MaskIntegrity  string `json:"mask_integrity"`
	IntegrityColor string `json:"integrity_color"`
}

// MemoryFocus is the short-term attentional focus.
type MemoryFocus struct {
	Focus []string `json:"focus"`
}

// NeuralProfile is the engine's sole output: one derived snapshot of the
// character's visual, mental, social, and attentional state.
type NeuralProfile struct {
	VisualState  string             `json:"visual_state"`
	Psyche       psyche.State       `json:"psyche"`
	Social       relationship.State `json:"social"`
	Duality      DualityState       `json:"duality"`
	Memory       MemoryFocus        `json:"memory"`
	IsProcessing bool               `json:"is_processing"`
}

// Engine memoizes profile computation per (character, message list, outfit
// list, simulated minute). There is exactly one active profile per chat
// session, so a single cached entry replaced on key change suffices.
type Engine struct {
	settings SettingsSource
	shared   SnapshotCache

	mu      sync.Mutex
	memoKey uint64
	memo    *NeuralProfile
}

// Option configures an Engine.
type Option func(*Engine)

// WithSnapshotCache attaches a shared cross-process cache.
func WithSnapshotCache(cache SnapshotCache) Option {
	return func(e *Engine) {
		e.shared = cache
	}
}

// NewEngine builds an engine. A nil settings source defaults the user name
// to "User".
func NewEngine(settings SettingsSource, opts ...Option) *Engine {
	e := &Engine{settings: settings}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeNeuralProfile returns the profile for the given inputs, reusing
// the memoized snapshot when the cache key is unchanged. Recomputing is
// always safe: the underlying computation is deterministic, so a cache miss
// can never change the result.
func (e *Engine) ComputeNeuralProfile(character *types.Character, messages []types.Message, outfits []types.OutfitItem, virtualTimeMs int64) NeuralProfile {
	settings := e.currentSettings()
	key := cacheKey(character, messages, outfits, virtualTimeMs, settings)

	e.mu.Lock()
	if e.memo != nil && e.memoKey == key {
		snapshot := *e.memo
		e.mu.Unlock()
		return snapshot
	}
	e.mu.Unlock()

	if e.shared != nil {
		if cached, ok := e.shared.Get(key); ok && cached != nil {
			e.store(key, cached)
			return *cached
		}
	}

	snapshot := Compute(character, messages, outfits, virtualTimeMs, settings)
	e.store(key, &snapshot)
	if e.shared != nil {
		e.shared.Put(key, &snapshot)
	}
	return snapshot
}

func (e *Engine) store(key uint64, snapshot *NeuralProfile) {
	e.mu.Lock()
	e.memoKey = key
	e.memo = snapshot
	e.mu.Unlock()
}

func (e *Engine) currentSettings() Settings {
	if e.settings == nil {
		return Settings{UserName: "User"}
	}
	settings := e.settings()
	if settings.UserName == "" {
		settings.UserName = "User"
	}
	return settings
}

// Compute is the pure composition: same inputs, bit-identical output.
func Compute(character *types.Character, messages []types.Message, outfits []types.OutfitItem, virtualTimeMs int64, settings Settings) NeuralProfile {
	mind := psyche.Analyze(character, messages, virtualTimeMs)
	social := relationship.Analyze(character, messages, mind)

	identity := engram.IdentityContext{UserName: settings.UserName}
	location := ""
	activity := ""
	alignment := ""
	if character != nil {
		identity.CharName = character.Name
		identity.CharRole = character.Role
		location = character.Scenario.CurrentLocation
		activity = character.Scenario.CurrentActivity
		alignment = character.Alignment
	}
	focus := engram.Extract(messages, location, activity, identity)

	isProcessing := len(messages) > 0 && messages[len(messages)-1].Role == types.RoleUser

	return NeuralProfile{
		VisualState:  visualState(character, outfits),
		Psyche:       mind,
		Social:       social,
		Duality:      dualityState(alignment, mind.Score),
		Memory:       MemoryFocus{Focus: focus},
		IsProcessing: isProcessing,
	}
}

// visualState picks the first outfit targeting the character, falling back
// to the appearance style, then a default.
func visualState(character *types.Character, outfits []types.OutfitItem) string {
	for _, item := range outfits {
		if item.Target == "char" && item.Name != "" {
			return item.Name
		}
	}
	if character != nil && character.Appearance.Style != "" {
		return character.Appearance.Style
	}
	return "Default Appearance"
}

// dualityState maps the psyche score onto mask-integrity tiers mirroring
// the status thresholds.
func dualityState(alignment string, score int) DualityState {
	integrity := "Intact"
	color := "green"
	if score < 60 {
		integrity = "Cracking"
		color = "yellow"
	}
	if score < 30 {
		integrity = "Fracturing"
		color = "orange"
	}
	if score < 10 {
		integrity = "SHATTERED"
		color = "red"
	}
	return DualityState{
		Alignment:      alignment,
		MaskIntegrity:  integrity,
		IntegrityColor: color,
	}
}

// cacheKey fingerprints the inputs that can change the output. Message
// identity is approximated by count plus the trailing message, which is
// sufficient for an append-only log.
func cacheKey(character *types.Character, messages []types.Message, outfits []types.OutfitItem, virtualTimeMs int64, settings Settings) uint64 {
	digest := xxhash.New()
	var buf [8]byte

	if character != nil {
		_, _ = digest.WriteString(character.ID)
		_, _ = digest.WriteString(character.UpdatedAt.String())
	}
	_, _ = digest.WriteString("|")
	_, _ = digest.WriteString(settings.UserName)

	binary.LittleEndian.PutUint64(buf[:], uint64(len(messages)))
	_, _ = digest.Write(buf[:])
	if len(messages) > 0 {
		last := messages[len(messages)-1]
		_, _ = digest.WriteString(last.ID)
		binary.LittleEndian.PutUint64(buf[:], uint64(last.Timestamp))
		_, _ = digest.Write(buf[:])
	}

	for _, item := range outfits {
		_, _ = digest.WriteString(item.ID)
		_, _ = digest.WriteString(item.Target)
	}

	// Minute granularity: renders within the same simulated minute share
	// the same key.
	binary.LittleEndian.PutUint64(buf[:], uint64(virtualTimeMs/60000))
	_, _ = digest.Write(buf[:])

	return digest.Sum64()
}
