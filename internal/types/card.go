package types

import (
	"encoding/json"
	"fmt"
)

// Card schema versions. Version 1 serialized shared memories as
// JSON-encoded strings; version 2 stores typed records.
const (
	CardSchemaV1 = 1
	CardSchemaV2 = 2
)

// CharacterCard is the serialized form of a Character.
type CharacterCard struct {
	SchemaVersion int       `json:"schema_version"`
	Character     Character `json:"character"`
}

// cardWire defers memory decoding until the schema version is known.
type cardWire struct {
	SchemaVersion int             `json:"schema_version"`
	Character     json.RawMessage `json:"character"`
}

// characterWire mirrors Character with raw memories. The outer Memories
// field shadows the embedded one, so typed decoding of memories is deferred
// until the schema version is known.
type characterWire struct {
	Character
	Memories json.RawMessage `json:"memories"`
}

// DecodeCard parses a character card. Missing schema_version is treated as
// version 1 (the pre-versioning format).
func DecodeCard(data []byte) (*Character, error) {
	var wire cardWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse character card: %w", err)
	}
	if len(wire.Character) == 0 {
		// Bare character object without the card wrapper.
		wire.SchemaVersion = 0
		wire.Character = data
	}

	var cw characterWire
	if err := json.Unmarshal(wire.Character, &cw); err != nil {
		return nil, fmt.Errorf("failed to parse character: %w", err)
	}
	character := cw.Character

	// The neuroticism default lives in Personality.UnmarshalJSON, which
	// only runs when the personality object is present at all.
	var probe struct {
		Personality json.RawMessage `json:"personality"`
	}
	if err := json.Unmarshal(wire.Character, &probe); err == nil && len(probe.Personality) == 0 {
		character.Personality.Neuroticism = 50
	}

	switch {
	case wire.SchemaVersion >= CardSchemaV2:
		if len(cw.Memories) > 0 {
			if err := json.Unmarshal(cw.Memories, &character.Memories); err != nil {
				return nil, fmt.Errorf("failed to parse memories: %w", err)
			}
		}
	default:
		// v1 and unversioned cards: memories are JSON-encoded strings.
		if len(cw.Memories) > 0 {
			var raw []string
			if err := json.Unmarshal(cw.Memories, &raw); err != nil {
				// Some v1 cards were already migrated by hand; accept
				// typed records before giving up.
				if err2 := json.Unmarshal(cw.Memories, &character.Memories); err2 != nil {
					return nil, fmt.Errorf("failed to parse legacy memories: %w", err)
				}
				break
			}
			character.Memories = DecodeLegacyMemories(raw)
		}
	}

	return &character, nil
}

// EncodeCard serializes a character at the current schema version.
func EncodeCard(character *Character) ([]byte, error) {
	if character == nil {
		return nil, fmt.Errorf("character is required")
	}
	card := CharacterCard{
		SchemaVersion: CardSchemaV2,
		Character:     *character,
	}
	data, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("failed to encode character card: %w", err)
	}
	return data, nil
}

// UnmarshalJSON defaults neuroticism to 50 when the field is absent,
// matching the documented trait invariant.
func (p *Personality) UnmarshalJSON(data []byte) error {
	type alias Personality
	wire := struct {
		*alias
		Neuroticism *int `json:"neuroticism"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Neuroticism == nil {
		p.Neuroticism = 50
	} else {
		p.Neuroticism = *wire.Neuroticism
	}
	return nil
}
