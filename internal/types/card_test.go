package types

import (
	"encoding/json"
	"testing"
)

func TestDecodeCardLegacyMemories(t *testing.T) {
	data := []byte(`{
		"character": {
			"id": "c1",
			"name": "Sari",
			"memories": [
				"{\"title\":\"First Meeting\",\"description\":\"Met at the station\"}",
				"just a plain note"
			]
		}
	}`)

	character, err := DecodeCard(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(character.Memories) != 2 {
		t.Fatalf("expected 2 memories, got %d", len(character.Memories))
	}
	if character.Memories[0].Title != "First Meeting" {
		t.Fatalf("unexpected title: %s", character.Memories[0].Title)
	}
	if character.Memories[1].Title != "Legacy Memory" || character.Memories[1].Description != "just a plain note" {
		t.Fatalf("unexpected legacy record: %#v", character.Memories[1])
	}
}

func TestDecodeCardV2Memories(t *testing.T) {
	data := []byte(`{
		"schema_version": 2,
		"character": {
			"id": "c2",
			"name": "Sari",
			"memories": [{"title": "Beach Day", "description": "Sunset walk"}]
		}
	}`)

	character, err := DecodeCard(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(character.Memories) != 1 || character.Memories[0].Title != "Beach Day" {
		t.Fatalf("unexpected memories: %#v", character.Memories)
	}
}

func TestDecodeCardBareCharacter(t *testing.T) {
	data := []byte(`{"id": "c3", "name": "Raka", "memories": []}`)
	character, err := DecodeCard(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if character.Name != "Raka" {
		t.Fatalf("unexpected name: %s", character.Name)
	}
}

func TestDecodeCardInvalid(t *testing.T) {
	if _, err := DecodeCard([]byte(`[1,2,3]`)); err == nil {
		t.Fatalf("expected error for non-object card")
	}
}

func TestPersonalityNeuroticismDefault(t *testing.T) {
	var p Personality
	if err := json.Unmarshal([]byte(`{"openness": 70, "empathy": 80}`), &p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Neuroticism != 50 {
		t.Fatalf("expected neuroticism default 50, got %d", p.Neuroticism)
	}
	if p.Openness != 70 || p.Empathy != 80 {
		t.Fatalf("unexpected traits: %#v", p)
	}

	if err := json.Unmarshal([]byte(`{"neuroticism": 0}`), &p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Neuroticism != 0 {
		t.Fatalf("explicit zero must stay zero, got %d", p.Neuroticism)
	}
}

func TestEncodeCardRoundTrip(t *testing.T) {
	character := &Character{
		ID:   "c4",
		Name: "Sari",
		Memories: []MemoryRecord{
			{Title: "Rainy Walk", Description: "Shared an umbrella"},
		},
	}
	data, err := EncodeCard(character)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	decoded, err := DecodeCard(data)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if decoded.Name != "Sari" || len(decoded.Memories) != 1 || decoded.Memories[0].Title != "Rainy Walk" {
		t.Fatalf("round trip mismatch: %#v", decoded)
	}
}
