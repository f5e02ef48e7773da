package types

import (
	"encoding/json"
	"strings"
	"time"
)

// MemoryRecord is one shared memory between the character and the user.
// Older cards stored these as JSON-encoded strings; see DecodeMemoryRecord.
type MemoryRecord struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// legacyMemoryTitle is used when a v1 memory string cannot be decoded.
const legacyMemoryTitle = "Legacy Memory"

// DecodeMemoryRecord decodes a single v1 memory entry: a string holding a
// JSON-encoded record. A string that is not valid JSON becomes a record
// titled "Legacy Memory" carrying the raw text as its description.
func DecodeMemoryRecord(raw string) MemoryRecord {
	var record MemoryRecord
	if err := json.Unmarshal([]byte(raw), &record); err == nil {
		if record.Title != "" || record.Description != "" {
			return record
		}
	}
	return MemoryRecord{
		Title:       legacyMemoryTitle,
		Description: strings.TrimSpace(raw),
	}
}

// DecodeLegacyMemories converts a v1 memory list (JSON strings) into typed
// records, dropping empty entries.
func DecodeLegacyMemories(raw []string) []MemoryRecord {
	if len(raw) == 0 {
		return nil
	}
	records := make([]MemoryRecord, 0, len(raw))
	for _, entry := range raw {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		records = append(records, DecodeMemoryRecord(entry))
	}
	return records
}
