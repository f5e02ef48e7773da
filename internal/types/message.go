package types

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one immutable chat entry. Timestamps are virtual time
// (simulated in-story clock), milliseconds since epoch.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	ImageURL  string `json:"image_url,omitempty"`
	// SpeakerID names the character speaking in a group chat; empty in 1:1.
	SpeakerID string `json:"speaker_id,omitempty"`
}

// LastN returns the trailing n messages (or all of them when fewer exist).
// The returned slice aliases the input; callers must not mutate it.
func LastN(messages []Message, n int) []Message {
	if n <= 0 || len(messages) == 0 {
		return nil
	}
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}

// FilterRole returns the messages authored by role, preserving order.
func FilterRole(messages []Message, role Role) []Message {
	out := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == role {
			out = append(out, msg)
		}
	}
	return out
}
