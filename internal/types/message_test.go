package types

import "testing"

func msgs(roles ...Role) []Message {
	out := make([]Message, len(roles))
	for i, role := range roles {
		out[i] = Message{ID: string(rune('a' + i)), Role: role}
	}
	return out
}

func TestLastN(t *testing.T) {
	all := msgs(RoleUser, RoleModel, RoleUser, RoleModel)

	if got := LastN(all, 2); len(got) != 2 || got[0].ID != "c" {
		t.Fatalf("expected trailing two messages, got %v", got)
	}
	if got := LastN(all, 10); len(got) != 4 {
		t.Fatalf("expected whole slice when n exceeds length, got %d", len(got))
	}
	if got := LastN(all, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
	if got := LastN(nil, 3); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestFilterRole(t *testing.T) {
	all := msgs(RoleUser, RoleModel, RoleUser)

	users := FilterRole(all, RoleUser)
	if len(users) != 2 || users[0].ID != "a" || users[1].ID != "c" {
		t.Fatalf("expected ordered user messages, got %v", users)
	}
	if got := FilterRole(all, RoleModel); len(got) != 1 {
		t.Fatalf("expected one model message, got %v", got)
	}
}
