package psyche

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pascolabs/neuralsim/internal/types"
)

// neutralCharacter has midpoint traits: eq 50, resilience 0.5, baseline 80,
// base recovery 6.
func neutralCharacter() *types.Character {
	c := &types.Character{
		ID:   "char-1",
		Name: "Sari",
		Personality: types.Personality{
			Openness:      50,
			Agreeableness: 50,
			Neuroticism:   50,
			Empathy:       50,
		},
	}
	c.Emotional.Stability = "moderate"
	return c
}

func noonMs() int64 {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local).UnixMilli()
}

func userMsg(id, text string) types.Message {
	return types.Message{ID: id, Role: types.RoleUser, Text: text}
}

func modelMsg(id, text string) types.Message {
	return types.Message{ID: id, Role: types.RoleModel, Text: text}
}

func TestAnalyzeNilCharacter(t *testing.T) {
	got := Analyze(nil, []types.Message{userMsg("m1", "halo")}, noonMs())
	if got.Score != 80 || got.Status != StatusStable || got.Trend != TrendStable {
		t.Fatalf("expected neutral state, got %#v", got)
	}
	if got.EmotionalIntelligence != 50 {
		t.Fatalf("expected neutral eq 50, got %d", got.EmotionalIntelligence)
	}
}

func TestAnalyzeCalmBaseline(t *testing.T) {
	got := Analyze(neutralCharacter(), nil, noonMs())
	want := State{
		Score:                 80,
		Status:                StatusStable,
		Trend:                 TrendRising,
		EmotionalIntelligence: 50,
		RecoveryRate:          6,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("baseline state mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeVerbalAbuse(t *testing.T) {
	messages := []types.Message{userMsg("m1", "KAMU BODOH SEKALI!!!")}
	got := Analyze(neutralCharacter(), messages, noonMs())

	// Yelling 15 plus aggression 20, buffered by resilience: 80 - 35*0.8.
	if got.Score != 52 {
		t.Fatalf("expected score 52, got %d", got.Score)
	}
	if got.Status != StatusAnxious {
		t.Fatalf("expected status %q, got %q", StatusAnxious, got.Status)
	}
	if got.Trend != TrendFalling {
		t.Fatalf("expected falling trend, got %q", got.Trend)
	}
	wantModifiers := []string{"Verbal Aggression", "Emotional Abuse"}
	if diff := cmp.Diff(wantModifiers, got.Modifiers); diff != "" {
		t.Fatalf("modifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeStressDecaysWithAge(t *testing.T) {
	abuse := userMsg("m1", "dasar bodoh kamu")
	pad1 := modelMsg("m2", "aku mengerti.")
	pad2 := modelMsg("m3", "baiklah.")

	oldest := Analyze(neutralCharacter(), []types.Message{abuse, pad1, pad2}, noonMs())
	middle := Analyze(neutralCharacter(), []types.Message{pad1, abuse, pad2}, noonMs())
	newest := Analyze(neutralCharacter(), []types.Message{pad1, pad2, abuse}, noonMs())

	if !(oldest.Score > middle.Score && middle.Score > newest.Score) {
		t.Fatalf("expected strictly decaying impact, got %d / %d / %d",
			oldest.Score, middle.Score, newest.Score)
	}
	// Age 2: decay 0.5, stress 10, buffered 8, plus recovery 6.
	if oldest.Score != 78 {
		t.Fatalf("expected oldest-abuse score 78, got %d", oldest.Score)
	}
	// Age 0: full stress 20 buffered to 16, recovery suppressed.
	if newest.Score != 64 {
		t.Fatalf("expected newest-abuse score 64, got %d", newest.Score)
	}
}

func TestAnalyzeScoreFloor(t *testing.T) {
	var messages []types.Message
	for i := 0; i < 10; i++ {
		messages = append(messages, userMsg("m", "KAMU BODOH SEKALI!!!"))
	}
	got := Analyze(neutralCharacter(), messages, noonMs())
	if got.Score != 0 {
		t.Fatalf("expected score clamped to 0, got %d", got.Score)
	}
	if got.Status != StatusBroken {
		t.Fatalf("expected status %q, got %q", StatusBroken, got.Status)
	}
}

func TestAnalyzeMidnightMelancholy(t *testing.T) {
	twoAM := time.Date(2024, 6, 1, 2, 0, 0, 0, time.Local).UnixMilli()
	got := Analyze(neutralCharacter(), nil, twoAM)

	// Circadian stress 5 buffered to 4, no history so no recovery.
	if got.Score != 76 {
		t.Fatalf("expected score 76, got %d", got.Score)
	}
	if diff := cmp.Diff([]string{"Midnight Melancholy"}, got.Modifiers); diff != "" {
		t.Fatalf("modifiers mismatch (-want +got):\n%s", diff)
	}
	if got.Trend != TrendStable {
		t.Fatalf("expected stable trend inside the deadband, got %q", got.Trend)
	}
}

func TestAnalyzeComfortHealsAndClamps(t *testing.T) {
	messages := []types.Message{userMsg("m1", "Maaf ya, sini aku peluk")}
	got := Analyze(neutralCharacter(), messages, noonMs())

	// Comfort 15 plus boosted recovery 13.5 overshoots the cap.
	if got.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", got.Score)
	}
	if got.Trend != TrendRising {
		t.Fatalf("expected rising trend, got %q", got.Trend)
	}
	if got.RecoveryRate != 13.5 {
		t.Fatalf("expected boosted recovery 13.5, got %v", got.RecoveryRate)
	}
}

func TestAnalyzeStalkingNeedsTarget(t *testing.T) {
	character := neutralCharacter()
	targeted := Analyze(character,
		[]types.Message{userMsg("m1", "aku selalu tahu dimana kamu berada")}, noonMs())
	if targeted.Score != 66 {
		t.Fatalf("expected score 66, got %d", targeted.Score)
	}
	if diff := cmp.Diff([]string{"Paranoia Trigger"}, targeted.Modifiers); diff != "" {
		t.Fatalf("modifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeStabilityBaselines(t *testing.T) {
	fragile := neutralCharacter()
	fragile.Emotional.Stability = "Low, fragile under pressure"
	got := Analyze(fragile, nil, noonMs())
	if got.Score != 60 || got.Status != StatusAnxious {
		t.Fatalf("expected fragile baseline 60/Anxious, got %d/%q", got.Score, got.Status)
	}

	stoic := neutralCharacter()
	stoic.Emotional.Stability = "High, stoic"
	got = Analyze(stoic, nil, noonMs())
	if got.Score != 90 || got.Status != StatusStable {
		t.Fatalf("expected stoic baseline 90/Stable, got %d/%q", got.Score, got.Status)
	}
}

func TestAnalyzeSomaticViolence(t *testing.T) {
	messages := []types.Message{
		modelMsg("m1", "dia tampar aku tadi"),
		userMsg("m2", "oke"),
	}
	got := Analyze(neutralCharacter(), messages, noonMs())

	// Trauma -25 plus recovery 6 on an unstressed newest message.
	if got.Score != 61 {
		t.Fatalf("expected score 61, got %d", got.Score)
	}
	if diff := cmp.Diff([]string{"Physical Trauma"}, got.Modifiers); diff != "" {
		t.Fatalf("modifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeScenarioComfortPlace(t *testing.T) {
	character := neutralCharacter()
	character.Scenario.CurrentLocation = "Taman"
	got := Analyze(character, nil, noonMs())

	// Comfort place +10 plus the fixed text hash of "taman", which is 9.
	if got.Score != 99 {
		t.Fatalf("expected score 99, got %d", got.Score)
	}
	if len(got.Modifiers) != 0 {
		t.Fatalf("comfort places add no modifier, got %v", got.Modifiers)
	}
}

func TestAnalyzeScenarioStress(t *testing.T) {
	character := neutralCharacter()
	character.Scenario.CurrentLocation = "Rumah Sakit"
	character.Scenario.CurrentActivity = "menunggu kabar operasi"
	got := Analyze(character, nil, noonMs())

	chaos := scenarioChaos("rumah sakit menunggu kabar operasi")
	want := int(clampScore(80 - 15 + chaos))
	if got.Score != want {
		t.Fatalf("expected score %d, got %d", want, got.Score)
	}
	if diff := cmp.Diff([]string{"Scenario Stress (High)"}, got.Modifiers); diff != "" {
		t.Fatalf("modifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioChaosDeterministic(t *testing.T) {
	if scenarioChaos("") != 0 {
		t.Fatalf("empty scenario must contribute nothing")
	}
	if got := scenarioChaos("taman"); got != 9 {
		t.Fatalf("expected chaos 9 for fixed input, got %v", got)
	}
	a := scenarioChaos("hujan deras di taman kota")
	b := scenarioChaos("hujan deras di taman kota")
	if a != b {
		t.Fatalf("chaos must be a pure function of the text: %v vs %v", a, b)
	}
}

func TestIsYelling(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"HALO", false},
		{"DIAM KAU SEKARANG", true},
		{"12345!!", false},
		{"Jangan begitu", false},
	}
	for _, tc := range cases {
		if got := isYelling(tc.text); got != tc.want {
			t.Errorf("isYelling(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
