package protocol

import (
	"testing"
)

func TestSceneMessageRoundTrip(t *testing.T) {
	data := SceneData{
		Tick:         42,
		Now:          1.4,
		RingRotation: 0.5,
		Motion:       MotionData{Speed: 2.0, Scattered: false, Intensity: 0.3},
		Hand:         HandData{Distance: 0.05, Present: true},
		Beads: []BeadSnapshot{
			{
				Index: 0,
				Pos:   Vec3{2.2, 0, 0},
				Letters: []LetterSnapshot{
					{Char: "A", Pos: Vec3{0, 0.55, 0}},
				},
			},
		},
		Floating: []FloatingSnapshot{
			{ID: "abc", Char: "Q", Pos: Vec3{1, 2, -4}, Scale: 1.0},
		},
	}

	msg, err := NewSceneMessage(data)
	if err != nil {
		t.Fatalf("NewSceneMessage: %v", err)
	}
	if msg.Type != TypeScene {
		t.Errorf("type: got %v, want %v", msg.Type, TypeScene)
	}
	if msg.Timestamp == 0 {
		t.Error("timestamp not set")
	}

	raw, err := msg.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	parsed, err := ParseMessage(raw)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	got, err := parsed.GetSceneData()
	if err != nil {
		t.Fatalf("GetSceneData: %v", err)
	}

	if got.Tick != 42 || got.Motion.Speed != 2.0 || !got.Hand.Present {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Beads) != 1 || len(got.Beads[0].Letters) != 1 {
		t.Fatalf("bead payload lost: %+v", got.Beads)
	}
	if got.Beads[0].Letters[0].Char != "A" {
		t.Errorf("letter char: got %q, want A", got.Beads[0].Letters[0].Char)
	}
	if len(got.Floating) != 1 || got.Floating[0].ID != "abc" {
		t.Errorf("floating payload lost: %+v", got.Floating)
	}
}

func TestWelcomeMessage(t *testing.T) {
	msg, err := NewWelcomeMessage(WelcomeData{TickHz: 30, BeadCount: 8, LettersPerBead: 18, PoolCap: 64})
	if err != nil {
		t.Fatalf("NewWelcomeMessage: %v", err)
	}

	raw, _ := msg.Bytes()
	parsed, err := ParseMessage(raw)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if parsed.Type != TypeWelcome {
		t.Errorf("type: got %v, want %v", parsed.Type, TypeWelcome)
	}

	w, err := parsed.GetWelcomeData()
	if err != nil {
		t.Fatalf("GetWelcomeData: %v", err)
	}
	if w.TickHz != 30 || w.BeadCount != 8 || w.PoolCap != 64 {
		t.Errorf("welcome mismatch: %+v", w)
	}
}

func TestParseMessage_Invalid(t *testing.T) {
	if _, err := ParseMessage([]byte("not json")); err == nil {
		t.Error("expected error for malformed message")
	}
}
