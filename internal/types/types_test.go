package types

import "testing"

func TestGetMoveConfigDefaults(t *testing.T) {
	cfg := &Config{}
	move := cfg.GetMoveConfig()

	if move.DurationMs != 250 {
		t.Errorf("Expected default duration to be 250ms, got %d", move.DurationMs)
	}
	if move.Steps != 20 {
		t.Errorf("Expected default steps to be 20, got %d", move.Steps)
	}
	if move.Animation != "" {
		t.Errorf("Expected animation to default to disabled, got %q", move.Animation)
	}
}

func TestGetMoveConfigKeepsExplicitValues(t *testing.T) {
	cfg := &Config{Move: MoveConfig{Animation: "smooth", DurationMs: 100, Steps: 5}}
	move := cfg.GetMoveConfig()

	if move.Animation != "smooth" || move.DurationMs != 100 || move.Steps != 5 {
		t.Errorf("Expected explicit values to be preserved, got %+v", move)
	}
}
