package validation

import (
	"strings"
	"testing"
)

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	err := NewConfigValidator("Config").
		Required("Name", "").
		MinInt("Workers", 0, 1).
		MaxInt("Cap", 500, 100).
		Err()
	if err == nil {
		t.Fatal("Expected errors, got nil")
	}

	msg := err.Error()
	for _, want := range []string{"Config.Name", "Config.Workers", "Config.Cap"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error %q missing %q", msg, want)
		}
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	err := NewConfigValidator("Config").
		Required("Name", "pathfinder").
		MinInt("Workers", 4, 1).
		RangeInt("Level", 1, 0, 3).
		Err()
	if err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestStruct_FormatsFieldErrors(t *testing.T) {
	type req struct {
		Source string `validate:"required"`
		Max    int    `validate:"gte=0"`
	}

	err := Struct(&req{Max: -1})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	// First violation is reported with its field name
	if !strings.Contains(err.Error(), "Source") {
		t.Errorf("Error %q should name the Source field", err.Error())
	}

	if err := Struct(&req{Source: "s1", Max: 0}); err != nil {
		t.Errorf("Valid struct rejected: %v", err)
	}
}
