package domain

import (
	"fmt"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Drive", ActionDrive},
		{"ATTACK", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected CommandType
	}{
		{"SELECT", CommandSelect},
		{"pick_destination", CommandPickDestination},
		{"End_Turn", CommandEndTurn},
		{"JUMP", CommandUnknown},
	}

	for _, tt := range tests {
		if got := ParseCommand(tt.input); got != tt.expected {
			t.Errorf("ParseCommand(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}

	if CommandConfirm.String() != "CONFIRM" {
		t.Errorf("CommandConfirm.String() = %q", CommandConfirm.String())
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{fmt.Errorf("%w: tile X", ErrInvalidArgument), "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: goal D", ErrNoPathExists), "NO_PATH"},
		{fmt.Errorf("%w: confirm", ErrInvalidStateTransition), "INVALID_STATE"},
		{ErrInsufficientBudget, "INSUFFICIENT_BUDGET"},
		{fmt.Errorf("boom"), "INTERNAL"},
	}

	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.expected {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.expected)
		}
	}
}
