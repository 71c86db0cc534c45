package dsa

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"linkedlist", LinkedList},
		{"List", LinkedList},
		{"linked_list", LinkedList},
		{"STACK", Stack},
		{" queue ", Queue},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("heap"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestModeNext(t *testing.T) {
	if LinkedList.Next() != Stack || Stack.Next() != Queue || Queue.Next() != LinkedList {
		t.Error("mode cycle broken")
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{" 42", 42},
		{"-3", -3},
		{"12abc", 12},
		{"+7", 7},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.in)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := ParseInt("abc"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	if _, err := ParseInt("  "); !errors.Is(err, ErrMissingValue) {
		t.Errorf("expected ErrMissingValue, got %v", err)
	}
	if _, err := ParseInt("-"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for bare sign, got %v", err)
	}
}

func TestSequenceHelpers(t *testing.T) {
	s := Sequence{1, 2, 3}
	if s.Join(" -> ") != "1 -> 2 -> 3" {
		t.Errorf("unexpected join: %s", s.Join(" -> "))
	}
	r := s.Reversed()
	if r[0] != 3 || r[2] != 1 {
		t.Errorf("unexpected reverse: %v", r)
	}
	c := s.Clone()
	c[0] = 99
	if s[0] != 1 {
		t.Error("clone aliases original")
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	err := &OpError{Op: "delete", Mode: Stack, Wrapped: ErrEmpty}
	if !errors.Is(err, ErrEmpty) {
		t.Error("OpError should unwrap to ErrEmpty")
	}
	if err.Error() != "delete (stack): dsa: structure is empty" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
