package dsa

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the data-structure abstraction used to interpret the sequence.
type Mode int

const (
	LinkedList Mode = iota
	Stack
	Queue
)

// Modes lists every mode in selector order.
var Modes = []Mode{LinkedList, Stack, Queue}

func (m Mode) String() string {
	switch m {
	case LinkedList:
		return "linkedlist"
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title is the human label shown in selectors.
func (m Mode) Title() string {
	switch m {
	case LinkedList:
		return "Linked List"
	case Stack:
		return "Stack"
	case Queue:
		return "Queue"
	default:
		return m.String()
	}
}

// Next cycles through Modes.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// EmptyMessage is the log line for operations on an empty structure.
func (m Mode) EmptyMessage() string {
	switch m {
	case Stack:
		return "Stack is empty"
	case Queue:
		return "Queue is empty"
	default:
		return "List is empty"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linkedlist", "linked_list", "linked-list", "list":
		return LinkedList, nil
	case "stack":
		return Stack, nil
	case "queue":
		return Queue, nil
	}
	return LinkedList, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

type Sequence []int

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

func (s Sequence) Len() int { return len(s) }

func (s Sequence) Join(sep string) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

// Reversed returns a copy in reverse order, used for top-to-bottom stack views.
func (s Sequence) Reversed() Sequence {
	r := make(Sequence, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

// ParseInt mirrors the lenient prefix parsing of form inputs: leading
// whitespace and an optional sign are accepted and parsing stops at the
// first non-digit. "12abc" yields 12; "abc" fails with ErrInvalidValue.
func ParseInt(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrMissingValue
	}
	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	digits := end
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == end {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	v, err := strconv.Atoi(s[:digits])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	return v, nil
}
