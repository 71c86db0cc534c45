package visualizer

import (
	"errors"
	"strings"

	"github.com/san-kum/dsaviz/internal/dsa"
)

// InsertInput is the form entry point: raw value and position text as typed.
// An empty value logs a prompt; a non-numeric value or position is rejected
// with a log line and dsa.ErrInvalidValue. Blank position text appends.
func (v *Visualizer) InsertInput(valueText, positionText string) error {
	value, err := dsa.ParseInt(valueText)
	if err != nil {
		if errors.Is(err, dsa.ErrMissingValue) {
			v.Note("Please enter a value")
		} else {
			v.Note("Invalid value: %s", strings.TrimSpace(valueText))
		}
		return &dsa.OpError{Op: "insert", Mode: v.Mode(), Wrapped: err}
	}
	position, err := parsePosition(positionText, NoPosition)
	if err != nil {
		v.Note("Invalid position: %s", strings.TrimSpace(positionText))
		return &dsa.OpError{Op: "insert", Mode: v.Mode(), Wrapped: err}
	}
	v.Insert(value, position)
	return nil
}

// DeleteInput removes one element using the raw position text. Blank
// position text removes the head.
func (v *Visualizer) DeleteInput(positionText string) (int, error) {
	position, err := parsePosition(positionText, 0)
	if err != nil {
		v.Note("Invalid position: %s", strings.TrimSpace(positionText))
		return 0, &dsa.OpError{Op: "delete", Mode: v.Mode(), Wrapped: err}
	}
	return v.Delete(position)
}

// parsePosition returns blank for empty text. Negative positions pass through.
func parsePosition(text string, blank int) (int, error) {
	if strings.TrimSpace(text) == "" {
		return blank, nil
	}
	return dsa.ParseInt(text)
}
