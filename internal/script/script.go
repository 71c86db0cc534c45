// Package script parses and replays text operation scripts against a
// visualizer, one command per line:
//
//	mode stack
//	push 3
//	pop
//	# comments and blank lines are ignored
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/san-kum/dsaviz/internal/visualizer"
)

type Op int

const (
	OpMode Op = iota
	OpInsert
	OpDelete
	OpTraverse
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpMode:
		return "mode"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpTraverse:
		return "traverse"
	case OpClear:
		return "clear"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Command is one parsed line. Value and Position keep the raw text so that
// replay goes through the same input validation as the interactive form.
type Command struct {
	Line     int
	Op       Op
	Mode     dsa.Mode
	Value    string
	Position string
}

// ParseError reports the offending line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		cmd, err := ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

// ParseLine parses a single command. Aliases: push and enqueue insert,
// pop and dequeue delete, print traverses.
func ParseLine(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, dsa.ErrUnknownCommand
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "mode":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("mode takes exactly one argument")
		}
		m, err := dsa.ParseMode(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpMode, Mode: m}, nil
	case "insert", "push", "enqueue":
		if len(args) == 0 || len(args) > 2 {
			return Command{}, fmt.Errorf("%s takes a value and an optional position", name)
		}
		cmd := Command{Op: OpInsert, Value: args[0]}
		if len(args) == 2 {
			cmd.Position = args[1]
		}
		return cmd, nil
	case "delete", "pop", "dequeue":
		if len(args) > 1 {
			return Command{}, fmt.Errorf("%s takes an optional position", name)
		}
		cmd := Command{Op: OpDelete}
		if len(args) == 1 {
			cmd.Position = args[0]
		}
		return cmd, nil
	case "traverse", "print":
		return Command{Op: OpTraverse}, nil
	case "clear":
		return Command{Op: OpClear}, nil
	}
	return Command{}, fmt.Errorf("%w: %s", dsa.ErrUnknownCommand, name)
}

// Run applies cmds in order. Empty-structure and invalid-input outcomes are
// already visible in the log and do not stop the run; ctx cancellation does.
func Run(ctx context.Context, v *visualizer.Visualizer, cmds []Command) error {
	for _, cmd := range cmds {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := Apply(v, cmd); err != nil && !recoverable(err) {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

func Apply(v *visualizer.Visualizer, cmd Command) error {
	switch cmd.Op {
	case OpMode:
		v.SetMode(cmd.Mode)
	case OpInsert:
		return v.InsertInput(cmd.Value, cmd.Position)
	case OpDelete:
		_, err := v.DeleteInput(cmd.Position)
		return err
	case OpTraverse:
		_, err := v.Traverse()
		return err
	case OpClear:
		v.Clear()
	default:
		return dsa.ErrUnknownCommand
	}
	return nil
}

func recoverable(err error) bool {
	return errors.Is(err, dsa.ErrEmpty) ||
		errors.Is(err, dsa.ErrInvalidValue) ||
		errors.Is(err, dsa.ErrMissingValue)
}
