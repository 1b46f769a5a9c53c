// Package command defines the commands exchanged between widgets, the
// delegate and the dispatch core, the targets they are addressed to, and the
// FIFO queue they wait in between dispatch passes.
package command

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPayload is returned when a command carries no payload but the
	// consumer expected one.
	ErrNoPayload = errors.New("command has no payload")
	// ErrPayloadType is returned when the payload is not of the expected type.
	ErrPayloadType = errors.New("command payload has unexpected type")
)

// Selector names the intent of a command.
type Selector string

func (s Selector) String() string {
	return string(s)
}

// Command pairs a selector with an optional payload. The payload is type
// erased; consumers recover it with Object.
type Command struct {
	Selector Selector
	payload  interface{}
}

// New creates a command. A nil payload means the command carries none.
func New(sel Selector, payload interface{}) Command {
	return Command{Selector: sel, payload: payload}
}

// Is reports whether the command has the given selector.
func (c Command) Is(sel Selector) bool {
	return c.Selector == sel
}

// HasPayload reports whether a payload is attached.
func (c Command) HasPayload() bool {
	return c.payload != nil
}

// Payload returns the raw payload.
func (c Command) Payload() interface{} {
	return c.payload
}

func (c Command) String() string {
	if c.payload == nil {
		return string(c.Selector)
	}
	return fmt.Sprintf("%s(%T)", c.Selector, c.payload)
}

// Object recovers the payload of cmd as a P. A missing payload yields
// ErrNoPayload and a payload of another type yields ErrPayloadType; both are
// wrapped with the selector so the caller can log them as is.
func Object[P any](cmd Command) (P, error) {
	var zero P
	if cmd.payload == nil {
		return zero, fmt.Errorf("%s: %w", cmd.Selector, ErrNoPayload)
	}
	value, ok := cmd.payload.(P)
	if !ok {
		return zero, fmt.Errorf("%s: %w: want %T, have %T", cmd.Selector, ErrPayloadType, zero, cmd.payload)
	}
	return value, nil
}
