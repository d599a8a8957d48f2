package game

import "fmt"

// NotFoundError is returned when an action references a client, player, or
// seat the table does not know about.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// IllegalStateError is returned when an action is well-formed but not legal
// in the current game state.
type IllegalStateError struct {
	Reason string
}

func (e *IllegalStateError) Error() string {
	return e.Reason
}

// ResourceExhaustionError is returned when a required resource has run out,
// such as open seats or cards left in the deck.
type ResourceExhaustionError struct {
	Resource string
}

func (e *ResourceExhaustionError) Error() string {
	return fmt.Sprintf("no %s available", e.Resource)
}

// UnrecognizedActionError is returned when the dispatcher receives an action
// kind it does not handle.
type UnrecognizedActionError struct {
	Kind ActionKind
}

func (e *UnrecognizedActionError) Error() string {
	return fmt.Sprintf("unrecognized action: %s", e.Kind)
}

func illegalf(format string, args ...interface{}) error {
	return &IllegalStateError{Reason: fmt.Sprintf(format, args...)}
}
