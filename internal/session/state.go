// Package session holds the UI shell state and the only function allowed to
// change it. State values are never mutated in place; every action produces a
// new State.
package session

import (
	"fmt"

	"employee-list/internal/models"
)

// Phase is the user-visible stage of the form.
type Phase int

const (
	Idle Phase = iota
	TokenEntered
	Fetching
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case TokenEntered:
		return "token_entered"
	case Fetching:
		return "fetching"
	case Loaded:
		return "loaded"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type State struct {
	Token     string
	Employees []models.Employee
	// Loaded is true iff the most recently completed fetch decoded successfully.
	Loaded      bool
	InFlight    int
	HelpVisible bool
	Notice      string
}

// Phase derives the form stage. A request in flight wins over everything else.
func (s State) Phase() Phase {
	switch {
	case s.InFlight > 0:
		return Fetching
	case s.Loaded:
		return Loaded
	case s.Token != "":
		return TokenEntered
	default:
		return Idle
	}
}

func (s State) CanFetch() bool {
	return s.Token != ""
}

// CanSave holds only once every started fetch has settled on a success.
func (s State) CanSave() bool {
	return s.Loaded && s.InFlight == 0
}
