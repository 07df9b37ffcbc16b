package session

import (
	"fmt"

	"employee-list/internal/models"
)

// Action is anything Reduce understands.
type Action interface {
	isAction()
}

type TokenChanged struct{ Token string }

type FetchStarted struct{}

// FetchSucceeded carries an already sorted roster.
type FetchSucceeded struct{ Employees []models.Employee }

type FetchFailed struct{ Err error }

type HelpToggled struct{ Visible bool }

type SaveFinished struct {
	Path string
	Err  error
}

func (TokenChanged) isAction()   {}
func (FetchStarted) isAction()   {}
func (FetchSucceeded) isAction() {}
func (FetchFailed) isAction()    {}
func (HelpToggled) isAction()    {}
func (SaveFinished) isAction()   {}

// Reduce is the single state transition function of the UI shell.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case TokenChanged:
		s.Token = a.Token

	case FetchStarted:
		if !s.CanFetch() {
			return s
		}
		s.InFlight++
		s.Loaded = false
		s.Notice = "Fetching employee list..."

	case FetchSucceeded:
		s.InFlight = settle(s.InFlight)
		s.Employees = a.Employees
		if s.Employees == nil {
			s.Employees = []models.Employee{}
		}
		s.Loaded = true
		s.Notice = fmt.Sprintf("Loaded %d employees", len(s.Employees))

	case FetchFailed:
		s.InFlight = settle(s.InFlight)
		s.Loaded = false
		s.Notice = "Fetch failed"

	case HelpToggled:
		s.HelpVisible = a.Visible

	case SaveFinished:
		if a.Err != nil {
			s.Notice = "Save failed"
		} else {
			s.Notice = "Saved " + a.Path
		}
	}
	return s
}

func settle(inFlight int) int {
	if inFlight > 0 {
		return inFlight - 1
	}
	return 0
}
