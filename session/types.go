package session

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGenerationIncomplete is returned when a solver is asked to run
	// before the maze is fully generated.
	ErrGenerationIncomplete = errors.New("session: maze generation is not complete")
	// ErrOptionViolation is returned for an invalid Option.
	ErrOptionViolation = errors.New("session: invalid option supplied")
	// ErrUnknownMode is returned by ParseMode for an unrecognized name.
	ErrUnknownMode = errors.New("session: unknown mode")
)

// Phase is the session's lifecycle position.
type Phase int

const (
	// PhaseGenerating means carving is still in progress.
	PhaseGenerating Phase = iota
	// PhaseGenerated means the maze is complete and no solver has run.
	PhaseGenerated
	// PhaseSolving means the frontier solver has started but not finished.
	PhaseSolving
	// PhaseSolved means a solver reached the end; Solution is populated.
	PhaseSolved
	// PhaseExhausted means the frontier solver proved the end unreachable.
	PhaseExhausted
	// PhaseFailed means the wall follower hit its iteration cap.
	PhaseFailed
)

// String returns a lowercase name for p.
func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhaseGenerated:
		return "generated"
	case PhaseSolving:
		return "solving"
	case PhaseSolved:
		return "solved"
	case PhaseExhausted:
		return "exhausted"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Mode selects how a maze is produced.
type Mode int

const (
	// ModeTree carves a perfect maze step by step.
	ModeTree Mode = iota
	// ModeOpen fills cells at random in one shot; the result may have
	// loops or be disconnected.
	ModeOpen
)

// String returns "tree" or "open".
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeOpen:
		return "open"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "tree" or "open" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tree", "":
		return ModeTree, nil
	case "open":
		return ModeOpen, nil
	}
	return ModeTree, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
