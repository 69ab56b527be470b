package script

import "fmt"

type Verb string

const (
	VerbWalk   Verb = "walk"
	VerbWait   Verb = "wait"
	VerbStatus Verb = "status"
	VerbTick   Verb = "tick"
	VerbExpect Verb = "expect"
)

// Command is one parsed script line.
type Command struct {
	Line int
	Raw  string
	Verb Verb

	// walk
	DirX float64
	DirY float64
	// walk, wait: seconds of simulated time
	Duration float64
	// tick: fixed step in seconds
	Step float64
	// expect
	Field string
	Want  string
}

type CommandDef struct {
	Canonical Verb
	Aliases   []string
	MinArgs   int
	MaxArgs   int
}

// ParseError points at the offending script line.
type ParseError struct {
	Line       int
	Msg        string
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("line %d: %s (did you mean %q?)", e.Line, e.Msg, e.Suggestion)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
