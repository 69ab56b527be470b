package script

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

const DefaultStep = 1.0 / 60.0

// Report is what a scripted run produced: one line per status command plus
// the final state.
type Report struct {
	Lines []string
	Final game.Snapshot
}

func (r Report) String() string {
	return strings.Join(r.Lines, "\n")
}

type Runner struct {
	session *game.Session
	step    float64
	logger  *log.Logger
}

func NewRunner(s *game.Session, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{session: s, step: DefaultStep, logger: logger}
}

// Run executes cmds in order. A failed expect stops the run and returns the
// report built so far alongside the error.
func (r *Runner) Run(cmds []Command) (Report, error) {
	var rep Report
	for _, cmd := range cmds {
		switch cmd.Verb {
		case VerbTick:
			r.step = cmd.Step
		case VerbWalk:
			r.advance(cmd.Duration, game.Input{Active: true, X: cmd.DirX, Y: cmd.DirY})
		case VerbWait:
			r.advance(cmd.Duration, game.Input{})
		case VerbStatus:
			rep.Lines = append(rep.Lines, StatusLine(r.session.Snapshot()))
		case VerbExpect:
			if err := checkExpect(r.session.Snapshot(), cmd); err != nil {
				rep.Final = r.session.Snapshot()
				return rep, err
			}
		}
		r.logger.Printf("script: line %d %s done at t=%.3f", cmd.Line, cmd.Verb, r.session.Elapsed())
	}
	rep.Final = r.session.Snapshot()
	return rep, nil
}

// advance runs whole steps of r.step and a shorter final step for any
// remainder. The step count is fixed up front.
func (r *Runner) advance(seconds float64, in game.Input) {
	const eps = 1e-9
	step := math.Max(r.step, MinStep)
	n := int(math.Ceil(seconds/step - eps))
	for i := 0; i < n; i++ {
		dt := step
		if i == n-1 {
			dt = seconds - float64(n-1)*step
		}
		r.session.Step(dt, in)
	}
}

// StatusLine renders a one-line summary of the simulation.
func StatusLine(s game.Snapshot) string {
	a := s.Avatar
	var b strings.Builder
	fmt.Fprintf(&b, "t=%.2fs pos=(%.2f,%.2f) facing=%.0f logs=%d/%d money=%d anim=%s",
		s.Elapsed, a.Position.X, a.Position.Z, a.Facing, a.LogsCount, a.MaxLogs, a.MoneyBalance, a.Anim)
	if a.RubbingTree >= 0 {
		fmt.Fprintf(&b, " chopping=%d", a.RubbingTree)
	}
	if a.CapacityReached {
		b.WriteString(" MAX")
	}
	if a.InSellPlace {
		b.WriteString(" selling")
	}
	return b.String()
}

func checkExpect(s game.Snapshot, cmd Command) error {
	var got string
	ok := false
	switch cmd.Field {
	case "logs":
		got = strconv.Itoa(s.Avatar.LogsCount)
		ok = got == cmd.Want
	case "money":
		got = strconv.Itoa(s.Avatar.MoneyBalance)
		ok = got == cmd.Want
	case "anim":
		got = s.Avatar.Anim
		ok = strings.Contains(strings.ToLower(got), cmd.Want)
	case "tree":
		got = "none"
		if s.Avatar.RubbingTree >= 0 {
			got = strconv.Itoa(s.Avatar.RubbingTree)
		}
		ok = got == cmd.Want
	default:
		return fmt.Errorf("line %d: unknown expect field %q", cmd.Line, cmd.Field)
	}
	if !ok {
		return fmt.Errorf("line %d: expected %s %s, got %s", cmd.Line, cmd.Field, cmd.Want, got)
	}
	return nil
}
