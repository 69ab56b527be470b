package game

// Collaborators the simulation calls out to. Clients provide them; any of them
// may be nil, in which case the matching behavior is skipped.

type Animator interface {
	CrossFade(clip string, blend float64)
}

type Cue int

const (
	CueChop Cue = iota
	CueSell
)

func (c Cue) String() string {
	switch c {
	case CueChop:
		return "chop"
	case CueSell:
		return "sell"
	default:
		return "unknown"
	}
}

type AudioPlayer interface {
	Play(cue Cue)
}

type BalanceDisplay interface {
	SetBalance(text string)
}

// Input is the joystick state for one tick: a direction in joystick space
// (x right, y up) and whether the stick is held.
type Input struct {
	Active bool
	X      float64
	Y      float64
}
