package game

// LogFlight is one log travelling between an anchor and the backpack in two
// linear legs: up to a raised midpoint, then down to the end.
type LogFlight struct {
	Start       Vec3
	Mid         Vec3
	End         Vec3
	Scale       Vec3
	LegDuration float64
	// Reverse marks a sale (backpack to table) rather than a chop.
	Reverse bool
	Elapsed float64
	// OnLand runs once, from Effects.Update, when the flight finishes.
	OnLand func()
}

// NewLogFlight builds a flight between anchor and backpack. The midpoint is
// halfway between them, lifted by lift on Y, whichever way the log travels.
func NewLogFlight(anchor, backpack Vec3, reverse bool, cfg FlightConfig, onLand func()) LogFlight {
	mid := anchor.Lerp(backpack, 0.5)
	mid.Y += cfg.Lift

	start, end := anchor, backpack
	if reverse {
		start, end = backpack, anchor
	}
	return LogFlight{
		Start:       start,
		Mid:         mid,
		End:         end,
		Scale:       cfg.Scale,
		LegDuration: cfg.LegDuration,
		Reverse:     reverse,
		OnLand:      onLand,
	}
}

func (f LogFlight) Done() bool {
	return f.Elapsed >= 2*f.LegDuration
}

func (f LogFlight) Position() Vec3 {
	if f.LegDuration <= 0 {
		return f.End
	}
	if f.Elapsed < f.LegDuration {
		return f.Start.Lerp(f.Mid, f.Elapsed/f.LegDuration)
	}
	t := clampFloat((f.Elapsed-f.LegDuration)/f.LegDuration, 0, 1)
	return f.Mid.Lerp(f.End, t)
}

// EffectQueue accepts visual effects spawned by gameplay code.
type EffectQueue interface {
	Enqueue(f LogFlight)
}

// Effects is the pending-effects queue, drained once per tick. Callbacks only
// ever run inside Update, so nothing fires after the session drops the queue.
type Effects struct {
	flights []LogFlight
}

func NewEffects() *Effects {
	return &Effects{}
}

func (e *Effects) Enqueue(f LogFlight) {
	if e == nil {
		return
	}
	e.flights = append(e.flights, f)
}

func (e *Effects) Update(dt float64) {
	if e == nil || len(e.flights) == 0 {
		return
	}
	var landed []func()
	kept := e.flights[:0]
	for _, f := range e.flights {
		f.Elapsed += dt
		if f.Done() {
			if f.OnLand != nil {
				landed = append(landed, f.OnLand)
			}
			continue
		}
		kept = append(kept, f)
	}
	e.flights = kept
	// Callbacks may enqueue; run them after the queue is consistent.
	for _, fn := range landed {
		fn()
	}
}

func (e *Effects) Flights() []LogFlight {
	if e == nil {
		return nil
	}
	out := make([]LogFlight, len(e.flights))
	copy(out, e.flights)
	return out
}

func (e *Effects) Len() int {
	if e == nil {
		return 0
	}
	return len(e.flights)
}

// Clear drops every pending flight without running its callback.
func (e *Effects) Clear() {
	if e == nil {
		return
	}
	e.flights = nil
}
