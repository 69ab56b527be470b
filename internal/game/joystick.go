package game

import "math"

// Joystick turns press/drag/release positions around a fixed base into the
// direction the avatar reads. Positions are UI units with y up.
type Joystick struct {
	BaseX     float64
	BaseY     float64
	MaxRadius float64

	active bool
	dirX   float64
	dirY   float64
	knobX  float64
	knobY  float64
}

func NewJoystick(baseX, baseY, maxRadius float64) *Joystick {
	if maxRadius <= 0 {
		maxRadius = 50
	}
	return &Joystick{BaseX: baseX, BaseY: baseY, MaxRadius: maxRadius}
}

func (j *Joystick) Press(x, y float64) {
	j.active = true
	j.track(x, y)
}

func (j *Joystick) Drag(x, y float64) {
	if !j.active {
		return
	}
	j.track(x, y)
}

func (j *Joystick) Release() {
	j.active = false
	j.dirX, j.dirY = 0, 0
	j.knobX, j.knobY = 0, 0
}

func (j *Joystick) track(x, y float64) {
	lx, ly := x-j.BaseX, y-j.BaseY
	length := math.Hypot(lx, ly)
	if length == 0 {
		j.dirX, j.dirY = 0, 0
		j.knobX, j.knobY = 0, 0
		return
	}
	j.dirX, j.dirY = lx/length, ly/length
	reach := math.Min(length, j.MaxRadius)
	j.knobX, j.knobY = j.dirX*reach, j.dirY*reach
}

func (j *Joystick) Active() bool { return j.active }

// Knob is the knob offset from the base, clamped to MaxRadius.
func (j *Joystick) Knob() (float64, float64) { return j.knobX, j.knobY }

func (j *Joystick) Input() Input {
	return Input{Active: j.active, X: j.dirX, Y: j.dirY}
}

// HintTimer shows the tutorial hint at start and again after the stick has
// been left alone for the configured delay.
type HintTimer struct {
	delay   float64
	idle    float64
	visible bool
	wasHeld bool
}

func NewHintTimer(cfg HintConfig) *HintTimer {
	return &HintTimer{delay: cfg.ShowDelay, visible: true}
}

func (h *HintTimer) Update(dt float64, held bool) {
	if held {
		h.visible = false
		h.idle = 0
		h.wasHeld = true
		return
	}
	if h.wasHeld {
		h.idle = 0
		h.wasHeld = false
	}
	h.idle += dt
	if h.idle >= h.delay {
		h.visible = true
	}
}

func (h *HintTimer) Visible() bool { return h.visible }
