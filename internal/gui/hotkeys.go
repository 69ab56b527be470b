package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

// stickFromKeys folds four direction keys into a unit stick direction.
func stickFromKeys(up, down, left, right bool) game.Input {
	var x, y float64
	if up {
		y++
	}
	if down {
		y--
	}
	if right {
		x++
	}
	if left {
		x--
	}
	if x == 0 && y == 0 {
		return game.Input{}
	}
	l := math.Hypot(x, y)
	return game.Input{Active: true, X: x / l, Y: y / l}
}

// stickFromAxes reads a gamepad stick. Pads report +Y downward; the
// joystick space is y up. Deflection within deadZone reads as idle.
func stickFromAxes(axisX, axisY, deadZone float64) game.Input {
	if math.Hypot(axisX, axisY) <= deadZone {
		return game.Input{}
	}
	return game.Input{Active: true, X: axisX, Y: -axisY}
}

// mergeInput picks the first active source: touch, then gamepad, then keys.
func mergeInput(sources ...game.Input) game.Input {
	for _, in := range sources {
		if in.Active {
			return in
		}
	}
	return game.Input{}
}

// screenToStick maps window coordinates (y down) to joystick UI units (y up).
func screenToStick(p rl.Vector2) (float64, float64) {
	return float64(p.X), -float64(p.Y)
}

func keysDown(keys ...int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func pollKeyboard() game.Input {
	return stickFromKeys(
		keysDown(rl.KeyW, rl.KeyUp),
		keysDown(rl.KeyS, rl.KeyDown),
		keysDown(rl.KeyA, rl.KeyLeft),
		keysDown(rl.KeyD, rl.KeyRight),
	)
}

func pollGamepad(deadZone float64) game.Input {
	if !rl.IsGamepadAvailable(0) {
		return game.Input{}
	}
	return stickFromAxes(
		float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX)),
		float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY)),
		deadZone,
	)
}

// pollMouseStick drives a floating joystick: the base lands where the
// button goes down and the knob follows the drag.
func pollMouseStick(j *game.Joystick) game.Input {
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		x, y := screenToStick(rl.GetMousePosition())
		j.BaseX, j.BaseY = x, y
		j.Press(x, y)
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		j.Drag(screenToStick(rl.GetMousePosition()))
	case j.Active():
		j.Release()
	}
	return j.Input()
}
