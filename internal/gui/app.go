package gui

import (
	"fmt"
	"io"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

type AppConfig struct {
	Version string
	Game    game.Config
	Audio   game.AudioPlayer
	Logger  *log.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newPlayUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

// maxFrameStep bounds one simulation step after a stall (window drag,
// breakpoint) so the avatar cannot tunnel through the table.
const maxFrameStep = 0.1

type playUI struct {
	cfg     AppConfig
	session *game.Session
	balance *balanceLabel
	anim    *clipBlender
	stick   *game.Joystick
	logger  *log.Logger

	width    int32
	height   int32
	lastTick time.Time
	paused   bool
	quit     bool
}

func newPlayUI(cfg AppConfig) (*playUI, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	balance := &balanceLabel{text: "0"}
	anim := &clipBlender{}
	s, err := game.NewSession(cfg.Game, game.SessionDeps{
		Animator: anim,
		Audio:    cfg.Audio,
		Display:  balance,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &playUI{
		cfg:     cfg,
		session: s,
		balance: balance,
		anim:    anim,
		stick:   game.NewJoystick(0, 0, 50),
		logger:  logger,
		width:   1280,
		height:  720,
	}, nil
}

func (ui *playUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Lumber Inc.")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	defer shutdownTypography()

	ui.lastTick = time.Now()
	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		snap := ui.session.Snapshot()
		ui.drawScene(snap)
		ui.drawHUD(snap)
		rl.EndDrawing()
	}

	ui.session.Close()
	rl.CloseWindow()
	ui.logger.Printf("gui: closed after %d frames, balance %s", ui.session.Frames(), ui.balance.text)
	return nil
}

func (ui *playUI) update(delta time.Duration) {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyP) {
		ui.paused = !ui.paused
	}
	in := mergeInput(pollMouseStick(ui.stick), pollGamepad(ui.cfg.Game.Avatar.DeadZone), pollKeyboard())
	if ui.paused {
		return
	}
	dt := delta.Seconds()
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	ui.anim.Advance(dt)
	ui.session.Step(dt, in)
}

// balanceLabel is the HUD money text the avatar writes into.
type balanceLabel struct {
	text string
}

func (b *balanceLabel) SetBalance(text string) {
	b.text = text
}

// clipBlender stands in for a skeletal animator: it tracks the active clip
// and how far the cross-fade into it has progressed.
type clipBlender struct {
	clip     string
	previous string
	blend    float64
	elapsed  float64
}

func (c *clipBlender) CrossFade(clip string, blend float64) {
	c.previous = c.clip
	c.clip = clip
	c.blend = blend
	c.elapsed = 0
}

func (c *clipBlender) Advance(dt float64) {
	c.elapsed += dt
}

// Weight is the share of the current clip in the blend, 0..1.
func (c *clipBlender) Weight() float64 {
	if c.blend <= 0 || c.elapsed >= c.blend {
		return 1
	}
	return c.elapsed / c.blend
}
