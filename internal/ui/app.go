package ui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

const (
	frameInterval = time.Second / 30
	// Terminals report key presses but not releases; a press holds the stick
	// this long, and auto-repeat keeps extending it.
	keyHold = 0.3
	maxStep = 0.1
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
	m, err := newPlayModel(a.cfg)
	if err != nil {
		return err
	}
	defer m.session.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// --- Styles (forest) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	gold        = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	danger      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// balanceLabel is the HUD money text the avatar writes into.
type balanceLabel struct {
	text string
}

func (b *balanceLabel) SetBalance(text string) {
	b.text = text
}

// animLabel records the clip the avatar asked for; the terminal has no
// skeleton to blend.
type animLabel struct {
	clip string
}

func (a *animLabel) CrossFade(clip string, _ float64) {
	a.clip = clip
}

type heldKeys struct {
	up, down, left, right float64
}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type playModel struct {
	cfg     AppConfig
	session *game.Session
	balance *balanceLabel
	anim    *animLabel
	logger  *log.Logger

	held heldKeys
	last time.Time

	width  int
	height int
}

func newPlayModel(cfg AppConfig) (playModel, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	balance := &balanceLabel{text: "0"}
	anim := &animLabel{}
	s, err := game.NewSession(cfg.Game, game.SessionDeps{
		Animator: anim,
		Audio:    cfg.Audio,
		Display:  balance,
		Logger:   logger,
	})
	if err != nil {
		return playModel{}, fmt.Errorf("start session: %w", err)
	}
	return playModel{
		cfg:     cfg,
		session: s,
		balance: balance,
		anim:    anim,
		logger:  logger,
		width:   80,
		height:  24,
	}, nil
}

func (m playModel) Init() tea.Cmd {
	return frameCmd()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		now := m.session.Elapsed()
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.session.Close()
			return m, tea.Quit
		case "up", "w", "k":
			m.held.up = now + keyHold
		case "down", "s", "j":
			m.held.down = now + keyHold
		case "left", "a", "h":
			m.held.left = now + keyHold
		case "right", "d", "l":
			m.held.right = now + keyHold
		case " ":
			m.held = heldKeys{}
		}
		return m, nil
	case frameMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.step(dt)
		return m, frameCmd()
	}
	return m, nil
}

// step advances the session by dt, clamped so a stalled terminal does not
// teleport the avatar.
func (m playModel) step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > maxStep {
		dt = maxStep
	}
	m.session.Step(dt, m.input())
}

func (m playModel) input() game.Input {
	now := m.session.Elapsed()
	var x, y float64
	if m.held.up > now {
		y++
	}
	if m.held.down > now {
		y--
	}
	if m.held.right > now {
		x++
	}
	if m.held.left > now {
		x--
	}
	if x == 0 && y == 0 {
		return game.Input{}
	}
	l := game.Vec3{X: x, Z: y}.Length()
	return game.Input{Active: true, X: x / l, Y: y / l}
}

func (m playModel) View() string {
	snap := m.session.Snapshot()
	mapRows := m.height - 4
	mapCols := m.width
	if mapCols > 120 {
		mapCols = 120
	}

	var b strings.Builder
	b.WriteString(brightGreen.Render("LUMBER INC") + dimGreen.Render("  "+m.cfg.Version) + "\n")
	b.WriteString(renderForestANSI(snap, mapCols, mapRows))
	b.WriteString(border.Render(strings.Repeat("-", clampInt(mapCols, 10, 120))) + "\n")
	b.WriteString(m.statusBar(snap) + "\n")
	return b.String()
}

func (m playModel) statusBar(snap game.Snapshot) string {
	a := snap.Avatar
	parts := []string{
		gold.Render("$" + m.balance.text),
		green.Render(fmt.Sprintf("logs %d/%d", a.LogsCount, a.MaxLogs)),
	}
	if a.CapacityReached {
		parts = append(parts, danger.Render("MAX"))
	}
	if m.anim.clip != "" {
		parts = append(parts, dimGreen.Render(m.anim.clip))
	}
	if a.InSellPlace {
		parts = append(parts, gold.Render("selling"))
	}
	if snap.ShowHint {
		parts = append(parts, dimGreen.Render("arrows/wasd to walk, stand by a tree to chop, q to quit"))
	}
	return strings.Join(parts, "  ")
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
