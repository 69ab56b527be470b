package game

import (
	"fmt"
	"io"
	"log"
)

type SessionDeps struct {
	Animator Animator
	Audio    AudioPlayer
	Display  BalanceDisplay
	Logger   *log.Logger
}

// Session wires the forest, collision zones, avatar and effects together and
// steps them once per frame in a fixed order.
type Session struct {
	Config    Config
	Forest    *Forest
	Collision *CollisionService
	Avatar    *Avatar
	Effects   *Effects
	Camera    *CameraFollow
	Hint      *HintTimer

	elapsed float64
	frames  int64
	logger  *log.Logger
}

func NewSession(cfg Config, deps SessionDeps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	forest := NewForest(cfg.Forest, logger)
	collision := NewCollisionService(cfg.Scene.Table, cfg.Scene.Ground)
	effects := NewEffects()
	avatar := NewAvatar(cfg.Avatar, cfg.Sell, cfg.Flight, AvatarDeps{
		Collider:  collision,
		Forest:    forest,
		Animator:  deps.Animator,
		Audio:     deps.Audio,
		Display:   deps.Display,
		Effects:   effects,
		Logger:    logger,
		SellPlace: cfg.Scene.SellPlace,
		SellTable: cfg.Scene.SellTable,
	})
	if cfg.Scene.Table == nil || cfg.Scene.Ground == nil {
		logger.Printf("session: table or ground node missing, movement disabled")
	}
	if cfg.Scene.SellPlace == nil {
		logger.Printf("session: sell place missing, selling disabled")
	}

	s := &Session{
		Config:    cfg,
		Forest:    forest,
		Collision: collision,
		Avatar:    avatar,
		Effects:   effects,
		Camera:    NewCameraFollow(cfg.Camera),
		Hint:      NewHintTimer(cfg.Hint),
		logger:    logger,
	}
	avatar.Start()
	s.Camera.Update(avatar.Position())
	return s, nil
}

// Step advances the whole game by dt seconds: forest, avatar, effects,
// camera, hint. dt <= 0 is ignored.
func (s *Session) Step(dt float64, in Input) {
	if s == nil || dt <= 0 {
		return
	}
	s.Forest.Update(dt)
	s.Avatar.Update(dt, in)
	s.Effects.Update(dt)
	s.Camera.Update(s.Avatar.Position())
	s.Hint.Update(dt, in.Active)
	s.elapsed += dt
	s.frames++
}

func (s *Session) Elapsed() float64 { return s.elapsed }
func (s *Session) Frames() int64    { return s.frames }

// Close drops in-flight effects so no callback outlives the session.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.Effects.Clear()
}

type AvatarView struct {
	Position        Vec3
	Facing          float64
	Backpack        Vec3
	Anim            string
	LogsCount       int
	MaxLogs         int
	MoneyBalance    int
	CapacityReached bool
	BackpackVisible bool
	InSellPlace     bool
	RubbingTree     int
}

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	Elapsed   float64
	Trees     []Tree
	Avatar    AvatarView
	Flights   []LogFlight
	Camera    Vec3
	CameraAt  Vec3
	ShowHint  bool
	Table     *Rect
	Ground    *Rect
	SellPlace *Rect
	SellTable *Vec3
}

func (s *Session) Snapshot() Snapshot {
	a := s.Avatar
	rubbing := -1
	if m, ok := a.RubbingTree(); ok {
		rubbing = m.Index
	}
	return Snapshot{
		Elapsed: s.elapsed,
		Trees:   s.Forest.Trees(),
		Avatar: AvatarView{
			Position:        a.Position(),
			Facing:          a.Facing(),
			Backpack:        a.BackpackPosition(),
			Anim:            a.CurrentAnim(),
			LogsCount:       a.LogsCount(),
			MaxLogs:         s.Config.Avatar.MaxLogs,
			MoneyBalance:    a.MoneyBalance(),
			CapacityReached: a.CapacityReached(),
			BackpackVisible: a.BackpackVisible(),
			InSellPlace:     a.SellZone().Inside(),
			RubbingTree:     rubbing,
		},
		Flights:   s.Effects.Flights(),
		Camera:    s.Camera.Position(),
		CameraAt:  s.Camera.Target(),
		ShowHint:  s.Hint.Visible(),
		Table:     s.Collision.Table(),
		Ground:    s.Collision.Ground(),
		SellPlace: a.SellZone().Rect(),
		SellTable: s.Config.Scene.SellTable,
	}
}
