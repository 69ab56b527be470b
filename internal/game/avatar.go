package game

import (
	"io"
	"log"
	"strconv"
)

type AvatarDeps struct {
	Collider Collider
	Forest   TreeFinder
	Animator Animator
	Audio    AudioPlayer
	Display  BalanceDisplay
	Effects  EffectQueue
	Logger   *log.Logger
	// SellPlace is the node the sell zone is derived from; nil disables selling.
	SellPlace *Transform
	// SellTable is where sold logs fly to; nil skips the sell flight.
	SellTable *Vec3
}

// Avatar is the lumberjack: movement, chopping and selling.
type Avatar struct {
	cfg    AvatarConfig
	sell   SellConfig
	flight FlightConfig

	collider  Collider
	forest    TreeFinder
	animator  Animator
	audio     AudioPlayer
	display   BalanceDisplay
	effects   EffectQueue
	sellTable *Vec3
	logger    *log.Logger

	position Vec3
	facing   float64

	currentAnim string

	logsCount    int
	moneyBalance int

	rubbing      TreeMatch
	hasRubbing   bool
	gatheredWood int

	sellZone SellZone

	capacityReached bool
	backpackVisible bool
}

func NewAvatar(cfg AvatarConfig, sell SellConfig, flight FlightConfig, deps AvatarDeps) *Avatar {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Avatar{
		cfg:       cfg,
		sell:      sell,
		flight:    flight,
		collider:  deps.Collider,
		forest:    deps.Forest,
		animator:  deps.Animator,
		audio:     deps.Audio,
		display:   deps.Display,
		effects:   deps.Effects,
		sellTable: deps.SellTable,
		logger:    logger,
		position:  cfg.Spawn,
		sellZone:  NewSellZone(deps.SellPlace, sell),
	}
}

// Start plays the opening walk clip, as the scene does on load.
func (a *Avatar) Start() {
	a.play(a.cfg.Clips.Walk)
}

func (a *Avatar) Position() Vec3      { return a.position }
func (a *Avatar) Facing() float64     { return a.facing }
func (a *Avatar) LogsCount() int      { return a.logsCount }
func (a *Avatar) MoneyBalance() int   { return a.moneyBalance }
func (a *Avatar) CurrentAnim() string { return a.currentAnim }
func (a *Avatar) GatheredWood() int   { return a.gatheredWood }
func (a *Avatar) CapacityReached() bool {
	return a.capacityReached
}
func (a *Avatar) BackpackVisible() bool {
	return a.backpackVisible
}
func (a *Avatar) SellZone() *SellZone {
	return &a.sellZone
}

// RubbingTree is the avatar's snapshot of the tree it is chopping.
func (a *Avatar) RubbingTree() (TreeMatch, bool) {
	return a.rubbing, a.hasRubbing
}

// BackpackPosition is the world anchor logs fly to when chopped.
func (a *Avatar) BackpackPosition() Vec3 {
	return a.position.Add(a.cfg.BackpackOffset.RotateY(a.facing))
}

// SetLogsCount clamps n to [0, MaxLogs]. Used by tests and scripted setups.
func (a *Avatar) SetLogsCount(n int) {
	if n < 0 {
		n = 0
	}
	if n > a.cfg.MaxLogs {
		n = a.cfg.MaxLogs
	}
	a.logsCount = n
	a.capacityReached = n == a.cfg.MaxLogs
	a.backpackVisible = n > 0
}

// Teleport places the avatar without collision checks.
func (a *Avatar) Teleport(pos Vec3) {
	a.position = pos
}

func (a *Avatar) SetFacing(deg float64) {
	a.facing = deg
}

// Update runs one tick. Moving and interacting exclude each other: a tick
// with live stick input neither chops nor sells.
func (a *Avatar) Update(dt float64, in Input) {
	moved := false
	if in.Active {
		dir := Vec3{X: -in.X, Z: in.Y}
		if dir.Length() > a.cfg.DeadZone {
			moved = true
			a.move(dt, dir)
		}
	}
	if moved {
		return
	}
	a.checkTreeInFront()
	a.checkSellPlace(dt)
	a.gatherWood()
}

func (a *Avatar) move(dt float64, dir Vec3) {
	dir = dir.Normalize().RotateY(a.cfg.InputRotationDeg)
	a.facing = headingDeg(dir)

	desired := dir.Scale(a.cfg.MoveSpeed * dt)
	if a.collider != nil {
		a.position = a.collider.ResolveMove(a.position, desired)
	}
	a.play(a.cfg.Clips.Walk)
}

func (a *Avatar) checkTreeInFront() {
	if a.forest == nil {
		return
	}
	match, ok := a.forest.FindChoppableTree(a.position, a.facing, a.cfg.MaxDistanceToTree, a.cfg.ViewAngleDeg)
	switch {
	case !ok:
		a.hasRubbing = false
		a.rubbing = TreeMatch{}
		a.play(a.cfg.Clips.Idle)
	case a.hasRubbing && a.rubbing.Index == match.Index:
		a.rubbing.Timer = match.Timer
	default:
		a.rubbing = match
		a.hasRubbing = true
		a.gatheredWood = 0
		a.play(a.cfg.Clips.Chop)
	}
}

// gatherWood credits one log each time the tracked tree's timer reaches the
// next ChopInterval multiple. Logs past capacity are dropped.
func (a *Avatar) gatherWood() {
	if !a.hasRubbing {
		return
	}
	if a.rubbing.Timer < a.cfg.ChopInterval*float64(a.gatheredWood+1) {
		return
	}
	treePos, ok := a.forest.TreePosition(a.rubbing.Index)
	if !ok {
		return
	}

	a.gatheredWood++
	if a.logsCount < a.cfg.MaxLogs {
		a.logsCount++
	}
	if a.logsCount == a.cfg.MaxLogs && !a.capacityReached {
		a.capacityReached = true
		a.logger.Printf("avatar: backpack full (%d logs)", a.logsCount)
	}
	a.playCue(CueChop)
	a.spawnFlight(treePos, false)
}

func (a *Avatar) checkSellPlace(dt float64) {
	if !a.sellZone.Tick(dt, a.position, a.logsCount) {
		return
	}
	a.logsCount--
	a.moneyBalance += a.sell.Price
	if a.display != nil {
		a.display.SetBalance(strconv.Itoa(a.moneyBalance))
	}
	if a.logsCount < a.cfg.MaxLogs {
		a.capacityReached = false
	}
	if a.sellTable != nil {
		a.spawnFlight(*a.sellTable, true)
	}
	a.playCue(CueSell)
	if a.logsCount == 0 {
		a.backpackVisible = false
	}
	a.logger.Printf("avatar: sold log, balance=%d logs=%d", a.moneyBalance, a.logsCount)
}

func (a *Avatar) spawnFlight(anchor Vec3, reverse bool) {
	if a.effects == nil {
		return
	}
	var onLand func()
	if !reverse {
		onLand = func() { a.backpackVisible = true }
	}
	a.effects.Enqueue(NewLogFlight(anchor, a.BackpackPosition(), reverse, a.flight, onLand))
}

func (a *Avatar) play(clip string) {
	if a.currentAnim == clip {
		return
	}
	a.currentAnim = clip
	if a.animator != nil {
		a.animator.CrossFade(clip, a.cfg.CrossFade)
	}
}

func (a *Avatar) playCue(cue Cue) {
	if a.audio == nil {
		return
	}
	a.audio.Play(cue)
}
