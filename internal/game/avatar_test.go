package game

import (
	"math"
	"testing"
)

type recordingAnimator struct {
	clips []string
}

func (r *recordingAnimator) CrossFade(clip string, _ float64) {
	r.clips = append(r.clips, clip)
}

type recordingAudio struct {
	cues []Cue
}

func (r *recordingAudio) Play(cue Cue) {
	r.cues = append(r.cues, cue)
}

func (r *recordingAudio) count(cue Cue) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type recordingDisplay struct {
	balance string
}

func (r *recordingDisplay) SetBalance(text string) {
	r.balance = text
}

type testRig struct {
	session  *Session
	animator *recordingAnimator
	audio    *recordingAudio
	display  *recordingDisplay
}

func newTestRig(t *testing.T, mutate func(*Config)) testRig {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rig := testRig{
		animator: &recordingAnimator{},
		audio:    &recordingAudio{},
		display:  &recordingDisplay{},
	}
	s, err := NewSession(cfg, SessionDeps{
		Animator: rig.animator,
		Audio:    rig.audio,
		Display:  rig.display,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	rig.session = s
	return rig
}

func (r testRig) stepIdle(dt float64, n int) {
	for i := 0; i < n; i++ {
		r.session.Step(dt, Input{})
	}
}

func TestStandingAtTreeForRubbingDurationGathersTwoLogs(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.Teleport(Vec3{Z: -1})
	avatar.SetFacing(0)

	rig.stepIdle(0.25, 1)
	tree, _ := rig.session.Forest.Tree(0)
	if tree.State != TreeRubbing {
		t.Fatalf("expected tree 0 to start rubbing, got %s", tree.State)
	}
	if avatar.CurrentAnim() != "Lumber_Chop" {
		t.Fatalf("expected chop animation, got %q", avatar.CurrentAnim())
	}

	rig.stepIdle(0.25, 6)
	tree, _ = rig.session.Forest.Tree(0)
	if tree.State != TreeCutDown {
		t.Fatalf("expected tree cut down after 1.5s, got %s", tree.State)
	}
	if avatar.LogsCount() != 2 {
		t.Fatalf("expected exactly 2 logs, got %d", avatar.LogsCount())
	}
	if rig.audio.count(CueChop) != 2 {
		t.Fatalf("expected 2 chop cues, got %d", rig.audio.count(CueChop))
	}
	if avatar.CurrentAnim() != "Lumber_Idle" {
		t.Fatalf("expected idle once the tree falls, got %q", avatar.CurrentAnim())
	}
	if _, ok := avatar.RubbingTree(); ok {
		t.Fatalf("expected tracked tree to be cleared")
	}
}

func TestChopAtIntervalTicksCreditsEachThreshold(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.Teleport(Vec3{Z: -1})
	avatar.SetFacing(0)

	want := []int{0, 1, 2, 2, 2, 2}
	for i, logs := range want {
		rig.session.Step(0.6, Input{})
		if avatar.LogsCount() != logs {
			tree, _ := rig.session.Forest.Tree(0)
			t.Fatalf("tick %d: expected %d logs, got %d (tree %s timer %.2f)", i+1, logs, avatar.LogsCount(), tree.State, tree.Timer)
		}
	}
	tree, _ := rig.session.Forest.Tree(0)
	if tree.State != TreeCutDown {
		t.Fatalf("expected tree cut down, got %s", tree.State)
	}
}

func TestChopFlightLandsAndShowsBackpack(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.Teleport(Vec3{Z: -1})

	rig.stepIdle(0.25, 4)
	if avatar.LogsCount() != 1 {
		t.Fatalf("expected first log at 0.75s, got %d", avatar.LogsCount())
	}
	if rig.session.Effects.Len() != 1 {
		t.Fatalf("expected one flight in the air, got %d", rig.session.Effects.Len())
	}
	if avatar.BackpackVisible() {
		t.Fatalf("expected backpack hidden until the log lands")
	}
	flight := rig.session.Effects.Flights()[0]
	if flight.Reverse || flight.Start != (Vec3{}) {
		t.Fatalf("expected chop flight from tree 0, got %+v", flight)
	}

	rig.stepIdle(0.25, 4)
	if !avatar.BackpackVisible() {
		t.Fatalf("expected backpack visible after 1s flight")
	}
}

func TestSellZonePaysTwoLogsInNinetyHundredths(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.SetLogsCount(3)
	avatar.Teleport(Vec3{X: -6, Z: 8})

	rig.stepIdle(0.3, 1)
	if !avatar.SellZone().Inside() {
		t.Fatalf("expected avatar to register zone entry")
	}
	rig.stepIdle(0.3, 3)

	if avatar.MoneyBalance() != 20 {
		t.Fatalf("expected balance 20, got %d", avatar.MoneyBalance())
	}
	if avatar.LogsCount() != 1 {
		t.Fatalf("expected 1 log left, got %d", avatar.LogsCount())
	}
	if rig.display.balance != "20" {
		t.Fatalf("expected displayed balance 20, got %q", rig.display.balance)
	}
	if rig.audio.count(CueSell) != 2 {
		t.Fatalf("expected 2 sell cues, got %d", rig.audio.count(CueSell))
	}

	rig.stepIdle(0.3, 1)
	if avatar.LogsCount() != 0 || avatar.MoneyBalance() != 30 {
		t.Fatalf("expected third sale at 1.2s, got logs=%d money=%d", avatar.LogsCount(), avatar.MoneyBalance())
	}
	if avatar.BackpackVisible() {
		t.Fatalf("expected backpack hidden with no logs")
	}

	rig.stepIdle(0.3, 5)
	if avatar.LogsCount() != 0 || avatar.MoneyBalance() != 30 {
		t.Fatalf("expected no sales on an empty backpack, got logs=%d money=%d", avatar.LogsCount(), avatar.MoneyBalance())
	}
}

func TestSellZoneAtMostOnePayoutPerTick(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.SetLogsCount(10)
	avatar.Teleport(Vec3{X: -6, Z: 8})

	rig.stepIdle(0.1, 1)
	rig.stepIdle(5, 1)
	if avatar.LogsCount() != 9 {
		t.Fatalf("expected a single sale for one long tick, got %d logs", avatar.LogsCount())
	}
}

func TestReenteringSellZoneRestartsDelay(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.SetLogsCount(5)
	inside := Vec3{X: -6, Z: 8}
	avatar.Teleport(inside)

	rig.stepIdle(0.25, 4)
	if avatar.LogsCount() != 4 {
		t.Fatalf("expected one sale after 0.75s, got %d logs", avatar.LogsCount())
	}

	avatar.Teleport(Vec3{X: -3, Z: 2})
	rig.stepIdle(0.25, 1)
	if avatar.SellZone().Inside() {
		t.Fatalf("expected zone exit")
	}

	avatar.Teleport(inside)
	rig.stepIdle(0.25, 2)
	if avatar.SellZone().Sold() != 0 || avatar.LogsCount() != 4 {
		t.Fatalf("expected delay to restart on re-entry, sold=%d logs=%d", avatar.SellZone().Sold(), avatar.LogsCount())
	}
	rig.stepIdle(0.25, 2)
	if avatar.LogsCount() != 3 {
		t.Fatalf("expected sale after re-entry delay, got %d logs", avatar.LogsCount())
	}
}

func TestSellZoneEdgeIsOutside(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.SetLogsCount(3)
	// Sell place spans x in [-7.5, -4.5]; the edge does not count.
	avatar.Teleport(Vec3{X: -4.5, Z: 8})
	rig.stepIdle(0.5, 4)
	if avatar.SellZone().Inside() || avatar.LogsCount() != 3 {
		t.Fatalf("expected no sales on the zone edge")
	}
}

func TestMovementRotatesInputAndSkipsInteraction(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.Teleport(Vec3{Z: -1})

	rig.session.Step(0.1, Input{Active: true, Y: 1})

	if !approx(avatar.Facing(), 135) {
		t.Fatalf("expected facing 135 degrees for stick up, got %v", avatar.Facing())
	}
	step := 5 * 0.1
	want := Vec3{X: step * math.Sqrt2 / 2, Z: -1 - step*math.Sqrt2/2}
	got := avatar.Position()
	if !approx(got.X, want.X) || !approx(got.Z, want.Z) {
		t.Fatalf("expected position %+v, got %+v", want, got)
	}
	if avatar.CurrentAnim() != "Lumber_Walk" {
		t.Fatalf("expected walk animation, got %q", avatar.CurrentAnim())
	}
	if tree, _ := rig.session.Forest.Tree(0); tree.State != TreeReady {
		t.Fatalf("expected moving avatar not to start chopping, tree is %s", tree.State)
	}
}

func TestStickInsideDeadZoneCountsAsStanding(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	start := Vec3{Z: -1}
	avatar.Teleport(start)

	rig.session.Step(0.1, Input{Active: true, X: 0.05, Y: 0.05})
	if avatar.Position() != start {
		t.Fatalf("expected no movement inside dead zone")
	}
	if tree, _ := rig.session.Forest.Tree(0); tree.State != TreeRubbing {
		t.Fatalf("expected stationary avatar to chop, tree is %s", tree.State)
	}
}

func TestMovementBlockedByTable(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	// Table spans x in [-10, -8]. With no input rotation, stick +X walks
	// toward world -X, straight into it.
	start := Vec3{X: -7.9, Z: 8}
	avatar.Teleport(start)
	avatar.cfg.InputRotationDeg = 0

	rig.session.Step(0.1, Input{Active: true, X: 1})
	if avatar.Position() != start {
		t.Fatalf("expected table to block the move, got %+v", avatar.Position())
	}
}

func TestLogsNeverExceedCapacity(t *testing.T) {
	rig := newTestRig(t, func(c *Config) { c.Avatar.MaxLogs = 1 })
	avatar := rig.session.Avatar
	avatar.Teleport(Vec3{Z: -1})

	rig.stepIdle(0.25, 7)
	if avatar.LogsCount() != 1 {
		t.Fatalf("expected capacity to cap logs at 1, got %d", avatar.LogsCount())
	}
	if !avatar.CapacityReached() {
		t.Fatalf("expected capacity flag")
	}
	if rig.audio.count(CueChop) != 2 {
		t.Fatalf("expected both chop ticks to still play, got %d", rig.audio.count(CueChop))
	}

	avatar.Teleport(Vec3{X: -6, Z: 8})
	rig.stepIdle(0.3, 3)
	if avatar.LogsCount() != 0 || avatar.CapacityReached() {
		t.Fatalf("expected sale to clear capacity flag, logs=%d full=%v", avatar.LogsCount(), avatar.CapacityReached())
	}
}

func TestAnimatorOnlyCrossFadesOnChange(t *testing.T) {
	rig := newTestRig(t, nil)
	avatar := rig.session.Avatar
	avatar.Teleport(Vec3{X: -3, Z: 2})

	rig.stepIdle(0.1, 5)
	rig.session.Step(0.1, Input{Active: true, Y: 1})
	rig.session.Step(0.1, Input{Active: true, Y: 1})

	want := []string{"Lumber_Walk", "Lumber_Idle", "Lumber_Walk"}
	if len(rig.animator.clips) != len(want) {
		t.Fatalf("expected cross-fades %v, got %v", want, rig.animator.clips)
	}
	for i := range want {
		if rig.animator.clips[i] != want[i] {
			t.Fatalf("expected cross-fades %v, got %v", want, rig.animator.clips)
		}
	}
}

func TestAvatarWithoutCollaboratorsIsInert(t *testing.T) {
	a := NewAvatar(DefaultAvatarConfig(), DefaultSellConfig(), FlightConfig{LegDuration: 0.5}, AvatarDeps{})
	start := a.Position()
	a.Start()
	a.Update(0.1, Input{Active: true, X: 1})
	a.Update(0.1, Input{})
	if a.Position() != start {
		t.Fatalf("expected no movement without a collider")
	}
	if a.LogsCount() != 0 || a.MoneyBalance() != 0 {
		t.Fatalf("expected untouched inventory")
	}
}

func TestSetLogsCountClamps(t *testing.T) {
	a := NewAvatar(DefaultAvatarConfig(), DefaultSellConfig(), FlightConfig{LegDuration: 0.5}, AvatarDeps{})
	a.SetLogsCount(99)
	if a.LogsCount() != 30 || !a.CapacityReached() {
		t.Fatalf("expected clamp to 30 with capacity flag, got %d", a.LogsCount())
	}
	a.SetLogsCount(-4)
	if a.LogsCount() != 0 {
		t.Fatalf("expected clamp to 0, got %d", a.LogsCount())
	}
}
