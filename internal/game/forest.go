package game

import (
	"io"
	"log"
	"math"
)

type TreeState int

const (
	TreeReady TreeState = iota
	TreeRubbing
	TreeCutDown
	TreeGrowing
)

func (s TreeState) String() string {
	switch s {
	case TreeReady:
		return "ready"
	case TreeRubbing:
		return "rubbing"
	case TreeCutDown:
		return "cut_down"
	case TreeGrowing:
		return "growing"
	default:
		return "unknown"
	}
}

type Tree struct {
	Index    int
	Position Vec3
	State    TreeState
	// Timer counts seconds since the last transition.
	Timer float64
	// CurrentScale drives the Y scale while growing.
	CurrentScale float64
	// SwingAngle is the X-axis rotation applied while being chopped.
	SwingAngle float64
}

func (t Tree) Choppable() bool {
	return t.State == TreeReady || t.State == TreeRubbing
}

func (t Tree) TreeVisible() bool {
	return t.State != TreeCutDown
}

func (t Tree) StumpVisible() bool {
	return t.State == TreeCutDown
}

// TreeMatch is a snapshot of a tree picked by the proximity query. It is a
// copy; the forest stays the only owner of tree state.
type TreeMatch struct {
	Index int
	Timer float64
}

// TreeFinder is what the avatar needs from the forest.
type TreeFinder interface {
	FindChoppableTree(pos Vec3, facingDeg, maxDistance, viewAngleDeg float64) (TreeMatch, bool)
	TreePosition(index int) (Vec3, bool)
}

type Forest struct {
	cfg    ForestConfig
	trees  []Tree
	logger *log.Logger
}

// NewForest lays the trees out on the configured grid, x columns first.
func NewForest(cfg ForestConfig, logger *log.Logger) *Forest {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	f := &Forest{cfg: cfg, logger: logger}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return f
	}
	f.trees = make([]Tree, 0, cfg.Width*cfg.Height)
	for x := 0; x < cfg.Width; x++ {
		for z := 0; z < cfg.Height; z++ {
			f.trees = append(f.trees, Tree{
				Index: len(f.trees),
				Position: Vec3{
					X: cfg.StartX + float64(x)*cfg.DX,
					Z: cfg.StartZ + float64(z)*cfg.DZ,
				},
				State:        TreeReady,
				CurrentScale: 1,
			})
		}
	}
	f.logger.Printf("forest: generated %d trees (%dx%d)", len(f.trees), cfg.Width, cfg.Height)
	return f
}

func (f *Forest) Len() int {
	return len(f.trees)
}

func (f *Forest) Tree(index int) (Tree, bool) {
	if index < 0 || index >= len(f.trees) {
		return Tree{}, false
	}
	return f.trees[index], true
}

// Trees returns a copy of every tree, in index order.
func (f *Forest) Trees() []Tree {
	out := make([]Tree, len(f.trees))
	copy(out, f.trees)
	return out
}

func (f *Forest) TreePosition(index int) (Vec3, bool) {
	t, ok := f.Tree(index)
	return t.Position, ok
}

// Update advances every tree by dt seconds. Timers run in every state.
func (f *Forest) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range f.trees {
		t := &f.trees[i]
		t.Timer += dt

		switch t.State {
		case TreeRubbing:
			t.SwingAngle = f.swingAngle(t.Timer)
			if t.Timer >= f.cfg.RubbingDuration {
				f.finishChopping(t)
			}
		case TreeCutDown:
			if t.Timer >= f.cfg.CutDownDuration {
				f.startGrowing(t)
			}
		case TreeGrowing:
			t.CurrentScale = math.Min(1, t.CurrentScale+dt/f.cfg.GrowingDuration)
			if t.CurrentScale >= 1 {
				f.finishGrowing(t)
			}
		}
	}
}

// swingAngle oscillates SwingCycles times over the rubbing duration.
func (f *Forest) swingAngle(timer float64) float64 {
	progress := f.cfg.SwingCycles * timer / f.cfg.RubbingDuration
	return math.Sin(progress*math.Pi*2) * f.cfg.SwingAmplitudeDeg
}

// ChopTree starts chopping a ready tree directly, bypassing the proximity query.
func (f *Forest) ChopTree(index int) bool {
	if index < 0 || index >= len(f.trees) {
		return false
	}
	t := &f.trees[index]
	if t.State != TreeReady {
		return false
	}
	t.State = TreeRubbing
	t.Timer = 0
	t.CurrentScale = 1
	f.logger.Printf("forest: tree %d chopping started", index)
	return true
}

func (f *Forest) finishChopping(t *Tree) {
	t.State = TreeCutDown
	t.Timer = 0
	t.SwingAngle = 0
	f.logger.Printf("forest: tree %d cut down", t.Index)
}

func (f *Forest) startGrowing(t *Tree) {
	t.State = TreeGrowing
	t.Timer = 0
	t.CurrentScale = f.cfg.RegrowScale
	f.logger.Printf("forest: tree %d growing", t.Index)
}

func (f *Forest) finishGrowing(t *Tree) {
	t.State = TreeReady
	t.Timer = 0
	t.CurrentScale = 1
	f.logger.Printf("forest: tree %d ready", t.Index)
}

// FindChoppableTree returns the first tree in index order that is within
// maxDistance, choppable, and either inside the view cone or closer than
// half of maxDistance. It is not the nearest match.
//
// The cone test is a plain difference of angles in [0, 360), so a facing near
// 0° does not see a tree bearing near 359°.
//
// A matched Ready tree starts Rubbing here; a Rubbing tree keeps its timer.
func (f *Forest) FindChoppableTree(pos Vec3, facingDeg, maxDistance, viewAngleDeg float64) (TreeMatch, bool) {
	facing := normalizeDeg(facingDeg)
	for i := range f.trees {
		t := &f.trees[i]

		toTree := t.Position.Sub(pos)
		distance := toTree.Length()
		if distance > maxDistance {
			continue
		}
		if !t.Choppable() {
			continue
		}

		bearing := normalizeDeg(headingDeg(toTree))
		inView := math.Abs(bearing-facing) <= viewAngleDeg
		if !inView && distance >= maxDistance/2 {
			continue
		}

		if t.State == TreeReady {
			t.State = TreeRubbing
			t.Timer = 0
			f.logger.Printf("forest: tree %d chopping started", t.Index)
		}
		return TreeMatch{Index: t.Index, Timer: t.Timer}, true
	}
	return TreeMatch{}, false
}
