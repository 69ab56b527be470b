package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

const (
	trunkHeight  = 1.2
	trunkRadius  = 0.25
	crownHeight  = 2.4
	crownRadius  = 1.1
	avatarHeight = 1.6
)

func vec3(v game.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func sceneCamera(s game.Snapshot) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(s.Camera),
		Target:     vec3(s.CameraAt),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// swayOffset is how far a point height h up the tree moves when the tree
// leans by deg around the world X axis.
func swayOffset(h, deg float64) (dy, dz float64) {
	rad := deg * math.Pi / 180
	return h*math.Cos(rad) - h, h * math.Sin(rad)
}

func (ui *playUI) drawScene(s game.Snapshot) {
	rl.BeginMode3D(sceneCamera(s))
	defer rl.EndMode3D()

	if g := s.Ground; g != nil {
		rl.DrawPlane(rl.NewVector3(float32(g.CenterX), 0, float32(g.CenterZ)),
			rl.NewVector2(float32(g.HalfWidth*2), float32(g.HalfHeight*2)), AppTheme.Ground)
	}
	if sp := s.SellPlace; sp != nil {
		c := AppTheme.SellPlace
		if s.Avatar.InSellPlace {
			c = AppTheme.SellLit
		}
		rl.DrawCube(rl.NewVector3(float32(sp.CenterX), 0.01, float32(sp.CenterZ)),
			float32(sp.HalfWidth*2), 0.02, float32(sp.HalfHeight*2), c)
	}
	if t := s.Table; t != nil {
		rl.DrawCube(rl.NewVector3(float32(t.CenterX), 0.5, float32(t.CenterZ)),
			float32(t.HalfWidth*2), 1, float32(t.HalfHeight*2), AppTheme.Table)
		rl.DrawCubeWires(rl.NewVector3(float32(t.CenterX), 0.5, float32(t.CenterZ)),
			float32(t.HalfWidth*2), 1, float32(t.HalfHeight*2), colorBorder)
	}

	for _, tree := range s.Trees {
		drawTree(tree)
	}
	for _, f := range s.Flights {
		p := vec3(f.Position())
		rl.DrawCube(p, float32(0.8*f.Scale.X), float32(0.3*f.Scale.Y), float32(0.3*f.Scale.Z), AppTheme.Log)
	}
	drawAvatar(s.Avatar)
}

func drawTree(t game.Tree) {
	base := vec3(t.Position)
	if t.StumpVisible() {
		rl.DrawCylinder(base, trunkRadius*1.2, trunkRadius*1.3, 0.3, 10, AppTheme.Stump)
		return
	}
	if !t.TreeVisible() {
		return
	}
	scale := t.CurrentScale
	crown := AppTheme.Crown
	if t.State == game.TreeRubbing {
		crown = AppTheme.CrownLit
	}
	rl.DrawCylinder(base, trunkRadius, trunkRadius, float32(trunkHeight*scale), 8, AppTheme.Trunk)

	crownBase := trunkHeight * scale
	dy, dz := swayOffset(crownBase, t.SwingAngle)
	rl.DrawCylinder(
		rl.NewVector3(base.X, float32(crownBase+dy), base.Z+float32(dz)),
		0, crownRadius, float32(crownHeight*scale), 10, crown)
}

func drawAvatar(a game.AvatarView) {
	pos := vec3(a.Position)
	rl.DrawCylinder(pos, 0.35, 0.35, avatarHeight, 12, AppTheme.Avatar)
	rl.DrawSphere(rl.NewVector3(pos.X, pos.Y+avatarHeight+0.25, pos.Z), 0.3, AppTheme.Avatar)

	heading := game.Vec3{Z: 0.8}.RotateY(a.Facing)
	nose := a.Position.Add(heading)
	nose.Y += avatarHeight * 0.6
	rl.DrawSphere(vec3(nose), 0.12, colorText)

	if a.BackpackVisible {
		rl.DrawCube(vec3(a.Backpack), 0.5, 0.6, 0.35, AppTheme.Backpack)
	}
}
