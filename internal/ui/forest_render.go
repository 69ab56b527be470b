package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/lumber-inc/internal/game"
)

var (
	colBackground = color.RGBA{R: 0x14, G: 0x1A, B: 0x1F, A: 255}
	colGround     = color.RGBA{R: 0x2F, G: 0x5D, B: 0x42, A: 255}
	colTable      = color.RGBA{R: 0x7A, G: 0x4E, B: 0x2A, A: 255}
	colSell       = color.RGBA{R: 0xC1, G: 0x8B, B: 0x2F, A: 150}
	colSellActive = color.RGBA{R: 0xE8, G: 0xB0, B: 0x40, A: 220}
	colCrown      = color.RGBA{R: 0x3C, G: 0xB0, B: 0x5A, A: 255}
	colRubbing    = color.RGBA{R: 0x9C, G: 0xE0, B: 0x6A, A: 255}
	colStump      = color.RGBA{R: 0x8A, G: 0x5A, B: 0x32, A: 255}
	colAvatar     = color.RGBA{R: 0xD4, G: 0x6A, B: 0x1E, A: 255}
	colLog        = color.RGBA{R: 0xB0, G: 0x78, B: 0x40, A: 255}
)

// mapView projects the ground plane onto the terminal so that pushing the
// stick up moves the avatar up the screen. The core rotates stick input by
// 135 degrees, so the map is drawn rotated the same way.
type mapView struct {
	scale  float64
	offX   float64
	offY   float64
	rotate float64
}

func (v mapView) raw(p game.Vec3) (float64, float64) {
	right := game.Vec3{X: -1}.RotateY(v.rotate)
	up := game.Vec3{Z: 1}.RotateY(v.rotate)
	return p.X*right.X + p.Z*right.Z, -(p.X*up.X + p.Z*up.Z)
}

func (v mapView) project(p game.Vec3) (float64, float64) {
	x, y := v.raw(p)
	return x*v.scale + v.offX, y*v.scale + v.offY
}

func fitMapView(s game.Snapshot, w, h int, rotate float64) mapView {
	v := mapView{scale: 1, rotate: rotate}
	pts := sceneExtent(s)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x, y := v.raw(p)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	spanX := math.Max(maxX-minX, 1)
	spanY := math.Max(maxY-minY, 1)
	v.scale = math.Min((float64(w)-2)/spanX, (float64(h)-2)/spanY)
	v.offX = (float64(w)-spanX*v.scale)/2 - minX*v.scale
	v.offY = (float64(h)-spanY*v.scale)/2 - minY*v.scale
	return v
}

func sceneExtent(s game.Snapshot) []game.Vec3 {
	if s.Ground != nil {
		return rectCorners(s.Ground)
	}
	pts := []game.Vec3{s.Avatar.Position}
	for _, t := range s.Trees {
		pts = append(pts, t.Position)
	}
	return pts
}

func rectCorners(r *game.Rect) []game.Vec3 {
	return []game.Vec3{
		{X: r.CenterX - r.HalfWidth, Z: r.CenterZ - r.HalfHeight},
		{X: r.CenterX + r.HalfWidth, Z: r.CenterZ - r.HalfHeight},
		{X: r.CenterX + r.HalfWidth, Z: r.CenterZ + r.HalfHeight},
		{X: r.CenterX - r.HalfWidth, Z: r.CenterZ + r.HalfHeight},
	}
}

func drawRect(dc *gg.Context, v mapView, r *game.Rect, c color.Color) {
	if r == nil {
		return
	}
	for i, p := range rectCorners(r) {
		x, y := v.project(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

// renderForestANSI draws a top-down view of the snapshot as ANSI half-block
// rows, one terminal row per two pixel rows.
func renderForestANSI(s game.Snapshot, widthChars, heightRows int) string {
	if widthChars < 20 || heightRows < 6 {
		return forestASCIISummary(s)
	}
	w := widthChars
	h := heightRows * 2
	dc := gg.NewContext(w, h)
	dc.SetColor(colBackground)
	dc.Clear()

	v := fitMapView(s, w, h, 135)
	unit := math.Max(v.scale, 1)

	drawRect(dc, v, s.Ground, colGround)
	sellCol := colSell
	if s.Avatar.InSellPlace {
		sellCol = colSellActive
	}
	drawRect(dc, v, s.SellPlace, sellCol)
	drawRect(dc, v, s.Table, colTable)

	for _, t := range s.Trees {
		x, y := v.project(t.Position)
		if t.StumpVisible() {
			dc.SetColor(colStump)
			dc.DrawCircle(x, y, unit*0.35)
			dc.Fill()
			continue
		}
		c := colCrown
		if t.State == game.TreeRubbing {
			c = colRubbing
			x += math.Sin(t.SwingAngle*math.Pi/180) * unit * 0.6
		}
		dc.SetColor(c)
		dc.DrawCircle(x, y, unit*0.8*clampFloat(t.CurrentScale, 0.2, 1))
		dc.Fill()
	}

	for _, f := range s.Flights {
		x, y := v.project(f.Position())
		dc.SetColor(colLog)
		dc.DrawRectangle(x-unit*0.25, y-unit*0.25, unit*0.5, unit*0.5)
		dc.Fill()
	}

	ax, ay := v.project(s.Avatar.Position)
	dc.SetColor(colAvatar)
	dc.DrawCircle(ax, ay, unit*0.6)
	dc.Fill()
	heading := game.Vec3{Z: 1}.RotateY(s.Avatar.Facing)
	hx, hy := v.project(s.Avatar.Position.Add(heading.Scale(1.5)))
	dc.SetLineWidth(1)
	dc.DrawLine(ax, ay, hx, hy)
	dc.Stroke()

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func forestASCIISummary(s game.Snapshot) string {
	counts := map[game.TreeState]int{}
	for _, t := range s.Trees {
		counts[t.State]++
	}
	return fmt.Sprintf("trees: %d ready, %d chopping, %d felled, %d growing\n",
		counts[game.TreeReady], counts[game.TreeRubbing], counts[game.TreeCutDown], counts[game.TreeGrowing])
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Min(maxV, math.Max(minV, v))
}
