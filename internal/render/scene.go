package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spacehole-rogue/autodock/internal/game"
)

const (
	stationRadius = 14
	shuttleLength = 12
	planSamples   = 24
)

// Camera maps world coordinates to screen pixels, centered on a point.
type Camera struct {
	X, Y          float64 // world point at screen center
	Width, Height int
}

// ToScreen converts a world position to screen coordinates.
func (c Camera) ToScreen(v game.Vec2) (float32, float32) {
	return float32(v.X - c.X + float64(c.Width)/2), float32(v.Y - c.Y + float64(c.Height)/2)
}

// DrawScene renders the world layer: region borders, stations, the
// approach curve, loose items and the shuttle.
func DrawScene(screen *ebiten.Image, cam Camera, s *game.Sim, now float64) {
	screen.Fill(Palette[ColorBlack])
	drawRegionBorders(screen, cam, s.RegionSize)

	for _, st := range []*game.Station{s.RefuelStation, s.RewardShip} {
		if st == nil || !st.Pos().Finite() {
			continue
		}
		drawStation(screen, cam, st, s.Tuning.Proximity)
	}

	if s.Dock != nil && s.Dock.Plan != nil {
		drawPlan(screen, cam, *s.Dock.Plan)
	}

	for _, it := range s.Bonuses.Items() {
		x, y := cam.ToScreen(it.Pos)
		clr := Palette[ItemColor(it.Kind)]
		if now < it.NotBefore {
			clr = dim(clr)
		}
		vector.DrawFilledCircle(screen, x, y, float32(max(it.Radius/2, 2)), clr, true)
	}

	drawShuttle(screen, cam, s.Player.Pose(), s.Player.Fuel > 0)
}

func drawRegionBorders(screen *ebiten.Image, cam Camera, size float64) {
	if size <= 0 {
		return
	}
	clr := Palette[ColorDarkGray]
	w, h := float64(cam.Width), float64(cam.Height)
	left, top := cam.X-w/2, cam.Y-h/2

	for x := math.Ceil(left/size) * size; x <= left+w; x += size {
		sx := float32(x - left)
		vector.StrokeLine(screen, sx, 0, sx, float32(h), 1, clr, false)
	}
	for y := math.Ceil(top/size) * size; y <= top+h; y += size {
		sy := float32(y - top)
		vector.StrokeLine(screen, 0, sy, float32(w), sy, 1, clr, false)
	}
}

func drawStation(screen *ebiten.Image, cam Camera, st *game.Station, proximity float64) {
	x, y := cam.ToScreen(st.Pos())
	clr := Palette[StationColor(st.Kind)]
	switch {
	case st.Armed():
		vector.StrokeCircle(screen, x, y, float32(proximity), 1, Palette[ColorDarkGray], true)
	case !st.Active:
		clr = dim(clr)
	}
	vector.DrawFilledCircle(screen, x, y, stationRadius, clr, true)
	vector.StrokeCircle(screen, x, y, stationRadius, 2, Palette[ColorWhite], true)
}

// drawPlan traces the remaining approach by sampling the stepper itself.
func drawPlan(screen *ebiten.Image, cam Camera, plan game.DockPlan) {
	clr := Palette[ColorCyan]
	heading := plan.Start.Angle
	px, py := cam.ToScreen(plan.Start.Pos())
	for i := 1; i <= planSamples; i++ {
		t := plan.T0 + plan.Duration()*float64(i)/planSamples
		pose, _ := game.StepAutoDock(plan, t, heading)
		heading = pose.Angle
		x, y := cam.ToScreen(pose.Pos())
		vector.StrokeLine(screen, px, py, x, y, 1, clr, true)
		px, py = x, y
	}
}

func drawShuttle(screen *ebiten.Image, cam Camera, pose game.Pose, powered bool) {
	nose := game.Vec2{X: pose.X + math.Cos(pose.Angle)*shuttleLength, Y: pose.Y + math.Sin(pose.Angle)*shuttleLength}
	back := pose.Angle + math.Pi
	wingL := game.Vec2{X: pose.X + math.Cos(back-0.5)*shuttleLength*0.7, Y: pose.Y + math.Sin(back-0.5)*shuttleLength*0.7}
	wingR := game.Vec2{X: pose.X + math.Cos(back+0.5)*shuttleLength*0.7, Y: pose.Y + math.Sin(back+0.5)*shuttleLength*0.7}

	clr := Palette[ColorWhite]
	if !powered {
		clr = Palette[ColorLightRed]
	}
	nx, ny := cam.ToScreen(nose)
	lx, ly := cam.ToScreen(wingL)
	rx, ry := cam.ToScreen(wingR)
	vector.StrokeLine(screen, nx, ny, lx, ly, 2, clr, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, clr, true)
	vector.StrokeLine(screen, rx, ry, nx, ny, 2, clr, true)
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
