package game

import (
	"math"

	"github.com/spacehole-rogue/autodock/internal/world"
)

// Shuttle physics constants.
// At 60 TPS: full speed ~150 units/sec, ~1.5 sec to spin a full turn.
const (
	ShuttleAccel    = 0.08  // thrust per frame
	ShuttleMaxSpeed = 2.5   // units per frame
	ShuttleDrag     = 0.985 // velocity multiplier per frame
	ShuttleTurnRate = 0.07  // radians per frame
	ShuttleBurn     = 0.02  // fuel per thrusting frame
	ShuttleMaxFuel  = 100
)

// ShipPhysics tracks the player shuttle: pose, velocity and fuel tank.
type ShipPhysics struct {
	X, Y   float64
	VX, VY float64 // units per frame
	Angle  float64 // heading in radians, 0 = +X

	Fuel    float64
	MaxFuel float64

	Accel    float64
	MaxSpeed float64
	Drag     float64

	thrusting bool
}

// NewShuttle creates a shuttle at (x, y) with a full tank.
func NewShuttle(x, y float64) ShipPhysics {
	return ShipPhysics{
		X: x, Y: y,
		Angle:    -math.Pi / 2,
		Fuel:     ShuttleMaxFuel,
		MaxFuel:  ShuttleMaxFuel,
		Accel:    ShuttleAccel,
		MaxSpeed: ShuttleMaxSpeed,
		Drag:     ShuttleDrag,
	}
}

// Pose returns the shuttle's position and heading.
func (p *ShipPhysics) Pose() Pose { return Pose{X: p.X, Y: p.Y, Angle: p.Angle} }

// SetPose moves the shuttle without touching velocity.
func (p *ShipPhysics) SetPose(pose Pose) {
	p.X, p.Y, p.Angle = pose.X, pose.Y, pose.Angle
}

// Pos returns the shuttle position.
func (p *ShipPhysics) Pos() Vec2 { return Vec2{p.X, p.Y} }

// Speed returns the current velocity magnitude.
func (p *ShipPhysics) Speed() float64 { return math.Hypot(p.VX, p.VY) }

// FuelPct returns fuel as 0-100.
func (p *ShipPhysics) FuelPct() int {
	if p.MaxFuel <= 0 {
		return 0
	}
	return int(p.Fuel / p.MaxFuel * 100)
}

// Turn rotates the heading; dir is -1, 0 or 1.
func (p *ShipPhysics) Turn(dir int) {
	p.Angle = wrapAngle(p.Angle + float64(dir)*ShuttleTurnRate)
}

// ApplyThrust pushes along the heading. A dry tank does nothing.
func (p *ShipPhysics) ApplyThrust() {
	if p.Fuel <= 0 {
		return
	}
	p.VX += math.Cos(p.Angle) * p.Accel
	p.VY += math.Sin(p.Angle) * p.Accel
	p.thrusting = true
}

// Brake bleeds velocity faster than drag alone.
func (p *ShipPhysics) Brake() {
	p.VX *= 0.9
	p.VY *= 0.9
}

// Stop zeroes velocity; the autopilot owns the pose while docked.
func (p *ShipPhysics) Stop() {
	p.VX, p.VY = 0, 0
	p.thrusting = false
}

// Tick advances one frame: burn fuel, drag, cap speed, move.
func (p *ShipPhysics) Tick() {
	if p.thrusting {
		p.Fuel = math.Max(0, p.Fuel-ShuttleBurn)
		p.thrusting = false
	}

	p.VX *= p.Drag
	p.VY *= p.Drag

	if speed := p.Speed(); speed > p.MaxSpeed {
		scale := p.MaxSpeed / speed
		p.VX *= scale
		p.VY *= scale
	}

	p.X += p.VX
	p.Y += p.VY

	// Kill near-zero velocity
	if math.Abs(p.VX) < 0.001 {
		p.VX = 0
	}
	if math.Abs(p.VY) < 0.001 {
		p.VY = 0
	}
}

// StationKind identifies which dock protocol a station speaks.
type StationKind uint8

const (
	StationRefuel StationKind = iota
	StationReward
)

// rearmState is a released station's hold-off against docking the same
// idle shuttle again.
type rearmState uint8

const (
	rearmReady   rearmState = iota
	rearmWaiting            // released; shuttle not yet back inside the radius
	rearmInside             // shuttle inside the radius since release
)

// Station is a dockable object drifting through a region of the system.
// While docked its drift is paused and Active is false.
type Station struct {
	Kind   StationKind
	Name   string
	X, Y   float64
	VX, VY float64 // drift, units per frame
	Active bool
	Tile   world.TileCoord

	rearm rearmState
}

// Armed reports whether the station may start a new dock.
func (s *Station) Armed() bool { return s.Active && s.rearm == rearmReady }

// Pos returns the station center.
func (s *Station) Pos() Vec2 { return Vec2{s.X, s.Y} }

// Vel returns the current drift.
func (s *Station) Vel() Vec2 { return Vec2{s.VX, s.VY} }

// Drift advances the station by one frame of velocity.
func (s *Station) Drift() {
	s.X += s.VX
	s.Y += s.VY
}

// locatable reports whether the station still has a usable position.
func (s *Station) locatable() bool {
	return s != nil && finite(s.X) && finite(s.Y)
}

// StationKindName returns a label for a station kind.
func StationKindName(k StationKind) string {
	switch k {
	case StationRefuel:
		return "Refuel Station"
	case StationReward:
		return "Reward Ship"
	default:
		return "Unknown"
	}
}
