package game

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/autodock/internal/world"
)

// Input is a snapshot of held control keys for one frame.
type Input uint8

const (
	KeyThrust Input = 1 << iota
	KeyLeft
	KeyRight
	KeyBrake
)

// Held reports whether every key in k is down.
func (in Input) Held(k Input) bool { return in&k == k }

// Rand is the random source for reward generation. *math/rand/v2.Rand
// satisfies it; tests pass a seeded one.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Sim is the docking sandbox simulation. It owns all gameplay state and is
// stepped once per frame by the host loop.
type Sim struct {
	Tuning     Tuning
	RegionSize float64

	Player        ShipPhysics
	RefuelStation *Station // nil when the region has none
	RewardShip    *Station
	Dock          *DockSession // at most one session at a time

	Bonuses *BonusField
	Hold    Inventory
	Comms   *MessageLog

	Rand     Rand
	Log      zerolog.Logger
	Listener DockListener

	Frames uint64
}

// NewSim creates a simulation from a scenario.
func NewSim(sc *world.Scenario, tuning Tuning, rng Rand) *Sim {
	s := &Sim{
		Tuning:     tuning,
		RegionSize: sc.RegionSize,
		Player:     NewShuttle(sc.SpawnX(), sc.SpawnY()),
		Bonuses:    NewBonusField(),
		Comms:      NewMessageLog(40),
		Rand:       rng,
		Log:        zerolog.Nop(),
	}
	s.Player.Angle = wrapAngle(sc.Heading * math.Pi / 180)
	if sc.Fuel > 0 {
		s.Player.Fuel = s.Player.MaxFuel * sc.Fuel / 100
	}
	if sc.Refuel != nil {
		s.RefuelStation = newStation(StationRefuel, sc, sc.Refuel)
	}
	if sc.Reward != nil {
		s.RewardShip = newStation(StationReward, sc, sc.Reward)
	}

	s.Comms.Add(0, "Nav computer online. Fly within 36 units of a station to auto-dock.", MsgInfo)
	s.Comms.Add(0, "Hold thrust for 2 seconds to abort a dock.", MsgInfo)
	return s
}

func newStation(kind StationKind, sc *world.Scenario, def *world.StationDef) *Station {
	return &Station{
		Kind:   kind,
		Name:   def.Name,
		X:      def.Pos[0],
		Y:      def.Pos[1],
		VX:     def.Drift[0],
		VY:     def.Drift[1],
		Active: true,
		Tile:   sc.StationTile(def),
	}
}

// PlayerTile returns the region the shuttle is currently in.
func (s *Sim) PlayerTile() world.TileCoord {
	return world.TileOf(s.Player.X, s.Player.Y, s.RegionSize)
}

// Tick advances the simulation by one frame. now is the monotonic frame
// clock and dt the frame delta, both in milliseconds.
func (s *Sim) Tick(now, dt float64, in Input) {
	s.Frames++

	if s.Dock == nil {
		s.MaybeBeginRefuelDock(now)
		s.MaybeBeginRewardDock(now)
	} else {
		s.UpdateRefuelDock(now, dt, in)
		s.UpdateRewardDock(now, dt, in)
	}

	if !s.IsDocking() && !s.IsRewardDocking() {
		s.fly(in)
	}

	for _, st := range []*Station{s.RefuelStation, s.RewardShip} {
		if st.locatable() {
			st.Drift()
		}
	}

	for _, kind := range s.Bonuses.Tick(now, dt, &s.Player, &s.Hold) {
		s.Comms.Add(now, fmt.Sprintf("Scooped up %s.", ItemName(kind)), MsgReward)
	}
}

// fly applies manual flight controls and shuttle physics.
func (s *Sim) fly(in Input) {
	p := &s.Player
	switch {
	case in.Held(KeyLeft) && !in.Held(KeyRight):
		p.Turn(-1)
	case in.Held(KeyRight) && !in.Held(KeyLeft):
		p.Turn(1)
	}
	if in.Held(KeyThrust) {
		p.ApplyThrust()
	}
	if in.Held(KeyBrake) {
		p.Brake()
	}
	p.Tick()
}

// DockStatus returns a one-line HUD label for the current session.
func (s *Sim) DockStatus() string {
	d := s.Dock
	if d == nil {
		return "MANUAL"
	}
	label := fmt.Sprintf("AUTO %s: %s", d.Kind, d.PhaseName())
	if d.AbortHoldSince.Set {
		label += " (abort...)"
	}
	return label
}
