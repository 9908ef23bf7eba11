package game

import (
	"bytes"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/autodock/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSim_FromScenario(t *testing.T) {
	tile := world.TileCoord{X: 1, Y: 0}
	sc := &world.Scenario{
		RegionSize: 480,
		Spawn:      [2]float64{10, 20},
		Heading:    90,
		Fuel:       25,
		Refuel:     &world.StationDef{Name: "Depot", Pos: [2]float64{30, 40}, Drift: [2]float64{1, 0}},
		Reward:     &world.StationDef{Name: "Courier", Pos: [2]float64{50, 60}, Tile: &tile},
	}
	s := NewSim(sc, DefaultTuning(), rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, Vec2{10, 20}, s.Player.Pos())
	assert.InDelta(t, math.Pi/2, s.Player.Angle, 1e-12)
	assert.InDelta(t, 25, s.Player.Fuel, 1e-12)

	require.NotNil(t, s.RefuelStation)
	assert.Equal(t, StationRefuel, s.RefuelStation.Kind)
	assert.True(t, s.RefuelStation.Active)
	assert.Equal(t, Vec2{1, 0}, s.RefuelStation.Vel())
	assert.Equal(t, world.TileCoord{}, s.RefuelStation.Tile)

	require.NotNil(t, s.RewardShip)
	assert.Equal(t, tile, s.RewardShip.Tile)
	assert.Nil(t, s.Dock)
	assert.Equal(t, "MANUAL", s.DockStatus())
	assert.NotEmpty(t, s.Comms.Messages)
}

func TestNewSim_NoStations(t *testing.T) {
	s := NewSim(&world.Scenario{RegionSize: 480}, DefaultTuning(), rand.New(rand.NewPCG(1, 1)))
	assert.Nil(t, s.RefuelStation)
	assert.Nil(t, s.RewardShip)
	assert.Equal(t, s.Player.MaxFuel, s.Player.Fuel)

	for i := 1; i <= 10; i++ {
		s.Tick(float64(i)*10, 10, KeyThrust)
	}
	assert.Nil(t, s.Dock)
	assert.Equal(t, uint64(10), s.Frames)
}

func TestSim_ManualFlight(t *testing.T) {
	s, _ := newDockSim(t)
	s.Player.X = 600
	s.Player.Angle = 0

	for i := 1; i <= 20; i++ {
		s.Tick(float64(i)*10, 10, KeyThrust)
	}
	assert.Nil(t, s.Dock)
	assert.Greater(t, s.Player.VX, 0.0)
	assert.Greater(t, s.Player.X, 600.0)
	assert.Less(t, s.Player.Fuel, s.Player.MaxFuel)

	angle := s.Player.Angle
	s.Tick(210, 10, KeyLeft)
	assert.InDelta(t, angle-ShuttleTurnRate, s.Player.Angle, 1e-12)
}

func TestSim_TickRunsRefuelSession(t *testing.T) {
	s, sink := newDockSim(t)
	var buf bytes.Buffer
	s.Log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	s.Tick(0, 10, 0)
	require.NotNil(t, s.Dock)
	assert.Equal(t, DockRefuel, s.Dock.Kind)
	reward := s.RewardShip.Pos()

	// Flight input is ignored while the autopilot has the helm.
	var now float64
	for now = 10; s.Dock != nil && now < 20000; now += 10 {
		s.Tick(now, 10, KeyRight)
	}
	assert.Equal(t, 2120.0, now, "session ended on the 2110ms frame")

	require.Len(t, sink.reports, 1)
	assert.Equal(t, DockCompleted, sink.reports[0].Outcome)
	assert.True(t, s.RefuelStation.Active)
	assert.Greater(t, s.RewardShip.Y, reward.Y, "other stations keep drifting")

	out := buf.String()
	for _, msg := range []string{"dock begin", "dock docked", "undock scheduled", "egress", "dock end"} {
		assert.Contains(t, out, `"message":"`+msg+`"`)
	}
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestSim_RewardCargoCanBeScooped(t *testing.T) {
	s, _ := newRewardSim(t)
	s.RewardShip.VX, s.RewardShip.VY = 0, 0
	s.RefuelStation = nil

	var now float64
	for now = 0; now <= 2050; now += 10 {
		s.Tick(now, 10, 0)
	}
	require.Nil(t, s.Dock)
	require.Equal(t, 3, s.Bonuses.Len())

	// Park on the cargo once the lock expires.
	item := s.Bonuses.Items()[0]
	s.Player.X, s.Player.Y = item.Pos.X, item.Pos.Y
	s.Player.Stop()
	s.Tick(3460, 10, 0)

	assert.GreaterOrEqual(t, s.Hold.Total(), 1)
	last := s.Comms.Recent(1)[0]
	assert.Equal(t, MsgReward, last.Priority)
	assert.Contains(t, last.Text, "Scooped up")
}

func TestStationKindName(t *testing.T) {
	assert.Equal(t, "Refuel Station", StationKindName(StationRefuel))
	assert.Equal(t, "Reward Ship", StationKindName(StationReward))
	assert.Equal(t, "Unknown", StationKindName(StationKind(9)))
}
