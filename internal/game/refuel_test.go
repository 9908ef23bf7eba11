package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefuelDock_FullSession(t *testing.T) {
	s, sink := newDockSim(t)
	s.Player.Fuel = 0

	require.True(t, s.MaybeBeginRefuelDock(0))
	update := func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) }

	run(0, 1190, 10, update)
	require.NotNil(t, s.Dock)
	assert.Equal(t, RefuelApproach, s.Dock.Refuel.Phase)
	assert.Zero(t, s.Player.Fuel, "no fuel moves during approach")

	run(1190, 1200, 10, update)
	d := s.Dock
	assert.Equal(t, RefuelDocked, d.Refuel.Phase)
	assert.Nil(t, d.Plan)
	assert.InDelta(t, 200, s.Player.X, 1e-9)
	assert.InDelta(t, 200, s.Player.Y, 1e-9)

	run(1200, 11190, 10, update)
	assert.False(t, d.Refuel.UndockAt.Set)
	assert.Less(t, s.Player.Fuel, s.Player.MaxFuel)

	run(11190, 11200, 10, update)
	assert.InDelta(t, 100, s.Player.Fuel, 1e-6)
	require.True(t, d.Refuel.UndockAt.Set)
	assert.Equal(t, 11500.0, d.Refuel.UndockAt.At)
	assert.True(t, s.IsDocking())

	run(11200, 11490, 10, update)
	assert.False(t, d.EgressStartedAt.Set)

	run(11490, 11500, 10, update)
	require.True(t, d.EgressStartedAt.Set)
	assert.Equal(t, "egress", d.PhaseName())
	assert.True(t, s.IsDocking(), "egress still holds the shuttle")

	run(11500, 12090, 10, update)
	require.NotNil(t, s.Dock)
	assert.Empty(t, sink.reports)

	run(12090, 12100, 10, update)
	assert.Nil(t, s.Dock)
	assert.False(t, s.IsDocking())

	st := s.RefuelStation
	assert.Equal(t, Vec2{0.5, 0}, st.Vel())
	assert.True(t, st.Active)
	assert.InDelta(t, 264, s.Player.X, 1e-9)
	assert.InDelta(t, 200, s.Player.Y, 1e-9)

	require.Len(t, sink.reports, 1)
	rep := sink.reports[0]
	assert.Equal(t, DockRefuel, rep.Kind)
	assert.Equal(t, "Depot", rep.Station)
	assert.Equal(t, DockCompleted, rep.Outcome)
	assert.Equal(t, 12100.0, rep.DurationMs())
	assert.InDelta(t, 100, rep.FuelAdded, 1e-6)
}

func TestRefuelDock_FillRateIsFixed(t *testing.T) {
	s, _ := newDockSim(t)
	s.Player.Fuel = 50

	require.True(t, s.MaybeBeginRefuelDock(0))
	run(0, 6190, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	assert.False(t, s.Dock.Refuel.UndockAt.Set)

	// Half a tank takes half of the fill time.
	run(6190, 6200, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	assert.InDelta(t, 100, s.Player.Fuel, 1e-6)
	assert.Equal(t, 6500.0, s.Dock.Refuel.UndockAt.At)
}

func TestRefuelDock_FullTankUndocksQuickly(t *testing.T) {
	s, sink := newDockSim(t)

	require.True(t, s.MaybeBeginRefuelDock(0))
	run(0, 1210, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	assert.Equal(t, 1510.0, s.Dock.Refuel.UndockAt.At)
	assert.Equal(t, s.Player.MaxFuel, s.Player.Fuel)

	run(1210, 2110, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	assert.Nil(t, s.Dock)
	require.Len(t, sink.reports, 1)
	assert.Zero(t, sink.reports[0].FuelAdded)
}

func TestRefuelDock_AbortNeedsContinuousHold(t *testing.T) {
	s, sink := newDockSim(t)
	s.Player.Fuel = 0

	require.True(t, s.MaybeBeginRefuelDock(0))
	run(0, 1200, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	d := s.Dock
	require.Equal(t, RefuelDocked, d.Refuel.Phase)

	s.UpdateRefuelDock(2000, 1, KeyThrust)
	s.UpdateRefuelDock(3999, 1, KeyThrust)
	assert.False(t, d.EgressStartedAt.Set, "1999ms is not enough")
	assert.Equal(t, "docked (abort...)", trimAuto(s.DockStatus()))

	s.UpdateRefuelDock(4000, 1, 0)
	assert.False(t, d.AbortHoldSince.Set, "release resets the hold")

	s.UpdateRefuelDock(4001, 1, KeyThrust|KeyLeft)
	s.UpdateRefuelDock(6000, 1, KeyThrust)
	assert.False(t, d.EgressStartedAt.Set)

	pos := s.Player.Pos()
	s.UpdateRefuelDock(6001, 1, KeyThrust)
	require.True(t, d.EgressStartedAt.Set)
	assert.Equal(t, 6001.0, d.EgressStartedAt.At)
	assert.Equal(t, pos, d.EgressFrom)
	assert.Equal(t, pos, s.Player.Pos(), "egress starts where the shuttle sits")
	assert.False(t, d.Refuel.UndockAt.Set)

	fuel := s.Player.Fuel
	run(6001, 6601, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, KeyThrust) })
	assert.Equal(t, fuel, s.Player.Fuel, "no fuel moves during egress")
	assert.Nil(t, s.Dock)

	st := s.RefuelStation
	assert.Equal(t, Vec2{0.5, 0}, st.Vel())
	assert.True(t, st.Active)
	assert.InDelta(t, pos.X+64, s.Player.X, 1e-9)

	require.Len(t, sink.reports, 1)
	assert.Equal(t, DockAborted, sink.reports[0].Outcome)
	assert.Greater(t, sink.reports[0].FuelAdded, 0.0)
}

func TestRefuelDock_AbortDuringApproach(t *testing.T) {
	s, sink := newDockSim(t)
	s.Tuning.ArcMs = 5000

	require.True(t, s.MaybeBeginRefuelDock(0))
	run(0, 2000, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, KeyThrust) })
	require.NotNil(t, s.Dock)
	assert.False(t, s.Dock.EgressStartedAt.Set)

	run(2000, 2010, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, KeyThrust) })
	d := s.Dock
	require.NotNil(t, d)
	require.True(t, d.EgressStartedAt.Set)
	assert.Equal(t, RefuelApproach, d.Refuel.Phase)
	assert.NotNil(t, d.Plan, "approach plan is abandoned, not finished")
	from := d.EgressFrom

	run(2010, 2610, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	assert.Nil(t, s.Dock)
	assert.InDelta(t, from.X+64, s.Player.X, 1e-9)
	assert.InDelta(t, from.Y, s.Player.Y, 1e-9)

	require.Len(t, sink.reports, 1)
	assert.Equal(t, DockAborted, sink.reports[0].Outcome)
	assert.True(t, s.RefuelStation.Active)
}

func TestRefuelDock_HoldResetsWhenApproachCompletes(t *testing.T) {
	s, _ := newDockSim(t)
	s.Player.Fuel = 0

	require.True(t, s.MaybeBeginRefuelDock(0))
	run(0, 1190, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
	run(1190, 1200, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, KeyThrust) })
	d := s.Dock
	assert.Equal(t, RefuelDocked, d.Refuel.Phase)
	assert.False(t, d.AbortHoldSince.Set)

	run(1200, 3200, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, KeyThrust) })
	assert.False(t, d.EgressStartedAt.Set)
	run(3200, 3210, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, KeyThrust) })
	assert.True(t, d.EgressStartedAt.Set)
}

func TestRefuelDock_StationLost(t *testing.T) {
	tests := []struct {
		name string
		lose func(s *Sim)
	}{
		{"removed", func(s *Sim) { s.RefuelStation = nil }},
		{"position gone", func(s *Sim) { s.RefuelStation.X = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sink := newDockSim(t)
			require.True(t, s.MaybeBeginRefuelDock(0))
			run(0, 1500, 10, func(now, dt float64) { s.UpdateRefuelDock(now, dt, 0) })
			st := s.RefuelStation

			tt.lose(s)
			s.UpdateRefuelDock(1510, 10, 0)

			assert.Nil(t, s.Dock)
			assert.False(t, s.IsDocking())
			require.Len(t, sink.reports, 1)
			assert.Equal(t, DockLost, sink.reports[0].Outcome)
			assert.Equal(t, 1510.0, sink.reports[0].EndedAt)
			// Nothing is restored onto a station that is gone.
			assert.Zero(t, st.VX)
			assert.False(t, st.Active)
		})
	}
}

func TestRefuelDock_IgnoresRewardSession(t *testing.T) {
	s, _ := newDockSim(t)
	s.Player.X = 990
	require.True(t, s.MaybeBeginRewardDock(0))
	before := *s.Dock.Reward

	s.UpdateRefuelDock(10, 10, KeyThrust)
	assert.Equal(t, before, *s.Dock.Reward)
	assert.False(t, s.Dock.AbortHoldSince.Set)
	assert.False(t, s.IsDocking())
}

func TestRefuelDock_NoSessionIsNoop(t *testing.T) {
	s, sink := newDockSim(t)
	pose := s.Player.Pose()
	s.UpdateRefuelDock(10, 10, KeyThrust)
	s.UpdateRewardDock(10, 10, KeyThrust)
	assert.Equal(t, pose, s.Player.Pose())
	assert.Empty(t, sink.reports)
}

func trimAuto(status string) string {
	const prefix = "AUTO refuel: "
	if len(status) > len(prefix) && status[:len(prefix)] == prefix {
		return status[len(prefix):]
	}
	return status
}
