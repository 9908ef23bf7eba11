package game

import (
	"fmt"
	"math"
)

// Reward payload: three items fanned out behind the reward ship.
var (
	ejectSpread = [3]float64{-15 * math.Pi / 180, 0, 15 * math.Pi / 180}
	ejectSpeed  = [3]struct{ base, jitter float64 }{
		{320, 100},
		{360, 60},
		{320, 100},
	}
)

// MaybeBeginRewardDock starts a reward dock if the shuttle is close enough
// to an active reward ship in its region.
func (s *Sim) MaybeBeginRewardDock(now float64) bool {
	return s.beginDock(DockReward, s.RewardShip, now)
}

// UpdateRewardDock advances an active reward dock by one frame.
func (s *Sim) UpdateRewardDock(now, dt float64, in Input) {
	d := s.Dock
	if d == nil || d.Kind != DockReward {
		return
	}
	st := s.RewardShip
	if !st.locatable() {
		s.loseDock(now)
		return
	}
	r := d.Reward

	if (r.Phase == RewardApproach || r.Phase == RewardDocked) && d.abortHeld(now, in, s.Tuning.AbortHoldMs) {
		r.Aborted = true
		d.aborted = true
		s.startRewardEgress(now)
	}

	switch r.Phase {
	case RewardApproach:
		s.stepApproach(now)
		if d.Plan == nil {
			r.Phase = RewardDocked
			if !r.Aborted {
				r.EjectAt = at(now + s.Tuning.EjectDelayMs)
			}
			s.Log.Debug().Float64("t", now).Float64("ejectAt", r.EjectAt.At).Msg("dock docked")
			s.Comms.Add(now, fmt.Sprintf("Mated with %s. Stand by for cargo.", st.Name), MsgInfo)
		}
	case RewardDocked:
		if !r.Aborted && r.EjectAt.Reached(now) {
			s.ejectRewards(now, st)
			s.startRewardEgress(now)
		}
	}

	if r.Phase == RewardEject {
		s.stepEgress(now, r.FinishedAt.At-d.EgressStartedAt.At)
		if r.FinishedAt.Reached(now) {
			r.Phase = RewardDone
			s.finishDock(now, st)
		}
	}
}

// startRewardEgress moves the session into its outbound eject phase.
func (s *Sim) startRewardEgress(now float64) {
	r := s.Dock.Reward
	r.Phase = RewardEject
	r.FinishedAt = at(now + max(ejectMinEgressMs, s.Tuning.EgressMs))
	s.startEgress(now)
}

// ejectRewards spawns the payload behind the reward ship: three items on
// a ±15° fan, each of a random kind and locked against pickup for a while.
func (s *Sim) ejectRewards(now float64, st *Station) {
	d := s.Dock
	behind := Up
	if !d.SavedVel.IsZero() {
		behind = d.SavedVel.Unit().Scale(-1)
	}
	base := st.Pos().Add(behind.Scale(s.Tuning.EjectOffset))
	heading := math.Atan2(behind.Y, behind.X)

	var speeds [3]float64
	for i, sp := range ejectSpeed {
		speeds[i] = sp.base + s.Rand.Float64()*sp.jitter
	}

	for i, off := range ejectSpread {
		a := heading + off
		kind := rewardPool[s.Rand.IntN(len(rewardPool))]
		s.Bonuses.Spawn(base, Vec2{math.Cos(a) * speeds[i], math.Sin(a) * speeds[i]}, Bonus{
			Kind:      kind,
			Radius:    s.Tuning.BonusRadius,
			SpawnedAt: now,
			NotBefore: now + s.Tuning.EjectLockMs,
			NoMagnet:  true,
		})
		d.ejected++
	}

	s.Log.Debug().Float64("t", now).Int("items", len(ejectSpread)).Msg("reward ejected")
	s.Comms.Add(now, fmt.Sprintf("%s jettisoned %d crates.", st.Name, len(ejectSpread)), MsgReward)
}
