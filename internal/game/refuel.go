package game

// fuelTolerance absorbs float drift when deciding the tank is full.
const fuelTolerance = 1e-6

// MaybeBeginRefuelDock starts a refuel dock if the shuttle is close enough
// to an active refuel station in its region.
func (s *Sim) MaybeBeginRefuelDock(now float64) bool {
	return s.beginDock(DockRefuel, s.RefuelStation, now)
}

// UpdateRefuelDock advances an active refuel dock by one frame.
// dt is the frame delta in milliseconds.
func (s *Sim) UpdateRefuelDock(now, dt float64, in Input) {
	d := s.Dock
	if d == nil || d.Kind != DockRefuel {
		return
	}
	st := s.RefuelStation
	if !st.locatable() {
		s.loseDock(now)
		return
	}
	r := d.Refuel

	// Abort is decided first so this frame already moves outbound.
	if !d.EgressStartedAt.Set && d.abortHeld(now, in, s.Tuning.AbortHoldMs) {
		d.aborted = true
		s.startEgress(now)
	}

	if !d.EgressStartedAt.Set {
		switch r.Phase {
		case RefuelApproach:
			s.stepApproach(now)
			if d.Plan == nil {
				r.Phase = RefuelDocked
				s.Log.Debug().Float64("t", now).Msg("dock docked")
				s.Comms.Add(now, "Docking clamps engaged. Fuel transfer started.", MsgInfo)
			}
		case RefuelDocked:
			s.transferFuel(now, dt)
			if r.UndockAt.Reached(now) {
				s.startEgress(now)
			}
		}
	}

	if d.EgressStartedAt.Set && s.stepEgress(now, s.Tuning.EgressMs) {
		s.finishDock(now, st)
	}
}

// stepApproach writes the planned pose onto the shuttle. When the plan
// completes it is dropped and the abort hold starts over.
func (s *Sim) stepApproach(now float64) {
	d := s.Dock
	if d.Plan == nil {
		return
	}
	pose, done := StepAutoDock(*d.Plan, now, s.Player.Angle)
	s.Player.SetPose(pose)
	if done {
		d.Plan = nil
		d.AbortHoldSince = Anchor{}
	}
}

// transferFuel fills the tank at a fixed rate: empty to full takes
// RefuelFillMs no matter the starting level.
func (s *Sim) transferFuel(now, dt float64) {
	d, p := s.Dock, &s.Player
	rate := p.MaxFuel / s.Tuning.RefuelFillMs
	p.Fuel = min(max(p.Fuel+rate*dt, 0), p.MaxFuel)

	if p.Fuel >= p.MaxFuel-fuelTolerance && !d.Refuel.UndockAt.Set && !d.EgressStartedAt.Set {
		d.Refuel.UndockAt = at(now + s.Tuning.UndockDelayMs)
		s.Log.Debug().Float64("t", now).Float64("undockAt", d.Refuel.UndockAt.At).Msg("undock scheduled")
		s.Comms.Add(now, "Tank full. Releasing clamps.", MsgInfo)
	}
}
