package game

import "fmt"

// ---------------------------------------------------------------------------
// Session types
// ---------------------------------------------------------------------------

// DockKind discriminates the two dock protocols.
type DockKind uint8

const (
	DockRefuel DockKind = iota
	DockReward
)

func (k DockKind) String() string {
	switch k {
	case DockRefuel:
		return "refuel"
	case DockReward:
		return "reward"
	default:
		return "unknown"
	}
}

// RefuelPhase is the phase of a refuel dock. Egress runs as the tail of
// whichever phase was active when it began.
type RefuelPhase uint8

const (
	RefuelApproach RefuelPhase = iota
	RefuelDocked
)

// RewardPhase is the phase of a reward dock.
type RewardPhase uint8

const (
	RewardApproach RewardPhase = iota
	RewardDocked
	RewardEject // outbound egress after (or instead of) the payload
	RewardDone
)

// Anchor is an optional frame timestamp.
type Anchor struct {
	At  float64
	Set bool
}

func at(t float64) Anchor { return Anchor{At: t, Set: true} }

// Reached reports whether the anchor is set and now has caught up to it.
func (a Anchor) Reached(now float64) bool { return a.Set && now >= a.At }

// RefuelDock is the refuel-specific part of a session.
type RefuelDock struct {
	Phase    RefuelPhase
	UndockAt Anchor // scheduled once the tank is full
}

// RewardDock is the reward-specific part of a session.
type RewardDock struct {
	Phase      RewardPhase
	EjectAt    Anchor
	FinishedAt Anchor
	Aborted    bool // suppresses the payload
}

// DockSession is one docking episode. Exactly one of Refuel and Reward is
// set, matching Kind.
type DockSession struct {
	Kind      DockKind
	StartedAt float64
	SavedVel  Vec2      // station drift at the moment it was paused
	Plan      *DockPlan // nil once the approach completes

	AbortHoldSince  Anchor
	EgressStartedAt Anchor
	EgressFrom      Vec2

	Refuel *RefuelDock
	Reward *RewardDock

	station   string
	fuelStart float64
	ejected   int
	aborted   bool
}

// PhaseName returns a label for the current phase.
func (d *DockSession) PhaseName() string {
	switch d.Kind {
	case DockRefuel:
		switch {
		case d.EgressStartedAt.Set:
			return "egress"
		case d.Refuel.Phase == RefuelApproach:
			return "approach"
		default:
			return "docked"
		}
	case DockReward:
		switch d.Reward.Phase {
		case RewardApproach:
			return "approach"
		case RewardDocked:
			return "docked"
		case RewardEject:
			return "eject"
		default:
			return "done"
		}
	}
	return "unknown"
}

// forward is the direction the station was drifting before it was paused.
func (d *DockSession) forward() Vec2 {
	if d.SavedVel.IsZero() {
		return Up
	}
	return d.SavedVel.Unit()
}

// abortHeld tracks the continuous thrust hold and reports whether it has
// lasted long enough to cancel the dock. Any release resets the timer.
func (d *DockSession) abortHeld(now float64, in Input, holdMs float64) bool {
	if !in.Held(KeyThrust) {
		d.AbortHoldSince = Anchor{}
		return false
	}
	if !d.AbortHoldSince.Set {
		d.AbortHoldSince = at(now)
	}
	return now-d.AbortHoldSince.At >= holdMs
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// DockOutcome says how a session ended.
type DockOutcome uint8

const (
	DockCompleted DockOutcome = iota
	DockAborted
	DockLost // station vanished mid-session
)

func (o DockOutcome) String() string {
	switch o {
	case DockCompleted:
		return "completed"
	case DockAborted:
		return "aborted"
	case DockLost:
		return "lost"
	default:
		return "unknown"
	}
}

// DockReport summarizes a finished session.
type DockReport struct {
	Kind         DockKind
	Station      string
	Outcome      DockOutcome
	StartedAt    float64
	EndedAt      float64
	FuelAdded    float64
	ItemsEjected int
}

// DurationMs returns the session length in frame milliseconds.
func (r DockReport) DurationMs() float64 { return r.EndedAt - r.StartedAt }

// DockListener is notified whenever a session leaves the dock slot.
type DockListener interface {
	DockEnded(DockReport)
}

// ---------------------------------------------------------------------------
// Shared protocol
// ---------------------------------------------------------------------------

// IsDocking reports whether a refuel dock holds the shuttle.
func (s *Sim) IsDocking() bool {
	d := s.Dock
	if d == nil || d.Kind != DockRefuel {
		return false
	}
	return d.Refuel.Phase == RefuelApproach || d.Refuel.Phase == RefuelDocked
}

// IsRewardDocking reports whether a reward dock holds the shuttle.
func (s *Sim) IsRewardDocking() bool {
	d := s.Dock
	return d != nil && d.Kind == DockReward && d.Reward.Phase != RewardDone
}

// DockStation returns the station held by the active session, or nil.
func (s *Sim) DockStation() *Station {
	switch {
	case s.Dock == nil:
		return nil
	case s.Dock.Kind == DockReward:
		return s.RewardShip
	default:
		return s.RefuelStation
	}
}

// beginDock opens a session against st when every gate passes. Failed gates
// are ordinary "not yet" conditions; apart from a released station's re-arm
// state they change nothing.
func (s *Sim) beginDock(kind DockKind, st *Station, now float64) bool {
	if s.Dock != nil || !st.locatable() || !st.Active {
		return false
	}
	pose := s.Player.Pose()
	if !finite(pose.X) || !finite(pose.Y) || !finite(pose.Angle) {
		return false
	}
	dist2 := st.Pos().Sub(pose.Pos()).Len2()
	if !s.rearmed(st, dist2) {
		return false
	}
	if st.Tile != s.PlayerTile() {
		return false
	}
	r := s.Tuning.Proximity
	if dist2 > r*r {
		return false
	}

	saved := st.Vel()
	st.VX, st.VY = 0, 0
	st.Active = false

	plan := s.Tuning.Plan(pose, st.Pos(), now)
	d := &DockSession{
		Kind:      kind,
		StartedAt: now,
		SavedVel:  saved,
		Plan:      &plan,
		station:   st.Name,
		fuelStart: s.Player.Fuel,
	}
	switch kind {
	case DockRefuel:
		d.Refuel = &RefuelDock{Phase: RefuelApproach}
	case DockReward:
		d.Reward = &RewardDock{Phase: RewardApproach}
	}
	s.Player.Stop()
	s.Dock = d

	s.Log.Debug().
		Stringer("kind", kind).
		Str("station", st.Name).
		Float64("t", now).
		Float64("driftX", saved.X).
		Float64("driftY", saved.Y).
		Msg("dock begin")
	s.Comms.Add(now, fmt.Sprintf("Autopilot engaged. Approaching %s.", st.Name), MsgInfo)
	return true
}

// rearmed advances a released station's hold-off. The station docks again
// once the shuttle has been inside its radius and left, or has gone past
// RearmDistance.
func (s *Sim) rearmed(st *Station, dist2 float64) bool {
	if st.rearm == rearmReady {
		return true
	}
	r, far := s.Tuning.Proximity, s.Tuning.RearmDistance
	switch {
	case dist2 > far*far, st.rearm == rearmInside && dist2 > r*r:
		st.rearm = rearmReady
		s.Log.Debug().Str("station", st.Name).Msg("station re-armed")
		return true
	case dist2 <= r*r:
		st.rearm = rearmInside
	}
	return false
}

// startEgress begins the outbound run from wherever the shuttle is now.
func (s *Sim) startEgress(now float64) {
	d := s.Dock
	d.EgressStartedAt = at(now)
	d.EgressFrom = s.Player.Pos()
	d.AbortHoldSince = Anchor{}
	s.Log.Debug().Stringer("kind", d.Kind).Float64("t", now).Bool("aborted", d.aborted).Msg("egress")
}

// stepEgress eases the shuttle out along the forward direction over durMs.
// Returns true once the run is complete.
func (s *Sim) stepEgress(now, durMs float64) bool {
	d := s.Dock
	p := 1.0
	if durMs > 0 {
		p = clamp01((now - d.EgressStartedAt.At) / durMs)
	}
	pos := d.EgressFrom.Add(d.forward().Scale(s.Tuning.EgressDistance * easeInOut(p)))
	s.Player.X, s.Player.Y = pos.X, pos.Y
	return p >= 1
}

// finishDock restores the station and releases the shuttle.
func (s *Sim) finishDock(now float64, st *Station) {
	d := s.Dock
	st.VX, st.VY = d.SavedVel.X, d.SavedVel.Y
	st.Active = true
	st.rearm = rearmWaiting

	outcome := DockCompleted
	if d.aborted {
		outcome = DockAborted
	}
	s.endDock(now, outcome)

	if outcome == DockAborted {
		s.Comms.Add(now, "Dock aborted. Manual control restored.", MsgWarning)
	} else {
		s.Comms.Add(now, fmt.Sprintf("Clear of %s. Manual control restored.", st.Name), MsgInfo)
	}
}

// loseDock drops a session whose station is gone. Nothing is restored
// since there is nothing left to restore.
func (s *Sim) loseDock(now float64) {
	s.endDock(now, DockLost)
	s.Comms.Add(now, "Dock target lost. Manual control restored.", MsgWarning)
}

func (s *Sim) endDock(now float64, outcome DockOutcome) {
	d := s.Dock
	s.Dock = nil

	rep := DockReport{
		Kind:         d.Kind,
		Station:      d.station,
		Outcome:      outcome,
		StartedAt:    d.StartedAt,
		EndedAt:      now,
		FuelAdded:    s.Player.Fuel - d.fuelStart,
		ItemsEjected: d.ejected,
	}
	lvl := s.Log.Debug()
	if outcome == DockLost {
		lvl = s.Log.Warn()
	}
	lvl.Stringer("kind", rep.Kind).
		Str("station", rep.Station).
		Stringer("outcome", outcome).
		Float64("durationMs", rep.DurationMs()).
		Msg("dock end")

	if s.Listener != nil {
		s.Listener.DockEnded(rep)
	}
}
