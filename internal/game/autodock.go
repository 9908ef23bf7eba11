package game

import "math"

// Tuning holds every docking tunable. Durations are in milliseconds,
// distances in world units.
type Tuning struct {
	ArcRadius float64 // sideways bank of the approach curve
	ArcMs     float64 // curved approach duration
	SettleMs  float64 // final glide onto the pad
	RotClamp  float64 // max heading change per step (radians)

	Proximity      float64 // begin radius around a station
	RearmDistance  float64 // shuttle range that re-arms a released station; 0 disables the hold-off
	EgressDistance float64 // how far egress carries the shuttle
	EgressMs       float64
	AbortHoldMs    float64 // continuous thrust needed to cancel a dock

	RefuelFillMs  float64 // empty-to-full transfer time
	UndockDelayMs float64 // dwell after the tank is full

	EjectDelayMs float64 // dwell before the reward payload fires
	EjectOffset  float64 // spawn distance behind the reward ship
	EjectLockMs  float64 // items can't be collected before this
	BonusRadius  float64
}

// DefaultTuning returns the stock docking constants.
func DefaultTuning() Tuning {
	return Tuning{
		ArcRadius: 56,
		ArcMs:     800,
		SettleMs:  400,
		RotClamp:  0.06,

		Proximity:      36,
		RearmDistance:  108,
		EgressDistance: 64,
		EgressMs:       600,
		AbortHoldMs:    2000,

		RefuelFillMs:  10000,
		UndockDelayMs: 300,

		EjectDelayMs: 250,
		EjectOffset:  24,
		EjectLockMs:  2000,
		BonusRadius:  10,
	}
}

// ejectMinEgressMs is the floor on the post-eject egress window.
const ejectMinEgressMs = 150

// DockPlan is the immutable approach curve computed when a dock begins.
// Re-planning replaces the whole value.
type DockPlan struct {
	Start    Pose
	Target   Vec2
	T0       float64
	ArcMs    float64
	SettleMs float64
	C1       Vec2 // Bézier control point, banked off to one side
	Mid      Vec2 // arc end / settle start, short of the target
	RotClamp float64
}

// PlanAutoDock builds an approach plan with the default tuning.
func PlanAutoDock(start Pose, target Vec2, now float64) DockPlan {
	return DefaultTuning().Plan(start, target, now)
}

// Plan builds an approach curve from start to target beginning at now.
func (t Tuning) Plan(start Pose, target Vec2, now float64) DockPlan {
	u := target.Sub(start.Pos()).Unit()
	side := Vec2{-u.Y, u.X}
	return DockPlan{
		Start:    start,
		Target:   target,
		T0:       now,
		ArcMs:    t.ArcMs,
		SettleMs: t.SettleMs,
		C1:       target.Add(side.Scale(t.ArcRadius)),
		Mid:      target.Sub(u.Scale(t.ArcRadius)),
		RotClamp: t.RotClamp,
	}
}

// Duration returns the total approach time.
func (p DockPlan) Duration() float64 { return p.ArcMs + p.SettleMs }

// StepAutoDock evaluates the plan at now. heading is the pose angle from the
// previous step; the returned angle never differs from it by more than
// RotClamp. done turns true once the shuttle has settled on the target.
func StepAutoDock(p DockPlan, now, heading float64) (Pose, bool) {
	dt := now - p.T0

	if dt < p.ArcMs {
		u := easeInOut(clamp01(dt / p.ArcMs))
		a, b, c := (1-u)*(1-u), 2*(1-u)*u, u*u
		pos := Vec2{
			X: a*p.Start.X + b*p.C1.X + c*p.Mid.X,
			Y: a*p.Start.Y + b*p.C1.Y + c*p.Mid.Y,
		}
		tan := p.C1.Sub(p.Start.Pos()).Scale(1 - u).Add(p.Mid.Sub(p.C1).Scale(u))
		angle := heading
		if !tan.IsZero() {
			angle = turnToward(heading, math.Atan2(tan.Y, tan.X), p.RotClamp)
		}
		return Pose{X: pos.X, Y: pos.Y, Angle: angle}, false
	}

	s := 1.0
	if p.SettleMs > 0 {
		s = clamp01((dt - p.ArcMs) / p.SettleMs)
	}
	e := easeInOut(s)
	pos := p.Mid.Add(p.Target.Sub(p.Mid).Scale(e))

	// Nose stays on the mid→target approach line while gliding in.
	line := pos.Sub(p.Mid)
	if line.IsZero() {
		line = p.Target.Sub(p.Mid)
	}
	angle := heading
	if !line.IsZero() {
		angle = turnToward(heading, math.Atan2(line.Y, line.X), p.RotClamp)
	}
	return Pose{X: pos.X, Y: pos.Y, Angle: angle}, s >= 1
}
