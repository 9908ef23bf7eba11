package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
)

// Bonus field tuning. Velocities are units per second.
const (
	bonusDrag         = 1.6   // velocity decay rate per second
	bonusMagnetRadius = 90.0  // ambient pull reaches this far
	bonusMagnetAccel  = 600.0 // units/sec² toward the shuttle
	bonusPickupRadius = 14.0  // shuttle hull radius for pickups
	bonusLifetimeMs   = 30000
)

// Position is a bonus item's world position.
type Position struct {
	X, Y float64
}

// Velocity is a bonus item's velocity in units per second.
type Velocity struct {
	X, Y float64
}

// Bonus marks an entity as a collectible item.
type Bonus struct {
	Kind      ItemKind
	Radius    float64
	SpawnedAt float64
	NotBefore float64 // uncollectible until this frame time
	NoMagnet  bool    // exempt from the ambient pull toward the shuttle
}

// BonusItem is a read-only snapshot of one item in the field.
type BonusItem struct {
	Kind      ItemKind
	Pos       Vec2
	Vel       Vec2
	Radius    float64
	NotBefore float64
	NoMagnet  bool
}

// BonusField is the general collection of loose items floating in space.
// Items live as ECS entities; the dock subsystem only ever spawns into it.
type BonusField struct {
	world  *ecs.World
	spawn  *ecs.Map3[Position, Velocity, Bonus]
	filter *ecs.Filter3[Position, Velocity, Bonus]
	dead   []ecs.Entity
}

// NewBonusField creates an empty item field.
func NewBonusField() *BonusField {
	w := ecs.NewWorld(64)
	return &BonusField{
		world:  w,
		spawn:  ecs.NewMap3[Position, Velocity, Bonus](w),
		filter: ecs.NewFilter3[Position, Velocity, Bonus](w),
	}
}

// Spawn adds one item and returns its entity.
func (f *BonusField) Spawn(pos, vel Vec2, b Bonus) ecs.Entity {
	return f.spawn.NewEntity(
		&Position{X: pos.X, Y: pos.Y},
		&Velocity{X: vel.X, Y: vel.Y},
		&b,
	)
}

// Len returns the number of items in the field.
func (f *BonusField) Len() int {
	n := 0
	q := f.filter.Query()
	for q.Next() {
		n++
	}
	return n
}

// Items returns a snapshot of every item in the field.
func (f *BonusField) Items() []BonusItem {
	var out []BonusItem
	q := f.filter.Query()
	for q.Next() {
		pos, vel, b := q.Get()
		out = append(out, BonusItem{
			Kind:      b.Kind,
			Pos:       Vec2{pos.X, pos.Y},
			Vel:       Vec2{vel.X, vel.Y},
			Radius:    b.Radius,
			NotBefore: b.NotBefore,
			NoMagnet:  b.NoMagnet,
		})
	}
	return out
}

// Tick moves every item by dt milliseconds, pulls magnetic items toward
// the shuttle and scoops touching ones into inv. Returns what was picked up.
func (f *BonusField) Tick(now, dt float64, ship *ShipPhysics, inv *Inventory) []ItemKind {
	secs := dt / 1000
	decay := math.Exp(-bonusDrag * secs)
	var picked []ItemKind

	q := f.filter.Query()
	for q.Next() {
		pos, vel, b := q.Get()

		if now-b.SpawnedAt > bonusLifetimeMs {
			f.dead = append(f.dead, q.Entity())
			continue
		}

		dx, dy := ship.X-pos.X, ship.Y-pos.Y
		dist := math.Hypot(dx, dy)
		ready := now >= b.NotBefore

		if ready && !b.NoMagnet && dist > 0 && dist < bonusMagnetRadius {
			vel.X += dx / dist * bonusMagnetAccel * secs
			vel.Y += dy / dist * bonusMagnetAccel * secs
		}

		vel.X *= decay
		vel.Y *= decay
		pos.X += vel.X * secs
		pos.Y += vel.Y * secs

		if ready && math.Hypot(ship.X-pos.X, ship.Y-pos.Y) <= b.Radius+bonusPickupRadius {
			if inv.Add(b.Kind) {
				picked = append(picked, b.Kind)
				f.dead = append(f.dead, q.Entity())
			}
		}
	}

	// Entities can't be removed while the query holds the world lock.
	for _, e := range f.dead {
		f.world.RemoveEntity(e)
	}
	f.dead = f.dead[:0]
	return picked
}
