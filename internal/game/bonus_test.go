package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonusField_MagnetPullsReadyItems(t *testing.T) {
	f := NewBonusField()
	ship := NewShuttle(0, 0)
	var inv Inventory

	f.Spawn(Vec2{50, 0}, Vec2{}, Bonus{Kind: ItemMedKit, Radius: 10})
	picked := f.Tick(0, 16, &ship, &inv)

	assert.Empty(t, picked)
	items := f.Items()
	require.Len(t, items, 1)
	assert.Less(t, items[0].Vel.X, 0.0)
	assert.Less(t, items[0].Pos.X, 50.0)
	assert.Zero(t, items[0].Pos.Y)
}

func TestBonusField_NoMagnetDrifts(t *testing.T) {
	f := NewBonusField()
	ship := NewShuttle(0, 0)
	var inv Inventory

	f.Spawn(Vec2{50, 0}, Vec2{}, Bonus{Kind: ItemMedKit, Radius: 10, NoMagnet: true})
	f.Tick(0, 16, &ship, &inv)

	items := f.Items()
	require.Len(t, items, 1)
	assert.Equal(t, Vec2{50, 0}, items[0].Pos)
	assert.True(t, items[0].Vel.IsZero())
}

func TestBonusField_VelocityDecays(t *testing.T) {
	f := NewBonusField()
	ship := NewShuttle(0, 0)
	var inv Inventory

	f.Spawn(Vec2{500, 500}, Vec2{100, 0}, Bonus{Kind: ItemScanner, NoMagnet: true})
	f.Tick(0, 1000, &ship, &inv)

	it := f.Items()[0]
	want := 100 * math.Exp(-bonusDrag)
	assert.InDelta(t, want, it.Vel.X, 1e-9)
	assert.InDelta(t, 500+want, it.Pos.X, 1e-9)
}

func TestBonusField_PickupLock(t *testing.T) {
	f := NewBonusField()
	ship := NewShuttle(0, 0)
	var inv Inventory

	f.Spawn(Vec2{5, 0}, Vec2{}, Bonus{Kind: ItemCredits, Radius: 10, NotBefore: 2000, NoMagnet: true})

	assert.Empty(t, f.Tick(1999, 16, &ship, &inv))
	assert.Equal(t, 1, f.Len())
	assert.Zero(t, inv.Total())

	picked := f.Tick(2000, 16, &ship, &inv)
	assert.Equal(t, []ItemKind{ItemCredits}, picked)
	assert.Zero(t, f.Len())
	assert.Equal(t, 1, inv.Count(ItemCredits))
}

func TestBonusField_FullHoldLeavesItem(t *testing.T) {
	f := NewBonusField()
	ship := NewShuttle(0, 0)
	var inv Inventory
	for _, k := range rewardPool[:HoldSlots] {
		require.True(t, inv.Add(k))
	}
	extra := rewardPool[HoldSlots]

	f.Spawn(Vec2{}, Vec2{}, Bonus{Kind: extra})
	assert.Empty(t, f.Tick(0, 16, &ship, &inv))
	assert.Equal(t, 1, f.Len())
}

func TestBonusField_Expiry(t *testing.T) {
	f := NewBonusField()
	ship := NewShuttle(0, 0)
	var inv Inventory

	f.Spawn(Vec2{900, 900}, Vec2{}, Bonus{Kind: ItemPowerPack, SpawnedAt: 1000})
	f.Spawn(Vec2{900, 900}, Vec2{}, Bonus{Kind: ItemPowerPack, SpawnedAt: 5000})

	f.Tick(31000, 16, &ship, &inv)
	assert.Equal(t, 2, f.Len())
	f.Tick(31001, 16, &ship, &inv)
	assert.Equal(t, 1, f.Len())
	f.Tick(35001, 16, &ship, &inv)
	assert.Zero(t, f.Len())
}
