package game

// ItemKind identifies a collectible bonus item.
// Reward ships eject these; the shuttle scoops them into its hold.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemFuelCells
	ItemSpareParts
	ItemPowerPack
	ItemRationPack
	ItemMedKit
	ItemShieldCell
	ItemScanner
	ItemCredits
	ItemKindCount // sentinel
)

// rewardPool is the fixed enumeration reward ejections draw from.
var rewardPool = [...]ItemKind{
	ItemFuelCells,
	ItemSpareParts,
	ItemPowerPack,
	ItemRationPack,
	ItemMedKit,
	ItemShieldCell,
	ItemScanner,
	ItemCredits,
}

var itemNames = [ItemKindCount]string{
	ItemNone:       "Empty",
	ItemFuelCells:  "Fuel Cells",
	ItemSpareParts: "Spare Parts",
	ItemPowerPack:  "Power Pack",
	ItemRationPack: "Ration Pack",
	ItemMedKit:     "Med Kit",
	ItemShieldCell: "Shield Cell",
	ItemScanner:    "Scanner",
	ItemCredits:    "Credit Chip",
}

// ItemName returns the display name for an item kind.
func ItemName(k ItemKind) string {
	if k < ItemKindCount {
		return itemNames[k]
	}
	return "Unknown"
}

// HoldSlots is the number of distinct stacks the shuttle hold carries.
const HoldSlots = 6

// InventorySlot holds one item stack.
type InventorySlot struct {
	Kind  ItemKind
	Count int
}

// Inventory is the shuttle's small-item hold.
type Inventory struct {
	Slots [HoldSlots]InventorySlot
}

func (inv *Inventory) find(kind ItemKind) int {
	for i, slot := range inv.Slots {
		if slot.Kind == kind && slot.Count > 0 {
			return i
		}
	}
	return -1
}

func (inv *Inventory) firstEmpty() int {
	for i, slot := range inv.Slots {
		if slot.Count == 0 {
			return i
		}
	}
	return -1
}

// Add stacks one item into the hold. Returns false when every slot holds
// some other kind.
func (inv *Inventory) Add(kind ItemKind) bool {
	if kind == ItemNone || kind >= ItemKindCount {
		return false
	}
	idx := inv.find(kind)
	if idx < 0 {
		idx = inv.firstEmpty()
		if idx < 0 {
			return false // hold full
		}
		inv.Slots[idx].Kind = kind
	}
	inv.Slots[idx].Count++
	return true
}

// Count returns how many of kind are aboard.
func (inv *Inventory) Count(kind ItemKind) int {
	if idx := inv.find(kind); idx >= 0 {
		return inv.Slots[idx].Count
	}
	return 0
}

// Total returns the number of items across all slots.
func (inv *Inventory) Total() int {
	n := 0
	for _, slot := range inv.Slots {
		n += slot.Count
	}
	return n
}
