package render

import (
	"image/color"

	"github.com/spacehole-rogue/autodock/internal/game"
)

// CGA 16-color palette indices.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette is the classic CGA palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 170, 255},
	{0, 170, 0, 255},
	{0, 170, 170, 255},
	{170, 0, 0, 255},
	{170, 0, 170, 255},
	{170, 85, 0, 255},
	{170, 170, 170, 255},
	{85, 85, 85, 255},
	{85, 85, 255, 255},
	{85, 255, 85, 255},
	{85, 255, 255, 255},
	{255, 85, 85, 255},
	{255, 85, 255, 255},
	{255, 255, 85, 255},
	{255, 255, 255, 255},
}

// PriorityColor picks the comms color for a message priority.
func PriorityColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgWarning:
		return ColorYellow
	case game.MsgReward:
		return ColorLightGreen
	default:
		return ColorLightCyan
	}
}

// ItemColor gives each bonus item kind a distinct palette color.
func ItemColor(k game.ItemKind) uint8 {
	switch k {
	case game.ItemFuelCells:
		return ColorYellow
	case game.ItemSpareParts:
		return ColorLightGray
	case game.ItemPowerPack:
		return ColorLightBlue
	case game.ItemRationPack:
		return ColorBrown
	case game.ItemMedKit:
		return ColorLightRed
	case game.ItemShieldCell:
		return ColorLightCyan
	case game.ItemScanner:
		return ColorLightMagenta
	case game.ItemCredits:
		return ColorLightGreen
	default:
		return ColorDarkGray
	}
}

// StationColor is the hull color of a station kind.
func StationColor(k game.StationKind) uint8 {
	if k == game.StationReward {
		return ColorLightMagenta
	}
	return ColorLightGreen
}

// FuelColor shades the fuel gauge by level.
func FuelColor(pct int) uint8 {
	switch {
	case pct <= 15:
		return ColorLightRed
	case pct <= 40:
		return ColorYellow
	default:
		return ColorLightGreen
	}
}
