package world

import "math"

// RegionSize is the edge length of one world tile, in world units.
// The system plane is cut into square regions; objects only interact
// with the player while they share a region.
const RegionSize = 480.0

// TileCoord identifies one region of the system plane.
type TileCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileOf returns the region containing (x, y).
func TileOf(x, y, size float64) TileCoord {
	if size <= 0 {
		size = RegionSize
	}
	return TileCoord{
		X: int(math.Floor(x / size)),
		Y: int(math.Floor(y / size)),
	}
}
