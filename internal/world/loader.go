package world

import (
	"encoding/json"
	"fmt"
)

// Scenario is the JSON-serializable starting layout of a docking sandbox.
type Scenario struct {
	Name       string      `json:"name"`
	RegionSize float64     `json:"regionSize"`
	Spawn      [2]float64  `json:"spawn"`
	Heading    float64     `json:"heading"` // degrees, 0 = +X
	Fuel       float64     `json:"fuel"`    // starting fuel, 0-100
	Refuel     *StationDef `json:"refuel"`
	Reward     *StationDef `json:"reward"`
}

// StationDef places one dockable station.
type StationDef struct {
	Name  string     `json:"name"`
	Pos   [2]float64 `json:"pos"`
	Drift [2]float64 `json:"drift"` // units per frame
	// Tile overrides the region derived from Pos; nil means derive.
	Tile *TileCoord `json:"tile,omitempty"`
}

// LoadScenario parses a Scenario from JSON bytes.
func LoadScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.RegionSize <= 0 {
		sc.RegionSize = RegionSize
	}
	if sc.Fuel < 0 || sc.Fuel > 100 {
		return nil, fmt.Errorf("scenario %q: fuel %.1f out of range [0,100]", sc.Name, sc.Fuel)
	}
	for _, st := range []*StationDef{sc.Refuel, sc.Reward} {
		if st == nil {
			continue
		}
		if st.Name == "" {
			return nil, fmt.Errorf("scenario %q: station at (%.0f,%.0f) has no name", sc.Name, st.Pos[0], st.Pos[1])
		}
	}
	return &sc, nil
}

// StationTile returns the region a station belongs to.
func (sc *Scenario) StationTile(st *StationDef) TileCoord {
	if st.Tile != nil {
		return *st.Tile
	}
	return TileOf(st.Pos[0], st.Pos[1], sc.RegionSize)
}

// SpawnX returns the player spawn X coordinate.
func (sc *Scenario) SpawnX() float64 { return sc.Spawn[0] }

// SpawnY returns the player spawn Y coordinate.
func (sc *Scenario) SpawnY() float64 { return sc.Spawn[1] }
