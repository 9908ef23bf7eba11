package render

import (
	"fmt"
	"strings"

	"github.com/spacehole-rogue/autodock/internal/game"
)

// HUD layout in cells.
const (
	hudPanelRow = 36 // top border of the bottom panel
	hudCommsCol = 30
	hudCommsMax = 7
	hudBarWidth = 20
)

// HUD composes the text overlay for one frame.
type HUD struct {
	Title    string
	Scenario string
	Stats    string // frame counters, bottom right
}

// Draw fills buf from the current sim state.
func (h HUD) Draw(buf *CellBuffer, s *game.Sim, now float64) {
	buf.Clear()

	x := buf.WriteString(2, 0, h.Title, ColorWhite, ColorBlack)
	if h.Scenario != "" {
		buf.WriteString(x+2, 0, fmt.Sprintf("[ %s ]", h.Scenario), ColorLightCyan, ColorBlack)
	}
	status := s.DockStatus()
	statusClr := uint8(ColorLightGreen)
	if s.Dock != nil {
		statusClr = ColorYellow
	}
	buf.WriteString(buf.Cols-len(status)-2, 0, status, statusClr, ColorBlack)

	drawBox(buf, 0, hudPanelRow, buf.Cols, buf.Rows-hudPanelRow)
	row := hudPanelRow + 1

	p := &s.Player
	pct := p.FuelPct()
	buf.WriteString(2, row, "Fuel ", ColorLightGray, ColorBlack)
	buf.Bar(7, row, hudBarWidth, p.Fuel/p.MaxFuel, FuelColor(pct))
	buf.WriteString(8+hudBarWidth, row, fmt.Sprintf("%3d%%", pct), FuelColor(pct), ColorBlack)
	row++

	tile := s.PlayerTile()
	buf.WriteString(2, row, fmt.Sprintf("Speed %4.2f  Region %d,%d", p.Speed(), tile.X, tile.Y), ColorLightGray, ColorBlack)
	row++

	if d := s.Dock; d != nil && d.AbortHoldSince.Set && s.Tuning.AbortHoldMs > 0 {
		frac := (now - d.AbortHoldSince.At) / s.Tuning.AbortHoldMs
		buf.WriteString(2, row, "Abort", ColorYellow, ColorBlack)
		buf.Bar(8, row, hudBarWidth-1, frac, ColorYellow)
	} else if st := s.DockStation(); st != nil {
		buf.WriteString(2, row, fmt.Sprintf("Target %s (%s)", st.Name, game.StationKindName(st.Kind)), StationColor(st.Kind), ColorBlack)
	} else {
		buf.WriteString(2, row, fmt.Sprintf("Dock range %.0f", s.Tuning.Proximity), ColorDarkGray, ColorBlack)
	}
	row++

	buf.WriteString(2, row, "Hold:", ColorLightCyan, ColorBlack)
	row++
	for _, line := range holdLines(&s.Hold) {
		if row >= buf.Rows-1 {
			break
		}
		buf.WriteString(3, row, line, ColorLightGray, ColorBlack)
		row++
	}

	for i, m := range s.Comms.Recent(hudCommsMax) {
		buf.WriteString(hudCommsCol, hudPanelRow+1+i, m.Text, PriorityColor(m.Priority), ColorBlack)
	}

	if h.Stats != "" {
		buf.WriteString(buf.Cols-len(h.Stats)-2, buf.Rows-1, h.Stats, ColorDarkGray, ColorBlack)
	}
}

// holdLines lists non-empty hold slots, two per line.
func holdLines(inv *game.Inventory) []string {
	var parts []string
	for _, slot := range inv.Slots {
		if slot.Count > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", game.ItemName(slot.Kind), slot.Count))
		}
	}
	if len(parts) == 0 {
		return []string{"(empty)"}
	}
	var lines []string
	for i := 0; i < len(parts); i += 2 {
		lines = append(lines, strings.Join(parts[i:min(i+2, len(parts))], ", "))
	}
	return lines
}

func drawBox(buf *CellBuffer, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		buf.Set(i, y, GlyphHLine, ColorDarkGray, ColorBlack)
		buf.Set(i, bottom, GlyphHLine, ColorDarkGray, ColorBlack)
	}
	for j := y + 1; j < bottom; j++ {
		buf.Set(x, j, GlyphVLine, ColorDarkGray, ColorBlack)
		buf.Set(right, j, GlyphVLine, ColorDarkGray, ColorBlack)
	}
	buf.Set(x, y, GlyphTopLeft, ColorDarkGray, ColorBlack)
	buf.Set(right, y, GlyphTopRight, ColorDarkGray, ColorBlack)
	buf.Set(x, bottom, GlyphBotLeft, ColorDarkGray, ColorBlack)
	buf.Set(right, bottom, GlyphBotRight, ColorDarkGray, ColorBlack)
}
