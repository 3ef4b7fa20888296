package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// Draw renders the dungeon to the screen (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.ColorBackground)

	v.dungeonMutex.RLock()
	d := v.dungeon
	msg := v.message
	overlay := v.showOverlay
	v.dungeonMutex.RUnlock()

	if d == nil {
		ebitenutil.DebugPrintAt(screen, "no dungeon", mapMargin, mapMargin)
		return
	}

	size := v.currentTileSize()
	mapX, mapY := mapMargin, headerHeight+mapMargin

	v.drawGrid(screen, d.Grid, mapX, mapY, size)
	if overlay {
		v.drawRooms(screen, d, mapX, mapY, size)
	}
	v.drawHeader(screen, d, msg)
}

// currentTileSize returns the zoomed tile size or the size that fits the window
func (v *Viewer) currentTileSize() int {
	if v.tileSize > 0 {
		return v.tileSize
	}
	v.dungeonMutex.RLock()
	d := v.dungeon
	v.dungeonMutex.RUnlock()
	if d == nil {
		return maxTileSize
	}
	return renderer.FitTileSize(d.Grid.Rows(), d.Grid.Cols(),
		v.windowWidth-2*mapMargin, v.windowHeight-headerHeight-2*mapMargin,
		minTileSize, maxTileSize)
}

func (v *Viewer) drawGrid(screen *ebiten.Image, g *world.Grid, mapX, mapY, size int) {
	s := float32(size)
	g.ForEachCell(func(row, col int, t world.Tile) {
		if t == world.TileSolid {
			return
		}
		x := float32(mapX + col*size)
		y := float32(mapY + row*size)
		vector.DrawFilledRect(screen, x, y, s, s, renderer.TileColor(t), false)
	})
}

// drawRooms outlines room bounds and door anchors and marks the entry room
func (v *Viewer) drawRooms(screen *ebiten.Image, d *generator.Dungeon, mapX, mapY, size int) {
	for _, r := range d.Rooms {
		var clr color.Color = colorRoomOutline
		if r.ID == d.Entry {
			clr = colorEntry
		}
		strokeRect(screen, r.Bounds(), mapX, mapY, size, 1, clr)
		for _, a := range r.DoorAnchors() {
			strokeRect(screen, a, mapX, mapY, size, 1, colorAnchor)
		}

		b := r.Bounds()
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(r.ID), mapX+b.Left*size+2, mapY+b.Top*size+2)
	}
}

func strokeRect(screen *ebiten.Image, r world.Rect, mapX, mapY, size int, width float32, clr color.Color) {
	x := float32(mapX + r.Left*size)
	y := float32(mapY + r.Top*size)
	w := float32(r.Width() * size)
	h := float32(r.Height() * size)
	vector.StrokeRect(screen, x, y, w, h, width, clr, false)
}

func (v *Viewer) drawHeader(screen *ebiten.Image, d *generator.Dungeon, msg string) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), headerHeight, colorHeaderBackground, false)

	line := fmt.Sprintf("seed %d  rooms %d/%d  edges %d  entry %d  [R] next  [<-] prev  [O] overlay  [+/-/0] zoom  [Q] quit",
		d.Seed, d.RoomCount(), d.Diagnostics.RequestedRooms, len(d.Edges), d.Entry)
	ebitenutil.DebugPrintAt(screen, line, mapMargin, 2)

	var warnings []string
	if !d.Diagnostics.OK() {
		warnings = append(warnings, diagnosticsSummary(d.Diagnostics))
	}
	if msg != "" {
		warnings = append(warnings, msg)
	}
	if len(warnings) > 0 {
		ebitenutil.DebugPrintAt(screen, strings.Join(warnings, "  "), mapMargin, 18)
		vector.DrawFilledRect(screen, 0, headerHeight-2, float32(w), 2, colorWarning, false)
	}
}

func diagnosticsSummary(diag generator.Diagnostics) string {
	var parts []string
	if diag.PlacementExhausted {
		parts = append(parts, "placement exhausted")
	}
	if diag.FallbackSelections > 0 {
		parts = append(parts, fmt.Sprintf("%d fallback types", diag.FallbackSelections))
	}
	if len(diag.DisconnectedRooms) > 0 {
		parts = append(parts, fmt.Sprintf("disconnected %v", diag.DisconnectedRooms))
	}
	if diag.IntersectingTunnels > 0 {
		parts = append(parts, fmt.Sprintf("%d intersecting tunnels", diag.IntersectingTunnels))
	}
	return strings.Join(parts, ", ")
}
