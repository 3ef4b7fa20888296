// Package tui renders dungeons to the terminal with ANSI colours.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

const (
	// RulerStep is the column spacing of the ruler above the map
	RulerStep = 4

	// rowLabelWidth is the space taken by the row numbers left of the map
	rowLabelWidth = 6
)

// dynamicGet looks up translation keys chosen at runtime without tripping
// vet's constant format string check
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	width func() int

	tileStyles map[world.Tile]color.Style

	colorHeading color.Style
	colorValue   color.Style
	colorWarning color.Style
	colorSubtle  color.Style
}

// New creates a TUI renderer writing to stdout and sized to the terminal
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, width: terminal.GetWidth}
}

// NewWithWriter creates a TUI renderer with a fixed output and width
func NewWithWriter(w io.Writer, width int) *TUIRenderer {
	return &TUIRenderer{out: w, width: func() int { return width }}
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.tileStyles = map[world.Tile]color.Style{
		world.TileSolid:     {color.FgGray},
		world.TileRoomFloor: {color.FgWhite},
		world.TileTunnel:    {color.BgBlack},
		world.TileDoor:      {color.FgYellow, color.OpBold},
		world.TileBossWall:  {color.FgRed},
		world.TileChest:     {color.FgMagenta, color.OpBold},
	}

	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorValue = color.Style{color.FgBlue}
	t.colorWarning = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleValue:
		return t.colorValue.Sprint(text)
	case renderer.StyleWarning:
		return t.colorWarning.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderDungeon prints the summary, the map and any warnings
func (t *TUIRenderer) RenderDungeon(d *generator.Dungeon) {
	t.printSummary(d)
	t.printMap(d.Grid)
	t.printWarnings(d)
}

func (t *TUIRenderer) printSummary(d *generator.Dungeon) {
	t.printLabel("SEED", fmt.Sprint(d.Seed))
	t.printLabel("WORLD_SIZE", fmt.Sprintf("%dx%d", d.Config.WorldHeight, d.Config.WorldWidth))
	t.printLabel("ROOMS", fmt.Sprintf("%d / %d", d.RoomCount(), d.Diagnostics.RequestedRooms))
	t.printLabel("EDGES", fmt.Sprintf("%d / %d", len(d.Edges), d.CandidateEdges))
	t.printLabel("ENTRY", fmt.Sprint(d.Entry))
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) printLabel(key, value string) {
	fmt.Fprintf(t.out, "%s %s\n", t.colorHeading.Sprint(dynamicGet(key)+":"), t.colorValue.Sprint(value))
}

// printMap prints a column ruler and every row prefixed with its number.
// Cells are doubled when the terminal is wide enough.
func (t *TUIRenderer) printMap(g *world.Grid) {
	scale := terminal.CellScale(g.Cols(), rowLabelWidth, t.width())
	pad := strings.Repeat(" ", rowLabelWidth)

	var ruler, ticks strings.Builder
	for col := 0; col < g.Cols(); col += RulerStep {
		fmt.Fprintf(&ruler, "%-*d", RulerStep*scale, col)
		fmt.Fprintf(&ticks, "%-*s", RulerStep*scale, "|")
	}
	fmt.Fprintln(t.out, pad+t.colorSubtle.Sprint(strings.TrimRight(ruler.String(), " ")))
	fmt.Fprintln(t.out, pad+t.colorSubtle.Sprint(strings.TrimRight(ticks.String(), " ")))

	for row := 0; row < g.Rows(); row++ {
		fmt.Fprint(t.out, t.colorSubtle.Sprintf("%-*d", rowLabelWidth, row))
		fmt.Fprintln(t.out, t.renderRow(g.Row(row), scale))
	}
}

// renderRow styles runs of equal tiles together to keep escape codes short
func (t *TUIRenderer) renderRow(tiles []world.Tile, scale int) string {
	var sb strings.Builder
	for start := 0; start < len(tiles); {
		end := start
		for end < len(tiles) && tiles[end] == tiles[start] {
			end++
		}
		run := strings.Repeat(string(tiles[start].Symbol()), (end-start)*scale)
		if style, ok := t.tileStyles[tiles[start]]; ok {
			run = style.Sprint(run)
		}
		sb.WriteString(run)
		start = end
	}
	return sb.String()
}

func (t *TUIRenderer) printWarnings(d *generator.Dungeon) {
	diag := d.Diagnostics
	if diag.PlacementExhausted {
		t.printWarning("WARN_PLACEMENT_EXHAUSTED", fmt.Sprintf("%d / %d", d.RoomCount(), diag.RequestedRooms))
	}
	if diag.FallbackSelections > 0 {
		t.printWarning("WARN_TYPE_FALLBACK", fmt.Sprint(diag.FallbackSelections))
	}
	if len(diag.DisconnectedRooms) > 0 {
		t.printWarning("WARN_DISCONNECTED_ROOMS", fmt.Sprint(diag.DisconnectedRooms))
	}
	if diag.IntersectingTunnels > 0 {
		t.printWarning("WARN_INTERSECTING_TUNNELS", fmt.Sprint(diag.IntersectingTunnels))
	}
}

// printWarning prints a translated warning label followed by its detail
func (t *TUIRenderer) printWarning(key, detail string) {
	fmt.Fprintln(t.out, t.colorWarning.Sprint("! "+dynamicGet(key)+":")+" "+detail)
}
