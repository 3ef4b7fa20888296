package renderer

import (
	"testing"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

func TestTileColor_EveryTileHasDistinctColor(t *testing.T) {
	seen := map[[4]uint8]world.Tile{}
	for _, tile := range world.AllTiles() {
		c := TileColor(tile)
		if c == ColorUnknown {
			t.Errorf("%v has no color", tile)
		}
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, ok := seen[key]; ok {
			t.Errorf("%v and %v share color %v", tile, other, c)
		}
		seen[key] = tile
	}
	if TileColor(world.Tile(200)) != ColorUnknown {
		t.Error("invalid tile should map to ColorUnknown")
	}
}

type recordingRenderer struct {
	rendered int
	messages []string
}

func (r *recordingRenderer) Init()                                  {}
func (r *recordingRenderer) RenderDungeon(d *generator.Dungeon)     { r.rendered++ }
func (r *recordingRenderer) StyleText(s string, _ TextStyle) string { return "[" + s + "]" }
func (r *recordingRenderer) ShowMessage(msg string)                 { r.messages = append(r.messages, msg) }

func TestCurrent_Dispatch(t *testing.T) {
	defer SetRenderer(nil)

	SetRenderer(nil)
	if got := StyleText("x", StyleHeading); got != "x" {
		t.Errorf("StyleText without renderer = %q, want plain", got)
	}
	ShowMessage("dropped")

	r := &recordingRenderer{}
	SetRenderer(r)
	ShowMessage("hello")
	RenderDungeon(&generator.Dungeon{})
	if got := StyleText("x", StyleHeading); got != "[x]" {
		t.Errorf("StyleText = %q, want [x]", got)
	}
	if len(r.messages) != 1 || r.messages[0] != "hello" || r.rendered != 1 {
		t.Errorf("renderer saw messages=%v rendered=%d", r.messages, r.rendered)
	}
}
