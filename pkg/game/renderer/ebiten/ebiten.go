package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// New creates a viewer that regenerates dungeons with gen
func New(gen generator.DungeonGenerator) *Viewer {
	return &Viewer{
		gen:          gen,
		windowWidth:  defaultWindowW,
		windowHeight: defaultWindowH,
		showOverlay:  true,
	}
}

// Init sets up the window
func (v *Viewer) Init() {
	ebiten.SetWindowSize(v.windowWidth, v.windowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitleBase, v.gen.Name()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// RenderDungeon replaces the dungeon on screen
func (v *Viewer) RenderDungeon(d *generator.Dungeon) {
	v.dungeonMutex.Lock()
	defer v.dungeonMutex.Unlock()
	v.dungeon = d
	if d != nil {
		v.seed = d.Seed
	}
}

// StyleText returns text unchanged; the window draws plain debug text
func (v *Viewer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage shows msg in the header until the next dungeon
func (v *Viewer) ShowMessage(msg string) {
	v.dungeonMutex.Lock()
	defer v.dungeonMutex.Unlock()
	v.message = msg
}

// Show generates the dungeon for seed and displays it
func (v *Viewer) Show(seed int64) {
	d := v.gen.Generate(seed)
	v.dungeonMutex.Lock()
	v.message = ""
	v.dungeonMutex.Unlock()
	v.RenderDungeon(d)
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run() error {
	v.dungeonMutex.RLock()
	empty := v.dungeon == nil
	v.dungeonMutex.RUnlock()
	if empty {
		v.Show(v.seed)
	}
	return ebiten.RunGame(v)
}
