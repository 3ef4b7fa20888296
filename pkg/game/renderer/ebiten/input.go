package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Viewer window opened (%dx%d)", w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	v.dungeonMutex.RLock()
	seed := v.seed
	v.dungeonMutex.RUnlock()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.Show(seed + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.Show(seed - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		v.dungeonMutex.Lock()
		v.showOverlay = !v.showOverlay
		v.dungeonMutex.Unlock()
	}

	v.handleZoom()
	return nil
}

// handleZoom handles =/- for tile size adjustment
func (v *Viewer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		v.setTileSize(v.currentTileSize() + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		v.setTileSize(v.currentTileSize() - tileSizeStep)
	}
	// 0 goes back to fitting the window
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		v.tileSize = 0
	}
}

func (v *Viewer) setTileSize(size int) {
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	v.tileSize = size
}

// Layout returns the game's logical screen size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.windowWidth = outsideWidth
	v.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
