package renderer

import (
	"dungeongen/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeading
	StyleValue
	StyleWarning
	StyleSubtle
)

// Renderer defines the interface for dungeon rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// RenderDungeon draws a complete dungeon
	RenderDungeon(d *generator.Dungeon)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderDungeon renders a dungeon with the current renderer
func RenderDungeon(d *generator.Dungeon) {
	if Current != nil {
		Current.RenderDungeon(d)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
