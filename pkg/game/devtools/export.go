// Package devtools provides developer tools for exporting and debugging dungeons.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
)

// DefaultExportFilename is used when no output path is given
const DefaultExportFilename = "dungeon.txt"

// WriteExport writes the flat export: a short header followed by one line per
// grid row with every cell symbol written twice, so the map looks roughly
// square in a text editor.
func WriteExport(w io.Writer, d *generator.Dungeon) error {
	cfg := d.Config
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Seed: %d\n", d.Seed)
	fmt.Fprintf(bw, "World size: %dx%d (Height x Width)\n", cfg.WorldHeight, cfg.WorldWidth)
	fmt.Fprintf(bw, "Room count: %d\n", d.RoomCount())
	fmt.Fprintf(bw, "Room size: %dx%d - %dx%d\n", cfg.MinRoomWidth, cfg.MinRoomHeight, cfg.MaxRoomWidth, cfg.MaxRoomHeight)
	fmt.Fprintf(bw, "Max doors: %s=%d %s=%d\n",
		config.ShapeRectangular, cfg.MaxDoorsFor(config.ShapeRectangular),
		config.ShapeBoss, cfg.MaxDoorsFor(config.ShapeBoss))

	writeGrid(bw, d.Grid)

	return bw.Flush()
}

// writeGrid writes each row with doubled cells
func writeGrid(w *bufio.Writer, g *world.Grid) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			sym := g.Get(row, col).Symbol()
			w.WriteRune(sym)
			w.WriteRune(sym)
		}
		w.WriteByte('\n')
	}
}

// ExportToFile writes the flat export to path and returns the absolute path
func ExportToFile(path string, d *generator.Dungeon) (string, error) {
	if d == nil || d.Grid == nil {
		return "", fmt.Errorf("no dungeon")
	}
	if path == "" {
		path = DefaultExportFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := writeAndClose(f, d); err != nil {
		return "", err
	}

	return absPath, nil
}

// writeAndClose writes the export to wc and closes it. A failed Close is
// reported even when the write succeeded.
func writeAndClose(wc io.WriteCloser, d *generator.Dungeon) error {
	if err := WriteExport(wc, d); err != nil {
		wc.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	return nil
}
