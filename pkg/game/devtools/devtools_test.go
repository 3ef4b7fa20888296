package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
)

func testDungeon(t *testing.T) *generator.Dungeon {
	t.Helper()
	d, err := generator.Generate(config.Default(), 1337)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return d
}

func TestWriteExport_HeaderAndRows(t *testing.T) {
	d := testDungeon(t)
	var buf bytes.Buffer
	if err := WriteExport(&buf, d); err != nil {
		t.Fatalf("WriteExport() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	header := []string{
		"Seed: 1337",
		"World size: 128x48 (Height x Width)",
		"Room count: ",
		"Room size: 3x3 - 6x6",
		"Max doors: rectangular=3 boss=2",
	}
	for i, want := range header {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("header line %d = %q, want prefix %q", i, lines[i], want)
		}
	}

	rows := lines[len(header):]
	if len(rows) != d.Grid.Rows() {
		t.Fatalf("got %d rows, want %d", len(rows), d.Grid.Rows())
	}
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != 2*d.Grid.Cols() {
			t.Fatalf("row %d has %d symbols, want %d", row, len(runes), 2*d.Grid.Cols())
		}
		for col := 0; col < d.Grid.Cols(); col++ {
			want := d.Grid.Get(row, col).Symbol()
			if runes[2*col] != want || runes[2*col+1] != want {
				t.Fatalf("cell %d,%d = %q%q, want %q twice", row, col, runes[2*col], runes[2*col+1], want)
			}
		}
	}
}

func TestExportToFile(t *testing.T) {
	d := testDungeon(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	abs, err := ExportToFile(path, d)
	if err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Seed: 1337\n") {
		t.Errorf("file starts with %q", string(data[:20]))
	}

	if _, err := ExportToFile(path, nil); err == nil {
		t.Error("ExportToFile(nil) = nil error")
	}
}

type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("disk full")
}

func TestWriteAndClose_ReportsCloseError(t *testing.T) {
	d := testDungeon(t)
	fc := &failingCloser{}

	err := writeAndClose(fc, d)
	if err == nil {
		t.Fatal("writeAndClose() = nil error, want close error")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error = %v, want wrapped close error", err)
	}
	if !fc.closed {
		t.Error("writer was not closed")
	}
	if !strings.HasPrefix(fc.String(), "Seed: 1337\n") {
		t.Errorf("export not written before close: %q", fc.String())
	}
}

func TestWriteDebug_Sections(t *testing.T) {
	d := testDungeon(t)
	var buf bytes.Buffer
	if err := WriteDebug(&buf, d); err != nil {
		t.Fatalf("WriteDebug() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"--- Metadata ---",
		"seed: 1337",
		"--- Rooms ---",
		"#0: type: boss",
		"anchor 3:",
		"--- Edges (selection order) ---",
		"--- Tunnels ---",
		"--- Diagnostics ---",
		"intersecting_tunnels:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug dump missing %q", want)
		}
	}
}

func TestFormatEvent_EveryKind(t *testing.T) {
	var lines []string
	_, err := generator.Generate(config.Default(), 1337, generator.WithListener(func(e generator.Event) {
		lines = append(lines, FormatEvent(e))
	}))
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	for _, l := range lines {
		counts[strings.SplitN(l, ":", 2)[0]]++
	}
	for _, kind := range []string{"room_placed", "edge_selected", "tunnel_carved"} {
		if counts[kind] == 0 {
			t.Errorf("no %s lines in %v", kind, counts)
		}
	}
	if counts["edge_selected"] != counts["tunnel_carved"] {
		t.Errorf("%d edges but %d tunnels", counts["edge_selected"], counts["tunnel_carved"])
	}
}

func TestFormatEvent_Fallback(t *testing.T) {
	got := FormatEvent(generator.Event{Kind: generator.EventTypeFallback, Index: 3, RoomType: config.RoomType{Shape: config.ShapeRectangular}})
	if got != "type_fallback: index: 3 type: rectangular" {
		t.Errorf("FormatEvent() = %q", got)
	}
}

func TestDevDungeon_ShowsEveryTile(t *testing.T) {
	d, err := DevDungeon()
	if err != nil {
		t.Fatal(err)
	}
	if d.RoomCount() != 6 {
		t.Fatalf("got %d rooms, want 6", d.RoomCount())
	}
	for _, tile := range world.AllTiles() {
		if d.Grid.Count(tile) == 0 {
			t.Errorf("no %v tiles on the dev map", tile)
		}
	}

	kinds := map[generator.TunnelKind]bool{}
	for _, tn := range d.Tunnels {
		kinds[tn.Kind] = true
	}
	if !kinds[generator.TunnelHorizontal] || !kinds[generator.TunnelVertical] {
		t.Errorf("tunnel kinds = %v, want both straight kinds", kinds)
	}
	if d.Degrees[0] > d.Rooms[0].MaxDoors {
		t.Errorf("boss has %d doors over cap %d", d.Degrees[0], d.Rooms[0].MaxDoors)
	}
}

func TestWriteHTML(t *testing.T) {
	d := testDungeon(t)
	var buf bytes.Buffer
	if err := WriteHTML(&buf, d); err != nil {
		t.Fatal(err)
	}
	page := buf.String()

	if !strings.Contains(page, "<title>Dungeon 1337</title>") {
		t.Error("missing title")
	}
	if got := strings.Count(page, `<div class="map-row">`); got != d.Grid.Rows() {
		t.Errorf("got %d map rows, want %d", got, d.Grid.Rows())
	}
	for _, class := range []string{"tile-solid", "tile-roomfloor", "tile-bosswall"} {
		if !strings.Contains(page, `<span class="`+class+`">`) {
			t.Errorf("no %s spans", class)
		}
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	name, err := SaveScreenshotHTML(testDungeon(t))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(name, "dungeon-1337-") {
		t.Errorf("file name = %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Error(err)
	}
}
