package devtools

import (
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// tileClass returns the CSS class used for a tile
func tileClass(t world.Tile) string {
	return "tile-" + strings.ToLower(t.String())
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteHTML writes a standalone HTML page showing the dungeon with the same
// colours as the graphical viewer
func WriteHTML(w io.Writer, d *generator.Dungeon) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
`)
	fmt.Fprintf(bw, "    <title>Dungeon %d</title>\n", d.Seed)
	fmt.Fprintf(bw, `    <style>
        body {
            background-color: %s;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-container {
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.0; font-size: 12px; }
        .warning { color: #ff6464; margin: 5px 0; }
`, cssColor(renderer.ColorBackground))
	for _, t := range world.AllTiles() {
		c := renderer.TileColor(t)
		fmt.Fprintf(bw, "        .%s { color: %s; background-color: %s; }\n", tileClass(t), cssColor(c), cssColor(c))
	}
	bw.WriteString(`    </style>
</head>
<body>
`)

	fmt.Fprintf(bw, `    <div class="header">Seed %d: %d rooms, %d connections, entry room %d</div>`+"\n",
		d.Seed, d.RoomCount(), len(d.Edges), d.Entry)

	bw.WriteString(`    <div class="map-container">` + "\n")
	for row := 0; row < d.Grid.Rows(); row++ {
		bw.WriteString(`        <div class="map-row">`)
		tiles := d.Grid.Row(row)
		for start := 0; start < len(tiles); {
			end := start
			for end < len(tiles) && tiles[end] == tiles[start] {
				end++
			}
			sym := html.EscapeString(strings.Repeat(string(tiles[start].Symbol()), 2*(end-start)))
			fmt.Fprintf(bw, `<span class="%s">%s</span>`, tileClass(tiles[start]), sym)
			start = end
		}
		bw.WriteString("</div>\n")
	}
	bw.WriteString(`    </div>` + "\n")

	if !d.Diagnostics.OK() {
		diag := d.Diagnostics
		if diag.PlacementExhausted {
			fmt.Fprintf(bw, `    <div class="warning">Placement exhausted: %d of %d rooms placed</div>`+"\n", d.RoomCount(), diag.RequestedRooms)
		}
		if diag.FallbackSelections > 0 {
			fmt.Fprintf(bw, `    <div class="warning">Fallback room types: %d</div>`+"\n", diag.FallbackSelections)
		}
		if len(diag.DisconnectedRooms) > 0 {
			fmt.Fprintf(bw, `    <div class="warning">Disconnected rooms: %v</div>`+"\n", diag.DisconnectedRooms)
		}
		if diag.IntersectingTunnels > 0 {
			fmt.Fprintf(bw, `    <div class="warning">Intersecting tunnels: %d</div>`+"\n", diag.IntersectingTunnels)
		}
	}

	bw.WriteString(`</body>
</html>
`)
	return bw.Flush()
}

// SaveScreenshotHTML writes the HTML page to a timestamped file in the
// working directory and returns its name
func SaveScreenshotHTML(d *generator.Dungeon) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("dungeon-%d-%s.html", d.Seed, timestamp)

	var page strings.Builder
	if err := WriteHTML(&page, d); err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(page.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return filename, nil
}
