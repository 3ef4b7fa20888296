package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/ebiten"
	"dungeongen/pkg/game/renderer/tui"
	"dungeongen/pkg/game/server"
)

type options struct {
	configPath string
	seed       int64
	width      int
	height     int
	rooms      int
	out        string
	debug      bool
	quiet      bool
	gui        bool
	serve      string
	lang       string
	html       bool
	devMap     bool
}

func parseFlags() (options, error) {
	var o options
	seed, err := envInt64(envSeed, 0)
	if err != nil {
		return o, err
	}

	flag.StringVar(&o.configPath, "config", envString(envConfig, ""), "JSON configuration file layered over the defaults")
	flag.Int64Var(&o.seed, "seed", seed, "generation seed (0 picks one from the clock)")
	flag.IntVar(&o.width, "width", 0, "world width override")
	flag.IntVar(&o.height, "height", 0, "world height override")
	flag.IntVar(&o.rooms, "rooms", 0, "room count override")
	flag.StringVar(&o.out, "out", devtools.DefaultExportFilename, "flat export path (empty to skip)")
	flag.BoolVar(&o.debug, "debug", false, "print pipeline events and a debug dump")
	flag.BoolVar(&o.quiet, "quiet", false, "do not print the map")
	flag.BoolVar(&o.gui, "gui", false, "open the dungeon in a window")
	flag.StringVar(&o.serve, "serve", envString(envServe, ""), "serve dungeons over HTTP on this address, e.g. :8080")
	flag.StringVar(&o.lang, "lang", envString(envLang, "en_US"), "language for labels")
	flag.BoolVar(&o.html, "html", false, "also save an HTML screenshot")
	flag.BoolVar(&o.devMap, "devmap", false, "show the fixed developer test map instead of generating")
	flag.Parse()
	return o, nil
}

func initLocale(lang string) {
	gotext.Configure("locales", lang, "default")
}

// loadConfig reads the config file if given and applies flag overrides
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.width > 0 {
		cfg.WorldWidth = o.width
	}
	if o.height > 0 {
		cfg.WorldHeight = o.height
	}
	if o.rooms > 0 {
		cfg.RoomCount = o.rooms
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, renderer.StyleText(gotext.Get("ERROR")+":", renderer.StyleWarning), err)
	os.Exit(1)
}

func main() {
	renderer.SetRenderer(tui.New())
	renderer.Init()

	if err := loadEnvFile(envFile); err != nil {
		fail(err)
	}
	o, err := parseFlags()
	if err != nil {
		fail(err)
	}
	initLocale(o.lang)

	cfg, err := loadConfig(o)
	if err != nil {
		fail(err)
	}

	var opts []generator.Option
	if o.debug {
		opts = append(opts, generator.WithListener(func(e generator.Event) {
			renderer.ShowMessage(renderer.StyleText(devtools.FormatEvent(e), renderer.StyleSubtle))
		}))
	}

	gen, err := generator.New(cfg, opts...)
	if err != nil {
		fail(err)
	}

	if o.serve != "" {
		log.Fatal(server.New(gen, cfg.Seed).ListenAndServe(o.serve))
	}

	var d *generator.Dungeon
	if o.devMap {
		if d, err = devtools.DevDungeon(opts...); err != nil {
			fail(err)
		}
	} else {
		d = gen.Generate(cfg.Seed)
	}

	if !o.quiet {
		renderer.RenderDungeon(d)
	}
	if o.debug {
		if err := devtools.WriteDebug(os.Stdout, d); err != nil {
			fail(err)
		}
	}
	if o.out != "" {
		path, err := devtools.ExportToFile(o.out, d)
		if err != nil {
			fail(err)
		}
		renderer.ShowMessage(renderer.StyleText(gotext.Get("EXPORTED_TO")+":", renderer.StyleHeading) + " " + path)
	}

	if o.html {
		name, err := devtools.SaveScreenshotHTML(d)
		if err != nil {
			fail(err)
		}
		renderer.ShowMessage(renderer.StyleText(gotext.Get("SCREENSHOT_SAVED")+":", renderer.StyleHeading) + " " + name)
	}

	if o.gui {
		viewer := ebiten.New(gen)
		renderer.SetRenderer(viewer)
		renderer.Init()
		renderer.RenderDungeon(d)
		if err := viewer.Run(); err != nil {
			fail(err)
		}
	}
}
