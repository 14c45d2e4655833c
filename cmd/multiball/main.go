package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/multiball/internal/audio"
	"chosenoffset.com/multiball/internal/config"
	"chosenoffset.com/multiball/internal/game"
	ebitenrender "chosenoffset.com/multiball/internal/render/ebiten"
	"chosenoffset.com/multiball/internal/render/terminal"
)

func main() {
	configPath := flag.String("config", "multiball.toml", "path to an optional TOML config file")
	backend := flag.String("backend", "ebiten", "host to run in: ebiten or terminal")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "show frame rate")
	flag.Parse()

	if *backend == "terminal" {
		// The terminal is the display; keep log output off it
		logPath := filepath.Join(os.TempDir(), "multiball.log")
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g := game.New(cfg)

	if cfg.Audio.Enabled && !*mute {
		player, err := audio.NewPlayer(cfg.Audio)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			g.Listener = player
		}
	}

	switch *backend {
	case "ebiten":
		keyboard := ebitenrender.NewKeyboard()
		engine := ebitenrender.NewEngine(keyboard, *debug)
		engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		engine.SetWindowTitle(cfg.Window.Title)

		if err := g.Run(engine, keyboard); err != nil {
			log.Fatal(err)
		}

	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Failed to create terminal screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("Failed to initialize terminal screen: %v", err)
		}

		keyboard := terminal.NewKeyboard(time.Duration(cfg.Terminal.KeyHoldMillis) * time.Millisecond)
		engine := terminal.NewEngine(screen, keyboard, cfg.Terminal.FPS, *debug)
		engine.SetWindowTitle(cfg.Window.Title)

		err = g.Run(engine, keyboard)
		screen.Fini()
		if err != nil {
			log.Fatal(err)
		}

	default:
		log.Fatalf("Unknown backend %q (want ebiten or terminal)", *backend)
	}
}
