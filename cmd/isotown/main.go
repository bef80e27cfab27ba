package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mokuren/isotown"
	"github.com/mokuren/isotown/scenepack"
)

func main() {
	var (
		scenePath  = flag.String("scene", "district.json", "scene payload path (.json or .json.zst)")
		configPath = flag.String("config", "", "viewer config YAML (optional)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[isotown] ", log.LstdFlags)

	cfg := isotown.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = isotown.LoadConfig(*configPath)
		if err != nil {
			logger.Fatalf("config %s: %v", *configPath, err)
		}
	}

	scene, rep, err := scenepack.Load(*scenePath)
	if err != nil {
		logger.Fatalf("scene %s: %v", *scenePath, err)
	}
	logger.Printf("scene: %d buildings, %d roads, %d railways, %d stations, %d parks, %d tiles",
		len(scene.Buildings), len(scene.Roads), len(scene.Railways),
		len(scene.Stations), len(scene.Parks), len(scene.Tiles))
	if rep.Dropped() > 0 || rep.ClosedRings > 0 {
		logger.Printf("admission: dropped %d entities, normalized %d closed rings", rep.Dropped(), rep.ClosedRings)
	}
	if rep.ScrambleDisabled {
		logger.Printf("admission: scramble area below 3 points, crossing rendering disabled")
	}

	app, err := isotown.NewApp(scene, cfg)
	if err != nil {
		logger.Fatalf("init: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatalf("run: %v", err)
	}
}
