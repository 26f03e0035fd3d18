package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "optional JSON config file (validated against the embedded schema)")
	flag.Parse()

	logger := golog.New(golog.InfoLevel, os.Stderr)

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile)
		if err != nil {
			logger.Fatalf("loading config %s: %v", *configFile, err)
		}
		cfg = loaded
	}

	logger.Infof("starting flock: %d boids in a %dx%d world",
		cfg.NumBoids, int(cfg.WorldWidth), int(cfg.WorldHeight))

	game := simulation.GetNewGame(cfg)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids Flocking")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}
