package main

import (
	"flag"
	"os"
	"time"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
)

// flockbench ticks a flock without a window, logging throughput once per
// second. Useful for sizing the full pairwise scan at different populations.
func main() {
	numBoids := flag.Int("n", 250, "number of boids")
	frames := flag.Int("frames", 600, "number of ticks to run")
	configFile := flag.String("config", "", "optional JSON config file")
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
	cfg.NumBoids = *numBoids

	flock := simulation.NewFlock(cfg)
	logger.Infof("flockbench: %d boids, %d frames", len(flock.Boids()), *frames)

	var (
		frameCount  int
		tickTotal   time.Duration
		lastLogTime = time.Now()
	)

	for i := 0; i < *frames; i++ {
		start := time.Now()
		flock.Update()
		tickTotal += time.Since(start)
		frameCount++

		if time.Since(lastLogTime) >= time.Second {
			avg := tickTotal / time.Duration(frameCount)
			logger.Infof("📊 %d frames | avg tick %v | %d boids",
				frameCount, avg, len(flock.Boids()))
			frameCount = 0
			tickTotal = 0
			lastLogTime = time.Now()
		}
	}

	if frameCount > 0 {
		logger.Infof("📊 %d frames | avg tick %v | %d boids",
			frameCount, tickTotal/time.Duration(frameCount), len(flock.Boids()))
	}
}
