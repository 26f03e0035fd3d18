package simulation

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/boid"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/ui"
)

// 1x1 white source image for batched triangle drawing
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game wires the Ebiten scheduler, the UI panel and the renderer to the
// Flock. Update is the once-per-tick scheduler call; Draw only reads boid
// positions and headings.
type Game struct {
	flock *Flock
	cfg   *Config

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetSeparation *ui.Slider
	widgetAlignment  *ui.Slider
	widgetCohesion   *ui.Slider
	widgetPerception *ui.Slider
	widgetMaxSpeed   *ui.Slider
	widgetBoidCount  *ui.Slider
	widgetDrift      *ui.Slider
	widgetShowRadius *ui.Checkbox

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

func GetNewGame(cfg *Config) *Game {
	flock := NewFlock(cfg)

	panel := ui.NewUIPanel(10, 10, 260, cfg.WorldHeight-20)

	panel.AddSection("Steering Weights")
	widgetSeparation := panel.AddSlider("Separation", 0, 5, cfg.SeparationWeight)
	widgetAlignment := panel.AddSlider("Alignment", 0, 5, cfg.AlignmentWeight)
	widgetCohesion := panel.AddSlider("Cohesion", 0, 5, cfg.CohesionWeight)
	panel.EndSection()

	panel.AddSection("Perception & Physics")
	widgetPerception := panel.AddSlider("Perception Radius", 10, 200, cfg.PerceptionRadius)
	widgetMaxSpeed := panel.AddSlider("Max Speed", 1, 10, cfg.MaxSpeed)
	widgetDrift := panel.AddSlider("Drift (noise)", 0, 1, cfg.DriftWeight)
	panel.EndSection()

	panel.AddSection("Population")
	widgetBoidCount := panel.AddSlider("Boid Count", 10, 500, float64(cfg.NumBoids))
	panel.EndSection()

	panel.AddSection("Visualization")
	widgetShowRadius := panel.AddCheckbox("Show Perception Radius", false)
	panel.EndSection()

	g := &Game{
		flock:            flock,
		cfg:              cfg,
		panel:            panel,
		widgetSeparation: widgetSeparation,
		widgetAlignment:  widgetAlignment,
		widgetCohesion:   widgetCohesion,
		widgetPerception: widgetPerception,
		widgetMaxSpeed:   widgetMaxSpeed,
		widgetBoidCount:  widgetBoidCount,
		widgetDrift:      widgetDrift,
		widgetShowRadius: widgetShowRadius,
	}

	panel.AddSection("Actions")
	panel.AddButton("Reset Defaults", g.reset)
	panel.EndSection()

	return g
}

// reset restores the flock defaults and snaps the slider knobs back to them.
func (g *Game) reset() {
	g.flock.Reset()
	g.widgetSeparation.SetValue(g.cfg.SeparationWeight)
	g.widgetAlignment.SetValue(g.cfg.AlignmentWeight)
	g.widgetCohesion.SetValue(g.cfg.CohesionWeight)
	g.widgetPerception.SetValue(g.cfg.PerceptionRadius)
	g.widgetMaxSpeed.SetValue(g.cfg.MaxSpeed)
	g.widgetDrift.SetValue(g.cfg.DriftWeight)
	g.widgetBoidCount.SetValue(float64(g.cfg.NumBoids))
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel (may call reset via the button)
	g.panel.Update()

	// 2. Push slider values into the shared config
	g.cfg.SeparationWeight = g.widgetSeparation.Value
	g.cfg.AlignmentWeight = g.widgetAlignment.Value
	g.cfg.CohesionWeight = g.widgetCohesion.Value
	g.cfg.PerceptionRadius = g.widgetPerception.Value
	g.cfg.DriftWeight = g.widgetDrift.Value
	if g.widgetMaxSpeed.Value != g.cfg.MaxSpeed {
		g.flock.SetMaxSpeed(g.widgetMaxSpeed.Value)
	}
	if n := int(g.widgetBoidCount.Value); n != g.cfg.NumBoids {
		g.flock.SetBoidCount(n)
	}

	// 3. Run one simulation tick
	g.flock.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	showRadius := g.widgetShowRadius.Value
	radiusColor := color.RGBA{R: 100, G: 200, B: 255, A: 40}

	for _, b := range g.flock.Boids() {
		if showRadius {
			vector.StrokeCircle(
				screen,
				float32(b.Pos.X),
				float32(b.Pos.Y),
				float32(g.cfg.PerceptionRadius),
				1,
				radiusColor,
				true,
			)
		}
		drawBoid(screen, b)
	}

	// UI Panel on top of the flock
	g.panel.Draw(screen)

	// Timing breakdown for performance analysis (right side, clear of panel)
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		len(g.flock.Boids()),
		g.updateAvg,
		g.drawAvg,
		g.updateAvg+g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

// drawBoid renders a boid as a small triangle pointing along its heading.
func drawBoid(screen *ebiten.Image, b *boid.Boid) {
	angle := b.Heading()

	tipX := b.Pos.X + math.Cos(angle)*6
	tipY := b.Pos.Y + math.Sin(angle)*6
	rightX := b.Pos.X + math.Cos(angle+2.5)*5
	rightY := b.Pos.Y + math.Sin(angle+2.5)*5
	leftX := b.Pos.X + math.Cos(angle-2.5)*5
	leftY := b.Pos.Y + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}

	screen.DrawTriangles(vertices, indices, whiteImage, op)
}
