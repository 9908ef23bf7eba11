package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/autodock/internal/app"
	"github.com/spacehole-rogue/autodock/internal/config"
	"github.com/spacehole-rogue/autodock/internal/game"
	"github.com/spacehole-rogue/autodock/internal/journal"
	"github.com/spacehole-rogue/autodock/internal/render"
	"github.com/spacehole-rogue/autodock/internal/world"
)

const (
	cellWidth  = 16
	cellHeight = 16
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	cfg      *config.Config
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	hud      render.HUD
	sim      *game.Sim

	now   float64 // frame clock, ms
	frame float64 // ms per update
}

func NewGame(cfg *config.Config, log zerolog.Logger, sc *world.Scenario, store journal.Store) (*Game, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	sim := game.NewSim(sc, cfg.Tuning(), rng)
	sim.Log = log.With().Str("component", "dock").Logger()

	if store != nil {
		rec, err := journal.NewRecorder(store, log.With().Str("component", "journal").Logger())
		if err != nil {
			return nil, err
		}
		sim.Listener = rec
	}

	atlas := render.NewFontAtlas()
	cols, rows := gridSize(cfg.Window)
	return &Game{
		cfg:      cfg,
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(cols, rows),
		hud:      render.HUD{Title: cfg.Window.Title, Scenario: sc.Name},
		sim:      sim,
		frame:    1000 / float64(ebiten.TPS()),
	}, nil
}

// gridSize returns the HUD grid dimensions for a window.
func gridSize(w config.WindowConfig) (cols, rows int) {
	return w.Width / cellWidth, w.Height / cellHeight
}

// readInput snapshots the held flight keys.
func readInput() game.Input {
	var in game.Input
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in |= game.KeyThrust
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in |= game.KeyLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in |= game.KeyRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in |= game.KeyBrake
	}
	return in
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.now += g.frame
	g.sim.Tick(g.now, g.frame, readInput())

	g.hud.Stats = fmt.Sprintf("FPS %.0f TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	g.hud.Draw(g.buffer, g.sim, g.now)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	cam := render.Camera{
		X:      g.sim.Player.X,
		Y:      g.sim.Player.Y,
		Width:  g.cfg.Window.Width,
		Height: g.cfg.Window.Height,
	}
	render.DrawScene(screen, cam, g.sim, g.now)
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configDir := flag.String("config", "", "directory containing "+config.FileName)
	scenario := flag.String("scenario", "", "bundled scenario name or path to a scenario JSON file")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		boot := app.BootLogger(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	env, err := app.Setup(cfg, os.Stdout, *scenario)
	if err != nil {
		boot := app.BootLogger(os.Stderr)
		boot.Fatal().Err(err).Msg("setup")
	}
	defer env.Close()
	log := env.Log

	g, err := NewGame(cfg, log, env.Scenario, env.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("init game")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info().Str("scenario", env.Scenario.Name).Uint64("seed", cfg.Seed).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Error().Err(err).Msg("game exited")
	}
}
