// Package ebitengine mounts a pyg engine in an Ebitengine game loop.
//
// The core stays graphics-free; this adapter forwards Ebitengine ticks to
// the engine and hands the screen to an optional render hook.
package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	pyg "github.com/aram-ap/pyg-engine"
)

// Game adapts a pyg.Engine to the ebiten.Game interface.
type Game struct {
	Engine *pyg.Engine

	// Render, if set, is called once per frame with the screen after the
	// engine has stepped. The core never draws on its own.
	Render func(screen *ebiten.Image)

	// Width and Height are the logical layout dimensions.
	Width, Height int
}

// Update steps the engine by one Ebitengine tick.
func (g *Game) Update() error {
	g.Engine.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw invokes the render hook, if any.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Render != nil {
		g.Render(screen)
	}
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int

	// Render is the optional per-frame render hook.
	Render func(screen *ebiten.Image)
}

// Run opens a window and drives the engine until the window closes or the
// engine stops. The engine's tick rate becomes the Ebitengine TPS.
func Run(engine *pyg.Engine, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(engine.TickRate())
	engine.Start()
	defer engine.Stop()
	return ebiten.RunGame(&Game{
		Engine: engine,
		Render: cfg.Render,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
}
