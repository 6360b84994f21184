package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/confetti/pkg/confetti"
	"github.com/decker502/confetti/pkg/config"
	"github.com/decker502/confetti/pkg/ecs"
	"github.com/decker502/confetti/pkg/pack"
	"github.com/decker502/confetti/pkg/systems"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Game is the interactive demo: space fires a celebration, escape
// cancels it. The renderer is built lazily by the loader the first
// time a celebration starts.
type Game struct {
	cfg    *config.CelebrationConfig
	loader *confetti.Loader

	mu        sync.Mutex
	em        *ecs.EntityManager
	particles *systems.ParticleSystem
	render    *systems.RenderSystem

	session *confetti.Session
}

// buildRenderer returns the deferred renderer constructor handed to
// the loader. It resolves the effect pack (cache, remote, embedded)
// and wires the particle pipeline; the loader runs it off the frame
// loop, so the built systems are published under the mutex.
func (g *Game) buildRenderer(packManager *pack.Manager) confetti.FetchFunc {
	return func() (confetti.Renderer, error) {
		effectPack, err := packManager.Resolve(g.cfg.Effect)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve effect pack: %w", err)
		}

		em := ecs.NewEntityManager()
		particles := systems.NewParticleSystem(em, effectPack, screenWidth, screenHeight)
		render := systems.NewRenderSystem(em)

		g.mu.Lock()
		g.em = em
		g.particles = particles
		g.render = render
		g.mu.Unlock()

		return particles, nil
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.session != nil {
			g.session.Stop()
		}
		g.session = confetti.StartSession(g.loader, g.cfg.SessionConfig())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.session != nil {
		g.session.Stop()
	}

	g.mu.Lock()
	em, particles := g.em, g.particles
	g.mu.Unlock()

	if particles != nil {
		particles.Update(1.0 / float64(ebiten.TPS()))
		em.RemoveMarkedEntities()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	g.mu.Lock()
	render, particles := g.render, g.particles
	g.mu.Unlock()

	if render != nil {
		render.Draw(screen)
	}

	active := 0
	if particles != nil {
		active = particles.ActiveParticles()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("space: celebrate  esc: cancel  particles: %d", active))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg := config.Load("celebration.yaml")

	gdataManager, err := gdata.Open(gdata.Config{AppName: "confetti"})
	if err != nil {
		log.Printf("[Main] Warning: persistent pack cache unavailable: %v", err)
		gdataManager = nil
	}

	effectsFS, err := fs.Sub(dataFS, "data/effects")
	if err != nil {
		log.Printf("[Main] Warning: embedded packs unavailable: %v", err)
		effectsFS = nil
	}

	packManager := pack.NewManager(gdataManager, effectsFS, cfg.PackURL)

	game := &Game{cfg: cfg}
	game.loader = confetti.NewLoader(game.buildRenderer(packManager))
	confetti.SetLoader(game.loader)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Confetti")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
