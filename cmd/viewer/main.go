// Package main provides an effect pack viewer for testing and tuning
// confetti packs without going through the full celebration flow.
//
// Usage:
//
//	go run cmd/viewer/main.go [flags]
//
// Flags:
//
//	--pack <path>        Effect pack XML to load (default data/effects/celebration.xml)
//	--duration <dur>     Celebration length (default 15s)
//	--interval <dur>     Scheduler tick period (default 250ms)
//	--particles <n>      Particle budget at full remaining time (default 50)
//	--verbose            Enable verbose logging (default off)
//
// Controls:
//
//	Mouse Click  - Fire a single burst at the cursor
//	Space        - Start a full celebration session
//	Escape       - Cancel the running session
//	R            - Clear all active particles
//	Q            - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/confetti/internal/effect"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/confetti"
	"github.com/decker502/confetti/pkg/ecs"
	"github.com/decker502/confetti/pkg/systems"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var (
	packFlag      = flag.String("pack", "data/effects/celebration.xml", "Effect pack XML to load")
	durationFlag  = flag.Duration("duration", confetti.DefaultDuration, "Celebration length")
	intervalFlag  = flag.Duration("interval", confetti.DefaultTickInterval, "Scheduler tick period")
	particlesFlag = flag.Float64("particles", confetti.DefaultMaxParticles, "Particle budget at full remaining time")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("viewer closed")

// ViewerGame implements ebiten.Game for the pack viewer.
type ViewerGame struct {
	entityManager  *ecs.EntityManager
	particleSystem *systems.ParticleSystem
	renderSystem   *systems.RenderSystem

	loader     *confetti.Loader
	sessionCfg confetti.SessionConfig
	session    *confetti.Session

	lastStart time.Time
}

// NewViewerGame loads the pack and wires the particle pipeline.
func NewViewerGame(packPath string) (*ViewerGame, error) {
	data, err := os.ReadFile(packPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pack: %w", err)
	}
	pack, err := effect.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pack: %w", err)
	}

	em := ecs.NewEntityManager()
	ps := systems.NewParticleSystem(em, pack, screenWidth, screenHeight)

	sessionCfg := confetti.DefaultSessionConfig()
	sessionCfg.Duration = *durationFlag
	sessionCfg.TickInterval = *intervalFlag
	sessionCfg.MaxParticles = *particlesFlag

	g := &ViewerGame{
		entityManager:  em,
		particleSystem: ps,
		renderSystem:   systems.NewRenderSystem(em),
		sessionCfg:     sessionCfg,
	}
	g.loader = confetti.NewLoader(nil)
	g.loader.SetRenderer(ps)
	return g, nil
}

func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.session != nil {
			g.session.Stop()
		}
		g.session = confetti.StartSession(g.loader, g.sessionCfg)
		g.lastStart = time.Now()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.session != nil {
		g.session.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.clearParticles()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		burst := confetti.DefaultBurst()
		burst.ParticleCount = g.sessionCfg.MaxParticles
		burst.Origin = confetti.Origin{
			X: float64(x) / screenWidth,
			Y: float64(y) / screenHeight,
		}
		g.particleSystem.Fire(burst)
	}

	g.particleSystem.Update(1.0 / float64(ebiten.TPS()))
	g.entityManager.RemoveMarkedEntities()
	return nil
}

func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	g.renderSystem.Draw(screen)

	status := fmt.Sprintf("click: burst  space: session  esc: cancel  r: clear  q: quit\nparticles: %d",
		g.particleSystem.ActiveParticles())
	if g.session != nil {
		select {
		case <-g.session.Done():
			status += "  session: finished"
		default:
			status += fmt.Sprintf("  session: running %s", time.Since(g.lastStart).Round(time.Second))
		}
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *ViewerGame) clearParticles() {
	for _, id := range ecs.EntitiesWith1[*components.ParticleComponent](g.entityManager) {
		g.entityManager.DestroyEntity(id)
	}
	g.entityManager.RemoveMarkedEntities()
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	game, err := NewViewerGame(*packFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Confetti Pack Viewer")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
