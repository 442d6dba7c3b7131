package game

import (
	"fmt"

	"github.com/cbodonnell/playerdata/client/flow"
	"github.com/cbodonnell/playerdata/client/input"
	"github.com/cbodonnell/playerdata/client/playerdata"
	"github.com/cbodonnell/playerdata/client/scenes"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/queue"
	"github.com/cbodonnell/playerdata/pkg/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// handoff carries a loaded profile from one scene to the next.
	handoff state.Handoff
	// transitions holds the scene transitions requested since the last update.
	transitions queue.Queue
	// newScene builds the scene that is loaded on start and on every reload.
	newScene SceneFactory
	// quitRequested reports whether the player asked to leave the game.
	quitRequested func() bool
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
}

// SceneFactory builds a scene that reloads itself through reloader and
// exchanges loaded profiles through handoff.
type SceneFactory func(reloader playerdata.SceneReloader, handoff state.Handoff) (scenes.Scene, error)

type transition int

const (
	transitionReload transition = iota
)

// DefaultTransitionQueueSize bounds the reloads that can be requested within one update.
const DefaultTransitionQueueSize = 8

type NewGameOptions struct {
	Debug bool
	// NewScene is required.
	NewScene SceneFactory
	// Handoff defaults to an in-memory handoff.
	Handoff state.Handoff
	// Transitions defaults to an in-memory queue.
	Transitions queue.Queue
	// QuitRequested defaults to the negative input.
	QuitRequested func() bool
}

var _ playerdata.SceneReloader = &Game{}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.NewScene == nil {
		return nil, fmt.Errorf("scene factory is required")
	}
	handoff := opts.Handoff
	if handoff == nil {
		handoff = state.NewInMemoryHandoff()
	}
	transitions := opts.Transitions
	if transitions == nil {
		transitions = queue.NewInMemoryQueue(DefaultTransitionQueueSize)
	}
	quitRequested := opts.QuitRequested
	if quitRequested == nil {
		quitRequested = input.IsNegativeJustPressed
	}

	g := &Game{
		debug:         opts.Debug,
		handoff:       handoff,
		transitions:   transitions,
		newScene:      opts.NewScene,
		quitRequested: quitRequested,
	}

	if err := g.loadScene(); err != nil {
		return nil, fmt.Errorf("failed to load game scene: %v", err)
	}

	return g, nil
}

// ReloadScene requests a reload of the current scene. The scene is replaced
// at the start of the next update, so the caller finishes its frame first.
func (g *Game) ReloadScene() error {
	if err := g.transitions.Enqueue(transitionReload); err != nil {
		return fmt.Errorf("failed to enqueue scene reload: %w", err)
	}
	return nil
}

func (g *Game) Mode() flow.GameMode {
	return g.mode
}

func (g *Game) Scene() scenes.Scene {
	return g.scene
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadScene() error {
	scene, err := g.newScene(g, g.handoff)
	if err != nil {
		g.mode = flow.GameModeError
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		g.mode = flow.GameModeError
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = flow.GameModePlay
	return nil
}

func (g *Game) Update() error {
	if g.quitRequested() {
		return ebiten.Termination
	}

	if err := g.processTransitions(); err != nil {
		return fmt.Errorf("failed to process scene transitions: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

// processTransitions applies the queued transitions. Several reloads in one
// frame rebuild the scene once.
func (g *Game) processTransitions() error {
	if g.transitions.Size() == 0 {
		return nil
	}
	items, err := g.transitions.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read transitions: %v", err)
	}

	reload := false
	for _, item := range items {
		switch item {
		case transitionReload:
			reload = true
		default:
			log.Warn("Unknown scene transition: %v", item)
		}
	}
	if !reload {
		return nil
	}

	log.Debug("Reloading game scene")
	return g.loadScene()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	y := constants.ScreenHeight - 32
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 0, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 0, y+16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return constants.ScreenWidth, constants.ScreenHeight
}
