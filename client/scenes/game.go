package scenes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/playerdata/client/flow"
	"github.com/cbodonnell/playerdata/client/input"
	"github.com/cbodonnell/playerdata/client/objects"
	"github.com/cbodonnell/playerdata/client/playerdata"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/cbodonnell/playerdata/pkg/state"
	"github.com/cbodonnell/playerdata/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// WeaponCratePrefab is spawned once per weapon in the profile.
	WeaponCratePrefab = "pickups/weapon_crate"
	// VolumeStep is the change applied by one volume action.
	VolumeStep float32 = 0.1
)

var (
	// weaponCrateOrigin is the offset of the first crate from the level origin.
	weaponCrateOrigin  = kinematic.Vector{X: 48, Y: 416}
	weaponCrateSpacing = 40.0
)

type GameScene struct {
	*BaseScene

	ctx     context.Context
	manager *playerdata.Manager
	input   input.Source
	mode    flow.GameMode

	// saveDataChan receives profile snapshots for the autosave worker.
	saveDataChan  chan<- workers.SavePlayerDataRequest
	autosaveTicks int
	ticks         int

	// leaving is set once a reload of the scene was requested.
	leaving bool

	hud string
}

type NewGameSceneOptions struct {
	// Ctx bounds the storage calls made by the scene.
	Ctx        context.Context
	Repository repositories.Repository
	Slot       string
	Handoff    state.Handoff
	Reloader   playerdata.SceneReloader
	Resources  playerdata.ResourceInstantiator
	Input      input.Source
	// SaveDataChan is optional; without it the scene does not autosave.
	SaveDataChan chan<- workers.SavePlayerDataRequest
	// AutosaveTicks is the number of updates between autosave snapshots.
	AutosaveTicks int
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	if opts.Repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if opts.Handoff == nil {
		return nil, fmt.Errorf("handoff is required")
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	g := &GameScene{
		BaseScene:     NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		ctx:           ctx,
		input:         opts.Input,
		mode:          flow.GameModeLoading,
		saveDataChan:  opts.SaveDataChan,
		autosaveTicks: opts.AutosaveTicks,
	}

	var reloader playerdata.SceneReloader
	if opts.Reloader != nil {
		reloader = &leavingReloader{scene: g, next: opts.Reloader}
	}
	g.manager = playerdata.NewManager(playerdata.NewManagerOptions{
		Repository: opts.Repository,
		Slot:       opts.Slot,
		Handoff:    opts.Handoff,
		Reloader:   reloader,
		Resources:  opts.Resources,
	})

	return g, nil
}

// leavingReloader marks the scene as leaving once the reload is queued.
type leavingReloader struct {
	scene *GameScene
	next  playerdata.SceneReloader
}

func (r *leavingReloader) ReloadScene() error {
	if err := r.next.ReloadScene(); err != nil {
		return err
	}
	r.scene.leaving = true
	return nil
}

// Manager returns the player data manager of the scene.
func (g *GameScene) Manager() *playerdata.Manager {
	return g.manager
}

func (g *GameScene) Mode() flow.GameMode {
	return g.mode
}

func (g *GameScene) Init() error {
	if err := g.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %v", err)
	}

	g.manager.Initialize()

	level, err := g.manager.InstantiateResource(constants.LevelPrefab, g.Root, kinematic.Vector{})
	if err != nil {
		g.mode = flow.GameModeError
		return fmt.Errorf("failed to load level: %v", err)
	}

	weapons, err := g.manager.GetAllWeapons()
	if err != nil {
		g.mode = flow.GameModeError
		return err
	}
	for i, weaponData := range weapons {
		offset := weaponCrateOrigin.Add(kinematic.Vector{X: float64(i) * weaponCrateSpacing})
		if _, err := g.manager.InstantiateResource(WeaponCratePrefab, level, offset); err != nil {
			g.mode = flow.GameModeError
			return fmt.Errorf("failed to spawn crate for %s: %v", weaponData.Tag, err)
		}
	}

	g.mode = flow.GameModePlay
	g.refreshHUD()
	return nil
}

func (g *GameScene) Update() error {
	if g.mode != flow.GameModePlay {
		return nil
	}

	if g.input != nil {
		for _, action := range g.input.JustPressedActions() {
			// the profile is being replaced, later actions would act on the old one
			if g.leaving {
				break
			}
			if err := g.handleAction(action); err != nil {
				log.Error("Failed to handle %s: %v", action, err)
			}
		}
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	g.ticks++
	if !g.leaving && g.autosaveTicks > 0 && g.ticks%g.autosaveTicks == 0 {
		g.autosave()
	}

	g.refreshHUD()
	return nil
}

func (g *GameScene) handleAction(action input.Action) error {
	switch action {
	case input.ActionSave:
		return g.manager.SaveGame(g.ctx)
	case input.ActionLoad:
		// pending autosaves hold the state being replaced
		g.sendSaveRequest(workers.SavePlayerDataRequest{Timestamp: time.Now().UnixMilli()})
		return g.manager.LoadGame(g.ctx, true)
	case input.ActionVolumeUp:
		return g.changeSettings(func(vfx, music, difficulty float32) (float32, float32, float32) {
			return clamp(vfx+VolumeStep, 0, constants.MaxVolume), music, difficulty
		})
	case input.ActionVolumeDown:
		return g.changeSettings(func(vfx, music, difficulty float32) (float32, float32, float32) {
			return clamp(vfx-VolumeStep, 0, constants.MaxVolume), music, difficulty
		})
	case input.ActionNextDifficulty:
		return g.changeSettings(func(vfx, music, difficulty float32) (float32, float32, float32) {
			next := difficulty + 1
			if next > constants.MaxDifficulty {
				next = constants.DefaultDifficulty
			}
			return vfx, music, next
		})
	}
	return fmt.Errorf("unknown action %d", action)
}

func (g *GameScene) changeSettings(change func(vfx, music, difficulty float32) (float32, float32, float32)) error {
	snapshot, err := g.manager.Snapshot()
	if err != nil {
		return err
	}
	s := snapshot.Settings
	vfx, music, difficulty := change(s.VfxVolume, s.MusicVolume, s.Difficulty)
	return g.manager.SaveSettings(g.ctx, vfx, music, difficulty)
}

func (g *GameScene) autosave() {
	snapshot, err := g.manager.Snapshot()
	if err != nil {
		log.Warn("Skipping autosave: %v", err)
		return
	}
	g.sendSaveRequest(workers.SavePlayerDataRequest{
		Timestamp:  time.Now().UnixMilli(),
		PlayerData: snapshot,
	})
}

func (g *GameScene) sendSaveRequest(req workers.SavePlayerDataRequest) {
	if g.saveDataChan == nil {
		return
	}
	select {
	case g.saveDataChan <- req:
	default:
		log.Warn("Save worker is busy, dropping save request")
	}
}

func (g *GameScene) refreshHUD() {
	snapshot, err := g.manager.Snapshot()
	if err != nil {
		g.hud = fmt.Sprintf("Mode: %s", g.mode)
		return
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "Mode: %s\n", g.mode)
	fmt.Fprintf(b, "VFX: %.1f  Music: %.1f  Difficulty: %.0f\n", snapshot.Settings.VfxVolume, snapshot.Settings.MusicVolume, snapshot.Settings.Difficulty)
	fmt.Fprintf(b, "Weapons: %d\n", len(snapshot.Weapons))
	b.WriteString("F5 save  F9 load  +/- volume  D difficulty")
	g.hud = b.String()
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	g.BaseScene.Draw(screen)
	ebitenutil.DebugPrint(screen, g.hud)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
