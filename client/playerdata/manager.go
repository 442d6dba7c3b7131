package playerdata

import (
	"context"
	"fmt"

	"github.com/cbodonnell/playerdata/client/objects"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/cbodonnell/playerdata/pkg/state"
)

// SceneReloader reloads the active scene. The reload may happen after the
// call returns; the current scene and its Manager are then destroyed.
type SceneReloader interface {
	ReloadScene() error
}

// ResourceInstantiator builds named resources into the scene graph.
type ResourceInstantiator interface {
	Instantiate(name string, parent objects.GameObject, offset kinematic.Vector) (objects.GameObject, error)
}

// Manager owns the player profile of a scene.
// It is not safe for concurrent use; it lives on the game loop.
type Manager struct {
	data       *types.PlayerData
	repository repositories.Repository
	slot       string
	handoff    state.Handoff
	reloader   SceneReloader
	resources  ResourceInstantiator
}

type NewManagerOptions struct {
	// Repository persists the profile. Required.
	Repository repositories.Repository
	// Slot is the save slot; defaults to constants.DefaultSaveSlot.
	Slot string
	// Handoff carries a loaded profile across scene reloads. Required.
	Handoff state.Handoff
	// Reloader is asked to reload the scene by LoadGame(ctx, true).
	Reloader SceneReloader
	// Resources resolves InstantiateResource names.
	Resources ResourceInstantiator
}

func NewManager(opts NewManagerOptions) *Manager {
	slot := opts.Slot
	if slot == "" {
		slot = constants.DefaultSaveSlot
	}
	return &Manager{
		repository: opts.Repository,
		slot:       slot,
		handoff:    opts.Handoff,
		reloader:   opts.Reloader,
		resources:  opts.Resources,
	}
}

// Initialize creates a fresh profile, or adopts the profile pending in the
// handoff when a loaded game is in use. The pending profile is consumed.
func (m *Manager) Initialize() {
	if !m.handoff.UseLoadedGame() {
		m.data = types.NewPlayerData()
		return
	}

	data, ok := m.handoff.Take()
	if !ok {
		// set by SaveSettings without a reload
		log.Debug("No pending player data in handoff, starting a new profile")
		m.data = types.NewPlayerData()
		return
	}
	m.data = data
}

// IsDataLoaded reports whether a profile is present.
func (m *Manager) IsDataLoaded() bool {
	return m.data != nil
}

// FindWeapon returns the first weapon with the tag.
// It returns false when there is none or the manager is not initialized.
func (m *Manager) FindWeapon(tag types.WeaponTag) (*types.WeaponData, bool) {
	if m.data == nil {
		return nil, false
	}
	for _, weaponData := range m.data.Weapons {
		if weaponData.Tag == tag {
			return weaponData, true
		}
	}
	return nil, false
}

// GetWeapon is FindWeapon with errors for the absent cases.
func (m *Manager) GetWeapon(tag types.WeaponTag) (*types.WeaponData, error) {
	if m.data == nil {
		return nil, ErrNotInitialized
	}
	weaponData, ok := m.FindWeapon(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWeaponNotFound, tag)
	}
	return weaponData, nil
}

// GetAllWeapons returns the live weapon collection, not a copy.
func (m *Manager) GetAllWeapons() ([]*types.WeaponData, error) {
	if m.data == nil {
		return nil, ErrNotInitialized
	}
	return m.data.Weapons, nil
}

// Snapshot returns a deep copy of the profile.
func (m *Manager) Snapshot() (*types.PlayerData, error) {
	if m.data == nil {
		return nil, ErrNotInitialized
	}
	return m.data.Copy(), nil
}

// InstantiateResource builds the named resource under parent, positioned at
// the parent's world position plus offset.
func (m *Manager) InstantiateResource(name string, parent objects.GameObject, offset kinematic.Vector) (objects.GameObject, error) {
	if m.resources == nil {
		return nil, fmt.Errorf("no resource registry configured")
	}
	log.Debug("Trying to load resource %s", name)
	obj, err := m.resources.Instantiate(name, parent, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate resource: %w", err)
	}
	return obj, nil
}

// SaveGame writes the profile to the save slot, replacing any previous save.
func (m *Manager) SaveGame(ctx context.Context) error {
	if m.data == nil {
		return ErrNotInitialized
	}
	if err := m.repository.SavePlayerData(ctx, m.slot, m.data); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	log.Debug("Saved player data %s to slot %s", m.data.ID, m.slot)
	return nil
}

// LoadGame reads the save slot. A missing save is not an error.
// With reloadScene the loaded profile goes through the handoff and the scene
// is reloaded; otherwise it replaces the in-memory profile.
func (m *Manager) LoadGame(ctx context.Context, reloadScene bool) error {
	data, err := m.repository.LoadPlayerData(ctx, m.slot)
	if err != nil {
		if repositories.IsNotFound(err) {
			log.Info("No save files!")
			return nil
		}
		return fmt.Errorf("failed to load game: %w", err)
	}

	if !reloadScene {
		m.data = data
		return nil
	}

	if m.reloader == nil {
		return fmt.Errorf("no scene reloader configured")
	}
	useLoadedGame := m.handoff.UseLoadedGame()
	m.handoff.Put(data)
	if err := m.reloader.ReloadScene(); err != nil {
		// no scene will take the profile
		m.handoff.Take()
		m.handoff.SetUseLoadedGame(useLoadedGame)
		return fmt.Errorf("failed to reload scene: %w", err)
	}
	return nil
}

// SaveSettings updates the settings, saves the game and marks the loaded
// game as in use.
func (m *Manager) SaveSettings(ctx context.Context, vfxVolume, musicVolume, difficulty float32) error {
	if m.data == nil {
		return ErrNotInitialized
	}
	log.Debug("Saving vfx: %v", vfxVolume)
	m.data.UpdateSettings(vfxVolume, musicVolume, difficulty)
	if err := m.SaveGame(ctx); err != nil {
		return err
	}
	m.handoff.SetUseLoadedGame(true)
	return nil
}

// LoadSettings returns [vfx, music, difficulty]. Without a loaded game in use
// the profile is first refreshed from the save slot.
func (m *Manager) LoadSettings(ctx context.Context) ([3]float32, error) {
	if !m.handoff.UseLoadedGame() {
		if err := m.LoadGame(ctx, false); err != nil {
			return [3]float32{}, err
		}
	}
	if m.data == nil {
		return [3]float32{}, ErrNotInitialized
	}
	return m.data.GetSettings(), nil
}

func (m *Manager) GetVfxVolume(ctx context.Context) (float32, error) {
	settings, err := m.LoadSettings(ctx)
	if err != nil {
		return 0, err
	}
	return settings[0], nil
}
