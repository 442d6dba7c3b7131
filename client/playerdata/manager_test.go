package playerdata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/playerdata/client/assets"
	"github.com/cbodonnell/playerdata/client/objects"
	mocks "github.com/cbodonnell/playerdata/mocks/github.com/cbodonnell/playerdata/client/playerdata"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/cbodonnell/playerdata/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	manager    *Manager
	repository *repositories.FileRepository
	handoff    *state.InMemoryHandoff
	reloader   *mocks.SceneReloader
}

func newFixture(t *testing.T) *fixture {
	repository, err := repositories.NewFileRepository(t.TempDir())
	require.NoError(t, err)

	registry, err := assets.NewEmbeddedRegistry()
	require.NoError(t, err)

	f := &fixture{
		repository: repository,
		handoff:    state.NewInMemoryHandoff(),
		reloader:   mocks.NewSceneReloader(t),
	}
	f.manager = NewManager(NewManagerOptions{
		Repository: repository,
		Handoff:    f.handoff,
		Reloader:   f.reloader,
		Resources:  registry,
	})
	return f
}

// newScene builds the manager of the next scene, sharing storage and handoff.
func (f *fixture) newScene() *Manager {
	return NewManager(NewManagerOptions{
		Repository: f.repository,
		Handoff:    f.handoff,
		Reloader:   f.reloader,
	})
}

func weapons(tags ...types.WeaponTag) []*types.WeaponData {
	out := make([]*types.WeaponData, 0, len(tags))
	for i, tag := range tags {
		out = append(out, &types.WeaponData{Tag: tag, Level: int32(i + 1)})
	}
	return out
}

func TestManager_InitializeFresh(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.manager.IsDataLoaded())

	f.manager.Initialize()

	assert.True(t, f.manager.IsDataLoaded())
	all, err := f.manager.GetAllWeapons()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestManager_InitializeAdoptsHandoff(t *testing.T) {
	f := newFixture(t)
	pending := types.NewPlayerData()
	pending.Weapons = weapons(types.WeaponTagRifle)
	f.handoff.Put(pending)

	f.manager.Initialize()

	snapshot, err := f.manager.Snapshot()
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(pending))

	_, ok := f.handoff.Take()
	assert.False(t, ok, "handoff must be consumed by Initialize")
}

func TestManager_InitializeStaleFlag(t *testing.T) {
	f := newFixture(t)
	f.handoff.SetUseLoadedGame(true)

	f.manager.Initialize()

	assert.True(t, f.manager.IsDataLoaded())
}

func TestManager_FindWeapon(t *testing.T) {
	tests := []struct {
		name      string
		weapons   []*types.WeaponData
		tag       types.WeaponTag
		wantFound bool
		wantLevel int32
	}{
		{
			name:      "first of duplicates",
			weapons:   weapons(types.WeaponTagPistol, types.WeaponTagRifle, types.WeaponTagRifle),
			tag:       types.WeaponTagRifle,
			wantFound: true,
			wantLevel: 2,
		},
		{
			name:      "tag in no record",
			weapons:   weapons(types.WeaponTagPistol, types.WeaponTagShotgun),
			tag:       types.WeaponTagLaser,
			wantFound: false,
		},
		{
			name:      "empty collection",
			weapons:   weapons(),
			tag:       types.WeaponTagPistol,
			wantFound: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.manager.Initialize()
			f.manager.data.Weapons = tt.weapons

			got, found := f.manager.FindWeapon(tt.tag)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantLevel, got.Level)
			}

			_, err := f.manager.GetWeapon(tt.tag)
			if tt.wantFound {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeaponNotFound)
			}
		})
	}
}

func TestManager_GetAllWeaponsIsLive(t *testing.T) {
	f := newFixture(t)
	f.manager.Initialize()
	f.manager.data.Weapons = weapons(types.WeaponTagPistol)

	all, err := f.manager.GetAllWeapons()
	require.NoError(t, err)
	all[0].Ammo = 6

	got, _ := f.manager.FindWeapon(types.WeaponTagPistol)
	assert.Equal(t, int32(6), got.Ammo)
}

func TestManager_NotInitialized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, found := f.manager.FindWeapon(types.WeaponTagPistol)
	assert.False(t, found)

	_, err := f.manager.GetWeapon(types.WeaponTagPistol)
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = f.manager.GetAllWeapons()
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.ErrorIs(t, f.manager.SaveGame(ctx), ErrNotInitialized)
	assert.ErrorIs(t, f.manager.SaveSettings(ctx, 1, 1, 1), ErrNotInitialized)

	// nothing on disk to fall back to
	_, err = f.manager.LoadSettings(ctx)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.manager.Initialize()
	f.manager.data.Weapons = weapons(types.WeaponTagShotgun, types.WeaponTagLaser)
	f.manager.data.UpdateSettings(0.3, 0.6, 1.5)
	saved, err := f.manager.Snapshot()
	require.NoError(t, err)

	require.NoError(t, f.manager.SaveGame(ctx))
	path := f.repository.Path(constants.DefaultSaveSlot)
	assert.Equal(t, "player.data", filepath.Base(path))
	_, err = os.Stat(path)
	require.NoError(t, err)

	// diverge the in-memory copy, then load it back
	f.manager.data.Weapons = nil
	f.manager.data.UpdateSettings(0, 0, 0)
	require.NoError(t, f.manager.LoadGame(ctx, false))

	loaded, err := f.manager.Snapshot()
	require.NoError(t, err)
	assert.True(t, loaded.Equal(saved))
}

func TestManager_LoadGameMissingFile(t *testing.T) {
	f := newFixture(t)
	f.manager.Initialize()
	before := f.manager.data

	require.NoError(t, f.manager.LoadGame(context.Background(), false))
	assert.Same(t, before, f.manager.data)

	// a reload without a save must not touch the scene either
	require.NoError(t, f.manager.LoadGame(context.Background(), true))
	assert.False(t, f.handoff.UseLoadedGame())
}

func TestManager_LoadGameReloadsScene(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.manager.Initialize()
	f.manager.data.Weapons = weapons(types.WeaponTagLauncher)
	require.NoError(t, f.manager.SaveGame(ctx))
	saved, _ := f.manager.Snapshot()

	f.reloader.EXPECT().ReloadScene().Return(nil).Once()
	require.NoError(t, f.manager.LoadGame(ctx, true))
	assert.True(t, f.handoff.UseLoadedGame())

	next := f.newScene()
	next.Initialize()

	adopted, err := next.Snapshot()
	require.NoError(t, err)
	assert.True(t, adopted.Equal(saved))

	_, pending := f.handoff.Take()
	assert.False(t, pending, "handoff must be empty after the next Initialize")
}

func TestManager_LoadGameReloadError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.manager.Initialize()
	require.NoError(t, f.manager.SaveGame(ctx))

	f.reloader.EXPECT().ReloadScene().Return(errors.New("no active scene")).Once()
	assert.Error(t, f.manager.LoadGame(ctx, true))

	// the failed reload leaves nothing for the next scene
	_, pending := f.handoff.Take()
	assert.False(t, pending)
	assert.False(t, f.handoff.UseLoadedGame())
}

func TestManager_SaveSettings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.manager.Initialize()

	require.NoError(t, f.manager.SaveSettings(ctx, 0.2, 0.8, 3))
	assert.True(t, f.handoff.UseLoadedGame())

	stored, err := f.repository.LoadPlayerData(ctx, constants.DefaultSaveSlot)
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0.2, 0.8, 3}, stored.GetSettings())

	// with the flag set LoadSettings serves memory without touching disk
	settings, err := f.manager.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0.2, 0.8, 3}, settings)
}

func TestManager_GetVfxVolumeLoadsFromDisk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	existing := types.NewPlayerData()
	existing.UpdateSettings(0.7, 0.4, 2.0)
	require.NoError(t, f.repository.SavePlayerData(ctx, constants.DefaultSaveSlot, existing))

	f.manager.Initialize()
	vfx, err := f.manager.GetVfxVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(0.7), vfx)

	settings, err := f.manager.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0.7, 0.4, 2.0}, settings)
}

func TestManager_SaveGameIOError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	repository, err := repositories.NewFileRepository(dir)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("blocker"), 0o644))

	m := NewManager(NewManagerOptions{
		Repository: repository,
		Handoff:    state.NewInMemoryHandoff(),
	})
	m.Initialize()

	err = m.SaveGame(context.Background())
	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr), "want *os.PathError, got %v", err)

	// a failed save leaves the flag untouched
	assert.Error(t, m.SaveSettings(context.Background(), 1, 1, 1))
}

func TestManager_InstantiateResource(t *testing.T) {
	f := newFixture(t)
	parent := objects.NewBaseObject("spawn", &objects.NewBaseObjectOpts{
		Position: kinematic.Vector{X: 5, Y: 5},
	})

	obj, err := f.manager.InstantiateResource("pickups/weapon_crate", parent, kinematic.Vector{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, kinematic.Vector{X: 6, Y: 7}, obj.GetWorldPosition())
	assert.Same(t, parent, obj.GetParent())

	_, err = f.manager.InstantiateResource("levels/nowhere", parent, kinematic.Vector{})
	assert.ErrorIs(t, err, assets.ErrResourceNotFound)
}
