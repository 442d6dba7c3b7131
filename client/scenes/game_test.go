package scenes

import (
	"context"
	"testing"

	"github.com/cbodonnell/playerdata/client/assets"
	"github.com/cbodonnell/playerdata/client/flow"
	"github.com/cbodonnell/playerdata/client/input"
	mocks "github.com/cbodonnell/playerdata/mocks/github.com/cbodonnell/playerdata/client/playerdata"
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/cbodonnell/playerdata/pkg/state"
	"github.com/cbodonnell/playerdata/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInput replays one batch of actions per update.
type fakeInput struct {
	batches [][]input.Action
}

func (f *fakeInput) press(actions ...input.Action) {
	f.batches = append(f.batches, actions)
}

func (f *fakeInput) JustPressedActions() []input.Action {
	if len(f.batches) == 0 {
		return nil
	}
	actions := f.batches[0]
	f.batches = f.batches[1:]
	return actions
}

type sceneFixture struct {
	repository   *repositories.InMemoryRepository
	handoff      *state.InMemoryHandoff
	reloader     *mocks.SceneReloader
	input        *fakeInput
	saveDataChan chan workers.SavePlayerDataRequest
}

func newSceneFixture(t *testing.T) *sceneFixture {
	return &sceneFixture{
		repository:   repositories.NewInMemoryRepository(),
		handoff:      state.NewInMemoryHandoff(),
		reloader:     mocks.NewSceneReloader(t),
		input:        &fakeInput{},
		saveDataChan: make(chan workers.SavePlayerDataRequest, 4),
	}
}

func (f *sceneFixture) newScene(t *testing.T, autosaveTicks int) *GameScene {
	t.Helper()
	registry, err := assets.NewEmbeddedRegistry()
	require.NoError(t, err)

	scene, err := NewGameScene(NewGameSceneOptions{
		Repository:    f.repository,
		Handoff:       f.handoff,
		Reloader:      f.reloader,
		Resources:     registry,
		Input:         f.input,
		SaveDataChan:  f.saveDataChan,
		AutosaveTicks: autosaveTicks,
	})
	require.NoError(t, err)
	require.NoError(t, scene.Init())
	return scene
}

func TestNewGameScene_requiresStorage(t *testing.T) {
	_, err := NewGameScene(NewGameSceneOptions{Handoff: state.NewInMemoryHandoff()})
	assert.Error(t, err)

	_, err = NewGameScene(NewGameSceneOptions{Repository: repositories.NewInMemoryRepository()})
	assert.Error(t, err)
}

func TestGameScene_InitFresh(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 0)

	assert.Equal(t, flow.GameModePlay, scene.Mode())
	assert.True(t, scene.Manager().IsDataLoaded())

	children := scene.GetRoot().GetChildren()
	require.Len(t, children, 1)
	// the arena has three platforms and no crates
	assert.Len(t, children[0].GetChildren(), 3)
}

func TestGameScene_InitFromHandoff(t *testing.T) {
	f := newSceneFixture(t)
	loaded := types.NewPlayerData()
	loaded.Weapons = []*types.WeaponData{
		types.NewWeaponData(types.WeaponTagPistol),
		types.NewWeaponData(types.WeaponTagRifle),
	}
	f.handoff.Put(loaded)

	scene := f.newScene(t, 0)

	snapshot, err := scene.Manager().Snapshot()
	require.NoError(t, err)
	assert.True(t, loaded.Equal(snapshot))

	level := scene.GetRoot().GetChildren()[0]
	assert.Len(t, level.GetChildren(), 3+2)
}

func TestGameScene_SaveAction(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 0)

	f.input.press(input.ActionSave)
	require.NoError(t, scene.Update())

	saved, err := f.repository.LoadPlayerData(context.Background(), constants.DefaultSaveSlot)
	require.NoError(t, err)
	snapshot, err := scene.Manager().Snapshot()
	require.NoError(t, err)
	assert.True(t, saved.Equal(snapshot))
}

func TestGameScene_LoadActionReloads(t *testing.T) {
	f := newSceneFixture(t)
	saved := types.NewPlayerData()
	saved.UpdateSettings(0.3, 0.3, 2)
	require.NoError(t, f.repository.SavePlayerData(context.Background(), constants.DefaultSaveSlot, saved))

	scene := f.newScene(t, 0)
	f.reloader.EXPECT().ReloadScene().Return(nil).Once()

	f.input.press(input.ActionLoad)
	require.NoError(t, scene.Update())

	assert.True(t, f.handoff.UseLoadedGame())
	pending, ok := f.handoff.Take()
	require.True(t, ok)
	assert.True(t, saved.Equal(pending))

	// the pending autosave is dropped
	select {
	case req := <-f.saveDataChan:
		assert.Nil(t, req.PlayerData)
	default:
		t.Fatal("expected a drop request")
	}
}

func TestGameScene_LoadActionStopsAutosave(t *testing.T) {
	f := newSceneFixture(t)
	saved := types.NewPlayerData()
	saved.Weapons = []*types.WeaponData{types.NewWeaponData(types.WeaponTagLaser)}
	require.NoError(t, f.repository.SavePlayerData(context.Background(), constants.DefaultSaveSlot, saved))

	// autosave on every update
	scene := f.newScene(t, 1)
	f.reloader.EXPECT().ReloadScene().Return(nil).Once()

	f.input.press(input.ActionLoad, input.ActionVolumeDown)
	require.NoError(t, scene.Update())

	// only the drop request, no snapshot of the profile being replaced
	require.Len(t, f.saveDataChan, 1)
	req := <-f.saveDataChan
	assert.Nil(t, req.PlayerData)

	// the volume change after the load is not applied
	vfx, err := scene.Manager().GetVfxVolume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, constants.MaxVolume, vfx)

	require.NoError(t, scene.Update())
	assert.Len(t, f.saveDataChan, 0)
}

func TestGameScene_LoadActionWithoutSave(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 1)

	// nothing to load, the scene keeps playing and autosaving
	f.input.press(input.ActionLoad)
	require.NoError(t, scene.Update())

	require.Len(t, f.saveDataChan, 2)
	assert.Nil(t, (<-f.saveDataChan).PlayerData)
	assert.NotNil(t, (<-f.saveDataChan).PlayerData)
}

func TestGameScene_VolumeActions(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 0)

	// already at the maximum
	f.input.press(input.ActionVolumeUp)
	require.NoError(t, scene.Update())
	vfx, err := scene.Manager().GetVfxVolume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, constants.MaxVolume, vfx)

	f.input.press(input.ActionVolumeDown, input.ActionVolumeDown)
	require.NoError(t, scene.Update())
	vfx, err = scene.Manager().GetVfxVolume(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.8, vfx, 1e-6)

	// settings changes are written through
	saved, err := f.repository.LoadPlayerData(context.Background(), constants.DefaultSaveSlot)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, saved.Settings.VfxVolume, 1e-6)
	assert.True(t, f.handoff.UseLoadedGame())
}

func TestGameScene_DifficultyCycles(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 0)

	want := []float32{2, 3, 1}
	for _, difficulty := range want {
		f.input.press(input.ActionNextDifficulty)
		require.NoError(t, scene.Update())
		settings, err := scene.Manager().LoadSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, difficulty, settings[2])
	}
}

func TestGameScene_Autosave(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 2)

	require.NoError(t, scene.Update())
	assert.Len(t, f.saveDataChan, 0)

	require.NoError(t, scene.Update())
	require.Len(t, f.saveDataChan, 1)
	req := <-f.saveDataChan

	snapshot, err := scene.Manager().Snapshot()
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(req.PlayerData))
	assert.NotSame(t, snapshot, req.PlayerData)
}

func TestGameScene_Destroy(t *testing.T) {
	f := newSceneFixture(t)
	scene := f.newScene(t, 0)
	assert.NoError(t, scene.Destroy())
}
