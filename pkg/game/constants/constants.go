package constants

const (
	// SaveFileName is the name of the save file inside the persistent data directory
	SaveFileName string = "player.data"
	// DefaultSaveSlot is the slot key used by the keyed save backends
	DefaultSaveSlot string = "default"

	// DefaultVfxVolume is the effects volume of a fresh profile
	DefaultVfxVolume float32 = 1.0
	// DefaultMusicVolume is the music volume of a fresh profile
	DefaultMusicVolume float32 = 1.0
	// DefaultDifficulty is the difficulty of a fresh profile
	DefaultDifficulty float32 = 1.0

	// MaxVolume is the upper bound for both volume settings
	MaxVolume float32 = 1.0
	// MaxDifficulty is the upper bound for the difficulty setting
	MaxDifficulty float32 = 3.0

	// ScreenWidth is the logical screen width
	ScreenWidth int = 640
	// ScreenHeight is the logical screen height
	ScreenHeight int = 480

	// LevelPrefab is the resource instantiated under the root of the game scene
	LevelPrefab string = "levels/arena"
)
