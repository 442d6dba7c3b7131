package types

import (
	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/google/uuid"
)

// PlayerData is the persistent player profile: weapons and settings.
type PlayerData struct {
	// ID identifies the profile across save backends
	ID uuid.UUID `json:"id"`
	// Weapons is the ordered weapon collection
	Weapons []*WeaponData `json:"weapons"`
	// Settings holds the audio and difficulty settings
	Settings Settings `json:"settings"`
}

type Settings struct {
	VfxVolume   float32 `json:"vfxVolume"`
	MusicVolume float32 `json:"musicVolume"`
	Difficulty  float32 `json:"difficulty"`
}

func DefaultSettings() Settings {
	return Settings{
		VfxVolume:   constants.DefaultVfxVolume,
		MusicVolume: constants.DefaultMusicVolume,
		Difficulty:  constants.DefaultDifficulty,
	}
}

// NewPlayerData returns a fresh profile with no weapons and default settings.
func NewPlayerData() *PlayerData {
	return &PlayerData{
		ID:       uuid.New(),
		Weapons:  []*WeaponData{},
		Settings: DefaultSettings(),
	}
}

func (p *PlayerData) UpdateSettings(vfxVolume, musicVolume, difficulty float32) {
	p.Settings = Settings{
		VfxVolume:   vfxVolume,
		MusicVolume: musicVolume,
		Difficulty:  difficulty,
	}
}

// GetSettings returns the settings as [vfx, music, difficulty].
func (p *PlayerData) GetSettings() [3]float32 {
	return [3]float32{p.Settings.VfxVolume, p.Settings.MusicVolume, p.Settings.Difficulty}
}

// Copy returns a deep copy of the profile
func (p *PlayerData) Copy() *PlayerData {
	weapons := make([]*WeaponData, len(p.Weapons))
	for i, w := range p.Weapons {
		weapons[i] = w.Copy()
	}
	return &PlayerData{
		ID:       p.ID,
		Weapons:  weapons,
		Settings: p.Settings,
	}
}

// Equal returns true if the profile is equal to the other profile
func (p *PlayerData) Equal(other *PlayerData) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.ID != other.ID || p.Settings != other.Settings || len(p.Weapons) != len(other.Weapons) {
		return false
	}
	for i := range p.Weapons {
		if !p.Weapons[i].Equal(other.Weapons[i]) {
			return false
		}
	}
	return true
}
