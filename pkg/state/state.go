package state

import (
	gametypes "github.com/cbodonnell/playerdata/pkg/game/types"
)

// Handoff relays a loaded profile across a scene reload.
// It is owned by whatever orchestrates scene transitions and is passed
// to every scene it constructs. Implementations must be thread-safe.
type Handoff interface {
	// Put stores a pending profile and sets the use-loaded-game flag.
	Put(playerData *gametypes.PlayerData)
	// Take returns the pending profile and clears it. The flag is left as is.
	// The second value is false when nothing was pending.
	Take() (*gametypes.PlayerData, bool)
	// UseLoadedGame reports whether the next scene should adopt the pending profile.
	UseLoadedGame() bool
	// SetUseLoadedGame sets the use-loaded-game flag.
	SetUseLoadedGame(useLoadedGame bool)
}
