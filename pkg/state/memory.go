package state

import (
	"sync"

	gametypes "github.com/cbodonnell/playerdata/pkg/game/types"
)

type InMemoryHandoff struct {
	lock          sync.RWMutex
	pending       *gametypes.PlayerData
	useLoadedGame bool
}

func NewInMemoryHandoff() *InMemoryHandoff {
	return &InMemoryHandoff{}
}

var _ Handoff = (*InMemoryHandoff)(nil)

func (h *InMemoryHandoff) Put(playerData *gametypes.PlayerData) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.pending = playerData
	h.useLoadedGame = playerData != nil
}

func (h *InMemoryHandoff) Take() (*gametypes.PlayerData, bool) {
	h.lock.Lock()
	defer h.lock.Unlock()
	pending := h.pending
	h.pending = nil
	return pending, pending != nil
}

func (h *InMemoryHandoff) UseLoadedGame() bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.useLoadedGame
}

func (h *InMemoryHandoff) SetUseLoadedGame(useLoadedGame bool) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.useLoadedGame = useLoadedGame
}
