package playerdata

import "errors"

var (
	// ErrNotInitialized is returned by accessors called before Initialize.
	ErrNotInitialized = errors.New("player data not initialized")
	// ErrWeaponNotFound is returned by GetWeapon when no weapon has the tag.
	ErrWeaponNotFound = errors.New("weapon not found")
)
