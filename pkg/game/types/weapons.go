package types

import "fmt"

// WeaponTag identifies a weapon kind. It is the lookup key for WeaponData.
type WeaponTag uint8

const (
	WeaponTagPistol WeaponTag = iota
	WeaponTagShotgun
	WeaponTagRifle
	WeaponTagLauncher
	WeaponTagLaser
)

// WeaponTags lists every known tag in declaration order.
var WeaponTags = []WeaponTag{
	WeaponTagPistol,
	WeaponTagShotgun,
	WeaponTagRifle,
	WeaponTagLauncher,
	WeaponTagLaser,
}

func (t WeaponTag) String() string {
	switch t {
	case WeaponTagPistol:
		return "pistol"
	case WeaponTagShotgun:
		return "shotgun"
	case WeaponTagRifle:
		return "rifle"
	case WeaponTagLauncher:
		return "launcher"
	case WeaponTagLaser:
		return "laser"
	}
	return "unknown"
}

// ParseWeaponTag parses the name of a weapon tag.
func ParseWeaponTag(name string) (WeaponTag, error) {
	for _, tag := range WeaponTags {
		if tag.String() == name {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("unknown weapon tag: %s", name)
}

type WeaponData struct {
	Tag      WeaponTag `json:"tag"`
	Level    int32     `json:"level"`
	Ammo     int32     `json:"ammo"`
	Unlocked bool      `json:"unlocked"`
}

func NewWeaponData(tag WeaponTag) *WeaponData {
	return &WeaponData{
		Tag:   tag,
		Level: 1,
	}
}

// Copy returns a copy of the weapon data
func (w *WeaponData) Copy() *WeaponData {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}

// Equal returns true if the weapon data is equal to the other weapon data
func (w *WeaponData) Equal(other *WeaponData) bool {
	if w == nil || other == nil {
		return w == other
	}
	return *w == *other
}
