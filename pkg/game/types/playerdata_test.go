package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerData(t *testing.T) {
	p := NewPlayerData()

	assert.NotNil(t, p.Weapons)
	assert.Empty(t, p.Weapons)
	assert.Equal(t, [3]float32{1, 1, 1}, p.GetSettings())
}

func TestPlayerData_UpdateSettings(t *testing.T) {
	p := NewPlayerData()
	p.UpdateSettings(0.7, 0.4, 2.0)

	assert.Equal(t, [3]float32{0.7, 0.4, 2.0}, p.GetSettings())
}

func TestPlayerData_Copy(t *testing.T) {
	p := NewPlayerData()
	p.Weapons = append(p.Weapons, NewWeaponData(WeaponTagRifle))

	c := p.Copy()
	assert.True(t, p.Equal(c))

	c.Weapons[0].Ammo = 30
	assert.Equal(t, int32(0), p.Weapons[0].Ammo)
	assert.False(t, p.Equal(c))
}

func TestPlayerData_CopyNilWeapon(t *testing.T) {
	p := NewPlayerData()
	p.Weapons = []*WeaponData{nil, NewWeaponData(WeaponTagPistol)}

	c := p.Copy()
	require.Len(t, c.Weapons, 2)
	assert.Nil(t, c.Weapons[0])
	assert.True(t, p.Equal(c))
}

func TestParseWeaponTag(t *testing.T) {
	for _, tag := range WeaponTags {
		got, err := ParseWeaponTag(tag.String())
		assert.NoError(t, err)
		assert.Equal(t, tag, got)
	}

	_, err := ParseWeaponTag("trebuchet")
	assert.Error(t, err)
}
