package savefile

import (
	"bytes"
	"encoding/json"
	"fmt"

	playerdatafb "github.com/cbodonnell/playerdata/flatbuffers/playerdata"
	"github.com/cbodonnell/playerdata/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Encode serializes a profile into the versioned save file format:
// magic, version byte, then a zstd compressed PlayerData flatbuffer.
func Encode(p *types.PlayerData) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("player data is nil")
	}
	for i, w := range p.Weapons {
		if w == nil {
			return nil, fmt.Errorf("weapon %d is nil", i)
		}
	}

	b := SerializePlayerDataFlatbuffer(p)

	out := bytes.NewBuffer(make([]byte, 0, headerSize+len(b)))
	out.Write(Magic[:])
	out.WriteByte(FormatVersion)

	compWriter, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress player data: %w", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %w", err)
	}

	return out.Bytes(), nil
}

// Decode parses a save file produced by Encode.
func Decode(data []byte) (*types.PlayerData, error) {
	version, err := ReadVersion(data)
	if err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	compReader, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer compReader.Close()

	b, err := compReader.DecodeAll(data[headerSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress player data: %v", ErrInvalidFormat, err)
	}

	p, err := DeserializePlayerDataFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize player data: %w", err)
	}

	return p, nil
}

// ReadVersion validates the header and returns the format version.
func ReadVersion(data []byte) (byte, error) {
	if len(data) < headerSize {
		return 0, fmt.Errorf("%w: file too short", ErrInvalidFormat)
	}
	if !bytes.Equal(data[:len(Magic)], Magic[:]) {
		return 0, fmt.Errorf("%w: bad magic", ErrInvalidFormat)
	}
	return data[len(Magic)], nil
}

func SerializePlayerDataFlatbuffer(p *types.PlayerData) []byte {
	builder := flatbuffers.NewBuilder(256)

	id := builder.CreateString(p.ID.String())

	weaponOffsets := make([]flatbuffers.UOffsetT, 0, len(p.Weapons))
	for _, w := range p.Weapons {
		weaponOffsets = append(weaponOffsets, SerializeWeaponDataFlatbuffer(builder, w))
	}
	playerdatafb.PlayerDataStartWeaponsVector(builder, len(weaponOffsets))
	for i := len(weaponOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(weaponOffsets[i])
	}
	weapons := builder.EndVector(len(weaponOffsets))

	playerdatafb.PlayerDataStart(builder)
	playerdatafb.PlayerDataAddId(builder, id)
	playerdatafb.PlayerDataAddWeapons(builder, weapons)
	playerdatafb.PlayerDataAddSettings(builder, playerdatafb.CreateSettings(builder,
		p.Settings.VfxVolume,
		p.Settings.MusicVolume,
		p.Settings.Difficulty,
	))
	playerData := playerdatafb.PlayerDataEnd(builder)
	builder.Finish(playerData)

	return builder.FinishedBytes()
}

func SerializeWeaponDataFlatbuffer(builder *flatbuffers.Builder, w *types.WeaponData) flatbuffers.UOffsetT {
	playerdatafb.WeaponDataStart(builder)
	playerdatafb.WeaponDataAddTag(builder, byte(w.Tag))
	playerdatafb.WeaponDataAddLevel(builder, w.Level)
	playerdatafb.WeaponDataAddAmmo(builder, w.Ammo)
	playerdatafb.WeaponDataAddUnlocked(builder, w.Unlocked)
	return playerdatafb.WeaponDataEnd(builder)
}

// DeserializePlayerDataFlatbuffer reads a PlayerData flatbuffer. Out of
// range offsets in a corrupt buffer surface as ErrInvalidFormat.
func DeserializePlayerDataFlatbuffer(b []byte) (p *types.PlayerData, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("%w: corrupt player data: %v", ErrInvalidFormat, r)
		}
	}()

	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: empty player data", ErrInvalidFormat)
	}

	fb := playerdatafb.GetRootAsPlayerData(b, 0)

	id, err := uuid.ParseBytes(fb.Id())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid profile id: %v", ErrInvalidFormat, err)
	}

	p = &types.PlayerData{
		ID:       id,
		Weapons:  make([]*types.WeaponData, 0, fb.WeaponsLength()),
		Settings: types.DefaultSettings(),
	}

	for i := 0; i < fb.WeaponsLength(); i++ {
		weaponFlatbuffer := &playerdatafb.WeaponData{}
		if !fb.Weapons(weaponFlatbuffer, i) {
			return nil, fmt.Errorf("failed to get weapon data at index %d", i)
		}
		p.Weapons = append(p.Weapons, WeaponDataFlatbufferToWeaponData(weaponFlatbuffer))
	}

	if settings := fb.Settings(nil); settings != nil {
		p.Settings = types.Settings{
			VfxVolume:   settings.VfxVolume(),
			MusicVolume: settings.MusicVolume(),
			Difficulty:  settings.Difficulty(),
		}
	}

	return p, nil
}

func WeaponDataFlatbufferToWeaponData(fb *playerdatafb.WeaponData) *types.WeaponData {
	return &types.WeaponData{
		Tag:      types.WeaponTag(fb.Tag()),
		Level:    fb.Level(),
		Ammo:     fb.Ammo(),
		Unlocked: fb.Unlocked(),
	}
}

// ExportJSON renders a profile as indented JSON for inspection and editing.
func ExportJSON(p *types.PlayerData) ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player data: %w", err)
	}
	return b, nil
}

// ImportJSON parses a profile written by ExportJSON.
func ImportJSON(b []byte) (*types.PlayerData, error) {
	p := &types.PlayerData{}
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player data: %w", err)
	}
	if p.Weapons == nil {
		p.Weapons = []*types.WeaponData{}
	}
	for i, w := range p.Weapons {
		if w == nil {
			return nil, fmt.Errorf("%w: weapon %d is null", ErrInvalidFormat, i)
		}
	}
	return p, nil
}
