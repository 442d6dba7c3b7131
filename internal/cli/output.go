package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/playerdata/pkg/game/types"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *types.PlayerData:
		o.printPlayerData(v)
	case types.Settings:
		o.printSettings(v)
	case []*types.WeaponData:
		o.printWeapons(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayerData(p *types.PlayerData) {
	fmt.Fprintf(o.w, "Profile: %s\n", p.ID)
	o.printSettings(p.Settings)
	o.printWeapons(p.Weapons)
}

func (o *Output) printSettings(s types.Settings) {
	fmt.Fprintf(o.w, "VFX volume:   %.2f\n", s.VfxVolume)
	fmt.Fprintf(o.w, "Music volume: %.2f\n", s.MusicVolume)
	fmt.Fprintf(o.w, "Difficulty:   %.2f\n", s.Difficulty)
}

func (o *Output) printWeapons(weapons []*types.WeaponData) {
	if len(weapons) == 0 {
		fmt.Fprintln(o.w, "Weapons: none")
		return
	}
	fmt.Fprintf(o.w, "Weapons (%d):\n", len(weapons))
	for _, w := range weapons {
		locked := "locked"
		if w.Unlocked {
			locked = "unlocked"
		}
		fmt.Fprintf(o.w, "  %-9s level %d, ammo %d, %s\n", w.Tag, w.Level, w.Ammo, locked)
	}
}
