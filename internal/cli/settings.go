package cli

import (
	"fmt"

	"github.com/cbodonnell/playerdata/pkg/game/constants"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	var vfx, music, difficulty float32

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the saved settings",
		Long: `Show the saved settings. With --vfx, --music or --difficulty the
settings are changed and saved; an empty slot gets a new profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadOrNew(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("vfx") && !flags.Changed("music") && !flags.Changed("difficulty") {
				NewOutput(output, cmd.OutOrStdout()).Print(p.Settings)
				return nil
			}

			s := p.Settings
			if flags.Changed("vfx") {
				s.VfxVolume = vfx
			}
			if flags.Changed("music") {
				s.MusicVolume = music
			}
			if flags.Changed("difficulty") {
				s.Difficulty = difficulty
			}
			if err := validateRange("vfx", s.VfxVolume, 0, constants.MaxVolume); err != nil {
				return err
			}
			if err := validateRange("music", s.MusicVolume, 0, constants.MaxVolume); err != nil {
				return err
			}
			if err := validateRange("difficulty", s.Difficulty, 0, constants.MaxDifficulty); err != nil {
				return err
			}

			p.UpdateSettings(s.VfxVolume, s.MusicVolume, s.Difficulty)
			if err := repository.SavePlayerData(cmd.Context(), cfg.Slot, p); err != nil {
				return err
			}
			NewOutput(output, cmd.OutOrStdout()).Print(p.Settings)
			return nil
		},
	}

	cmd.Flags().Float32Var(&vfx, "vfx", 0, "Effects volume")
	cmd.Flags().Float32Var(&music, "music", 0, "Music volume")
	cmd.Flags().Float32Var(&difficulty, "difficulty", 0, "Difficulty")

	return cmd
}

func validateRange(name string, v, lo, hi float32) error {
	if v < lo || v > hi {
		return fmt.Errorf("--%s must be between %g and %g, got %g", name, lo, hi, v)
	}
	return nil
}
