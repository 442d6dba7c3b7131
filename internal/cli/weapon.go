package cli

import (
	"fmt"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/spf13/cobra"
)

func newWeaponCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weapon",
		Short: "Weapon collection commands",
	}

	cmd.AddCommand(newWeaponListCmd())
	cmd.AddCommand(newWeaponAddCmd())
	cmd.AddCommand(newWeaponRemoveCmd())

	return cmd
}

func newWeaponListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved weapons",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadOrNew(cmd)
			if err != nil {
				return err
			}
			NewOutput(output, cmd.OutOrStdout()).Print(p.Weapons)
			return nil
		},
	}
}

func newWeaponAddCmd() *cobra.Command {
	var level, ammo int32
	var unlocked bool

	cmd := &cobra.Command{
		Use:   "add <tag>",
		Short: "Add a weapon to the saved profile",
		Long:  fmt.Sprintf("Add a weapon to the saved profile. Tags: %v.", types.WeaponTags),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := types.ParseWeaponTag(args[0])
			if err != nil {
				return err
			}
			if level < 1 {
				return fmt.Errorf("--level must be at least 1")
			}
			if ammo < 0 {
				return fmt.Errorf("--ammo must not be negative")
			}

			p, err := loadOrNew(cmd)
			if err != nil {
				return err
			}
			for _, w := range p.Weapons {
				if w.Tag == tag {
					return fmt.Errorf("profile already has a %s", tag)
				}
			}

			weaponData := types.NewWeaponData(tag)
			weaponData.Level = level
			weaponData.Ammo = ammo
			weaponData.Unlocked = unlocked
			p.Weapons = append(p.Weapons, weaponData)

			if err := repository.SavePlayerData(cmd.Context(), cfg.Slot, p); err != nil {
				return err
			}
			NewOutput(output, cmd.OutOrStdout()).Print(p.Weapons)
			return nil
		},
	}

	cmd.Flags().Int32Var(&level, "level", 1, "Weapon level")
	cmd.Flags().Int32Var(&ammo, "ammo", 0, "Ammunition")
	cmd.Flags().BoolVar(&unlocked, "unlocked", false, "Mark the weapon as unlocked")

	return cmd
}

func newWeaponRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tag>",
		Short: "Remove every weapon with the tag from the saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := types.ParseWeaponTag(args[0])
			if err != nil {
				return err
			}

			p, err := repository.LoadPlayerData(cmd.Context(), cfg.Slot)
			if err != nil {
				return err
			}
			kept := p.Weapons[:0]
			for _, w := range p.Weapons {
				if w.Tag != tag {
					kept = append(kept, w)
				}
			}
			if len(kept) == len(p.Weapons) {
				return fmt.Errorf("profile has no %s", tag)
			}
			p.Weapons = kept

			if err := repository.SavePlayerData(cmd.Context(), cfg.Slot, p); err != nil {
				return err
			}
			NewOutput(output, cmd.OutOrStdout()).Print(p.Weapons)
			return nil
		},
	}
}
