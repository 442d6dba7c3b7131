package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/repositories"
	"github.com/cbodonnell/playerdata/pkg/savefile"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(output, cmd.OutOrStdout())
			p, err := repository.LoadPlayerData(cmd.Context(), cfg.Slot)
			if err != nil {
				if repositories.IsNotFound(err) {
					out.PrintMessage("No save files!")
					return nil
				}
				return err
			}
			out.Print(p)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved profile as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := repository.LoadPlayerData(cmd.Context(), cfg.Slot)
			if err != nil {
				return err
			}
			b, err := savefile.ExportJSON(p)
			if err != nil {
				return err
			}

			if file == "" || file == "-" {
				_, err := cmd.OutOrStdout().Write(append(b, '\n'))
				return err
			}
			if err := os.WriteFile(file, b, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", file, err)
			}
			log.Info("Exported slot %s to %s", cfg.Slot, file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to this file instead of stdout")

	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved profile with a JSON export",
		Long:  "Replace the saved profile with a JSON export. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b []byte
			var err error
			if args[0] == "-" {
				b, err = io.ReadAll(cmd.InOrStdin())
			} else {
				b, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			p, err := savefile.ImportJSON(b)
			if err != nil {
				return err
			}
			if err := repository.SavePlayerData(cmd.Context(), cfg.Slot, p); err != nil {
				return err
			}

			NewOutput(output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Imported profile %s into slot %s", p.ID, cfg.Slot))
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the saved profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete slot %s without --yes", cfg.Slot)
			}
			if err := repository.DeletePlayerData(cmd.Context(), cfg.Slot); err != nil {
				return err
			}
			NewOutput(output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Deleted slot %s", cfg.Slot))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")

	return cmd
}

// loadOrNew returns the saved profile, or a fresh one when the slot is empty.
func loadOrNew(cmd *cobra.Command) (*types.PlayerData, error) {
	p, err := repository.LoadPlayerData(cmd.Context(), cfg.Slot)
	if err != nil {
		if repositories.IsNotFound(err) {
			log.Debug("Slot %s is empty, starting a new profile", cfg.Slot)
			return types.NewPlayerData(), nil
		}
		return nil, err
	}
	return p, nil
}
