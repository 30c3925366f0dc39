package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenui/lumen/internal/config"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Write a default lumen.json in the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ConfigFileName); err == nil && !force {
				warn("%s already exists, use --force to overwrite", config.ConfigFileName)
				return nil
			}

			cfg := config.New()
			if len(args) == 1 {
				cfg.Name = args[0]
			}
			if err := cfg.Save(config.ConfigFileName); err != nil {
				return err
			}
			success("wrote %s", config.ConfigFileName)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing lumen.json")

	return cmd
}
