package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"propedit/internal/config"
	"propedit/internal/scene"
)

func newInitCmd(a *app) *cobra.Command {
	var force, writeConfig bool
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a sample body document",
		Long: `Write a sample body document to file (default body.toml). The format
follows the extension: .toml or .json. With --write-config the default
settings are also written to the config directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "body.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := scene.Save(path, scene.Sample()); err != nil {
				return err
			}
			a.log.Info("wrote sample document", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			if writeConfig {
				v := viper.New()
				config.SetDefaults(v)
				cfgPath := filepath.Join(config.Dir(), "config.toml")
				if err := config.Save(v, cfgPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "also write the default config file")
	return cmd
}
