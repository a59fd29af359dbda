package cli

import (
	"github.com/spf13/cobra"

	"github.com/hoverctl/hover/config"
)

// NewConfigCommand groups the deployment configuration subcommands.
func NewConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the deployment configuration",
	}

	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigValidateCommand(opts))
	return cmd
}

func newConfigShowCommand(opts *options) *cobra.Command {
	var configPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective deployment configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if asJSON {
				return config.Dump(cmd.OutOrStdout(), cfg, config.AsJSON())
			}
			return config.Dump(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "path to the deployment config file")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")
	return cmd
}

func newConfigValidateCommand(opts *options) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the deployment configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			opts.console.Success("%s is valid", cfg.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "path to the deployment config file")
	return cmd
}
