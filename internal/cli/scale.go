package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hoverctl/hover/config"
	"github.com/hoverctl/hover/hosting"
)

func newAppsScaleCommand(opts *options) *cobra.Command {
	var appName, vmType, scaleType, configPath string
	var regions []string

	cmd := &cobra.Command{
		Use:   "scale [app-id]",
		Short: "Scale an application by changing the VM type or its regions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scaleArgs := hosting.ScaleArgs{
				VMType:    vmType,
				Regions:   regions,
				ScaleType: scaleType,
			}

			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if !cfg.Exists() && !scaleArgs.Valid() {
				return errors.New("specify either --vm-type or --regions or add them to " + configPath)
			}
			if cfg.Exists() && scaleArgs.Valid() {
				opts.console.Warn("command-line flags override values from %s", cfg.Path())
			}

			// Flag values pass through the same schema validation as the
			// config file itself.
			merged, err := cfg.WithOverrides(scaleArgs.Overrides())
			if err != nil {
				return err
			}
			params, err := hosting.ScaleParamsFrom(merged, scaleArgs)
			if err != nil {
				return err
			}

			client := opts.client()
			appID, err := resolveAppID(cmd.Context(), client, args, appName)
			if err != nil {
				return err
			}
			if err := client.ScaleApp(cmd.Context(), appID, params); err != nil {
				return wrapAuthError(err)
			}

			opts.console.Success("successfully scaled the app")
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "name of the application")
	cmd.Flags().StringVar(&vmType, "vm-type", "", "virtual machine type to scale to")
	cmd.Flags().StringArrayVarP(&regions, "regions", "r", nil, "region to scale the app to (repeatable)")
	cmd.Flags().StringVar(&scaleType, "scale-type", "", "type of scaling (vm, regions)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "path to the deployment config file")
	return cmd
}
