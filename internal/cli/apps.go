package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoverctl/hover/hosting"
	"github.com/hoverctl/hover/internal/console"
)

// NewAppsCommand groups the application management subcommands.
func NewAppsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Manage hosted applications",
	}

	cmd.AddCommand(
		newAppsListCommand(opts),
		newAppsLogsCommand(opts),
		newAppsHistoryCommand(opts),
		newAppsStatusCommand(opts),
		newAppsBuildLogsCommand(opts),
		newAppsStartCommand(opts),
		newAppsStopCommand(opts),
		newAppsDeleteCommand(opts),
		newAppsScaleCommand(opts),
	)
	return cmd
}

func newAppsListCommand(opts *options) *cobra.Command {
	var projectID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hosted applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apps, err := opts.client().ListApps(cmd.Context(), projectID)
			if err != nil {
				return wrapAuthError(err)
			}

			if asJSON {
				return opts.console.JSON(apps)
			}
			if len(apps) == 0 {
				opts.console.Print("no apps found")
				return nil
			}

			rows := make([][]string, 0, len(apps))
			for _, app := range apps {
				rows = append(rows, []string{app.ID, app.Name, app.ProjectID, app.Status, app.URL})
			}
			return console.Table(cmd.OutOrStdout(), []string{"ID", "NAME", "PROJECT", "STATUS", "URL"}, rows)
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "project ID to filter by")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")
	return cmd
}

func newAppsLogsCommand(opts *options) *cobra.Command {
	var appName string
	var offset int
	var start, end int64

	cmd := &cobra.Command{
		Use:   "logs [app-id]",
		Short: "Retrieve logs for an application",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			appID, err := resolveAppID(cmd.Context(), client, args, appName)
			if err != nil {
				return err
			}

			lines, err := client.GetAppLogs(cmd.Context(), appID, hosting.LogQuery{
				Offset: offset,
				Start:  start,
				End:    end,
			})
			if err != nil {
				return wrapAuthError(err)
			}

			// The API returns newest first; print oldest first.
			for i := len(lines) - 1; i >= 0; i-- {
				opts.console.Print("%s %s", lines[i].Timestamp.Format(time.RFC3339), lines[i].Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "name of the application")
	cmd.Flags().IntVar(&offset, "offset", 0, "offset in seconds from the current time")
	cmd.Flags().Int64Var(&start, "start", 0, "start time in Unix epoch format")
	cmd.Flags().Int64Var(&end, "end", 0, "end time in Unix epoch format")
	return cmd
}

func newAppsHistoryCommand(opts *options) *cobra.Command {
	var appName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history [app-id]",
		Short: "Retrieve the deployment history for an application",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			appID, err := resolveAppID(cmd.Context(), client, args, appName)
			if err != nil {
				return err
			}

			history, err := client.GetAppHistory(cmd.Context(), appID)
			if err != nil {
				return wrapAuthError(err)
			}

			if asJSON {
				return opts.console.JSON(history)
			}
			if len(history) == 0 {
				opts.console.Print("no deployments found")
				return nil
			}

			rows := make([][]string, 0, len(history))
			for _, d := range history {
				finished := ""
				if !d.FinishedAt.IsZero() {
					finished = d.FinishedAt.Format(time.RFC3339)
				}
				rows = append(rows, []string{
					d.ID, d.Status, d.VMType, d.StartedAt.Format(time.RFC3339), finished,
				})
			}
			return console.Table(cmd.OutOrStdout(), []string{"ID", "STATUS", "VMTYPE", "STARTED", "FINISHED"}, rows)
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "name of the application")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")
	return cmd
}

func newAppsStatusCommand(opts *options) *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "status <deployment-id>",
		Short: "Retrieve the status of a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			deploymentID := args[0]

			if watch {
				status, err := client.WatchDeploymentStatus(cmd.Context(), deploymentID, interval)
				if err != nil {
					return wrapAuthError(err)
				}
				if status == hosting.StatusFailed {
					return fmt.Errorf("deployment %s failed", deploymentID)
				}
				opts.console.Success("%s", status)
				return nil
			}

			status, err := client.GetDeploymentStatus(cmd.Context(), deploymentID)
			if err != nil {
				return wrapAuthError(err)
			}
			if strings.Contains(status, "failed") {
				opts.console.Error("%s", status)
			} else {
				opts.console.Print("%s", status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "poll until the deployment reaches a terminal status")
	cmd.Flags().DurationVar(&interval, "interval", 0, "polling interval used with --watch")
	return cmd
}

func newAppsBuildLogsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-logs <deployment-id>",
		Short: "Retrieve the build logs for a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := opts.client().GetDeploymentBuildLogs(cmd.Context(), args[0])
			if err != nil {
				return wrapAuthError(err)
			}
			for _, line := range logs {
				opts.console.Print("%s", line)
			}
			return nil
		},
	}
	return cmd
}

func newAppsStartCommand(opts *options) *cobra.Command {
	return newLifecycleCommand(opts, "start", "Start a stopped application",
		func(ctx *cobra.Command, client *hosting.Client, appID string) (string, error) {
			return client.StartApp(ctx.Context(), appID)
		})
}

func newAppsStopCommand(opts *options) *cobra.Command {
	return newLifecycleCommand(opts, "stop", "Stop a running application",
		func(ctx *cobra.Command, client *hosting.Client, appID string) (string, error) {
			return client.StopApp(ctx.Context(), appID)
		})
}

func newAppsDeleteCommand(opts *options) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "delete [app-id]",
		Short: "Delete an application",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			appID, err := resolveAppID(cmd.Context(), client, args, appName)
			if err != nil {
				return err
			}

			msg, err := client.DeleteApp(cmd.Context(), appID)
			if err != nil {
				return wrapAuthError(err)
			}
			if msg != "" {
				opts.console.Warn("%s", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "name of the application")
	return cmd
}

// newLifecycleCommand builds the shared shape of start/stop.
func newLifecycleCommand(opts *options, verb, short string, run func(*cobra.Command, *hosting.Client, string) (string, error)) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   verb + " [app-id]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			appID, err := resolveAppID(cmd.Context(), client, args, appName)
			if err != nil {
				return err
			}

			msg, err := run(cmd, client, appID)
			if err != nil {
				return wrapAuthError(err)
			}
			if msg == "" {
				return nil
			}
			if strings.Contains(msg, "failed") {
				opts.console.Error("%s", msg)
			} else {
				opts.console.Success("%s", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "name of the application")
	return cmd
}
