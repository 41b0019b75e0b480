package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dom/champion-rotations/internal/config"
	"github.com/dom/champion-rotations/internal/logging"
	"github.com/dom/champion-rotations/internal/repository/sqlstore"
	"github.com/dom/champion-rotations/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// appContext holds the dependencies shared by every subcommand
type appContext struct {
	cfg       *config.Config
	connector *sqlstore.Connector
	services  *service.Services
	logger    *zap.Logger
}

type outputFormat string

const (
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

func newRootCmd() *cobra.Command {
	var (
		app    appContext
		output string
	)

	root := &cobra.Command{
		Use:           "rotations",
		Short:         "Inspect League of Legends free champion rotations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output != string(outputYAML) && output != string(outputJSON) {
				return fmt.Errorf("unsupported output format %q", output)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := logging.New(cfg.Environment)
			if err != nil {
				return err
			}

			app.cfg = cfg
			app.logger = logger
			app.connector = sqlstore.NewConnector(cfg)
			app.services = service.NewServices(sqlstore.NewRepositories(app.connector), cfg, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", string(outputYAML), "output format (yaml or json)")

	root.AddCommand(
		&cobra.Command{
			Use:   "current",
			Short: "Print the latest regular and newbie rotation",
			RunE: func(cmd *cobra.Command, args []string) error {
				current, err := app.services.Rotation.CurrentRotation(cmd.Context())
				if err != nil {
					return err
				}
				return write(cmd.OutOrStdout(), outputFormat(output), current)
			},
		},
		&cobra.Command{
			Use:   "history",
			Short: "Print the champion count of every recorded rotation",
			RunE: func(cmd *cobra.Command, args []string) error {
				history, err := app.services.Rotation.GetHistory(cmd.Context())
				if err != nil {
					return err
				}
				return write(cmd.OutOrStdout(), outputFormat(output), history)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the rotation tables if they do not exist",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.connector.Migrate(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
				return nil
			},
		},
	)

	return root
}

func write(w io.Writer, format outputFormat, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
}
