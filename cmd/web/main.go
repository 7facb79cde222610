package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-atlas/pkg/server"
	"github.com/de-tools/report-atlas/pkg/services/clock"
	"github.com/de-tools/report-atlas/pkg/services/config"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Report Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (settings can also come from REPORT_ATLAS_* variables)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	load := config.LoadFromEnv
	if cfgPath != "" {
		load = func() (*config.Config, error) { return config.Load(cfgPath) }
	}
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		return err
	}

	c, err := clock.NewSystem(cfg.Clock.Timezone)
	if err != nil {
		return err
	}

	registry := report.Builtin()
	if err := registry.Validate(); err != nil {
		logger.Warn().Err(err).Msg("report definitions failed validation")
	}

	logger.Info().Msgf("Found %d reports:", registry.Len())
	for _, name := range registry.Names() {
		logger.Info().Msgf("Name: `%s`", name)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Explorer: explorer.NewExplorer(registry, c),
			Logger:   logger,
		},
	})

	return api.Start()
}
