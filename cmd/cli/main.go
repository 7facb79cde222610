package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-atlas/pkg/runtime/terminal"
	"github.com/de-tools/report-atlas/pkg/services/clock"
	"github.com/de-tools/report-atlas/pkg/services/config"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/de-tools/report-atlas/pkg/services/report"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c, err := clock.NewSystem(cfg.Clock.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry := report.Builtin()
	if err := registry.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid report definitions: %v\n", err)
	}

	cli := terminal.NewCLI(terminal.Options{
		Explorer: explorer.NewExplorer(registry, c),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
