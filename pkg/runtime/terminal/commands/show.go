package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/spf13/cobra"
)

type ShowCmd struct {
	date     string
	explorer explorer.Explorer
	reporter *export.Reporter
}

func NewShowCmd(e explorer.Explorer, reporter *export.Reporter) *cobra.Command {
	sc := &ShowCmd{explorer: e, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "show <report name>",
		Short: "Show a report's filters with their defaults",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.date, "date", "", "Evaluation date for defaults (YYYY-MM-DD, default today)")

	return cmd
}

func (sc *ShowCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	on, err := evaluationDate(sc.explorer.Today(ctx), sc.date)
	if err != nil {
		return err
	}

	def, err := sc.explorer.GetReport(ctx, args[0])
	if err != nil {
		return err
	}

	return sc.reporter.HandleReport(adapters.MapReportToAPI(def, on))
}

func evaluationDate(today time.Time, raw string) (time.Time, error) {
	if raw == "" {
		return today, nil
	}
	on, err := time.ParseInLocation(domain.DateLayout, raw, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q. Expected format: YYYY-MM-DD", raw)
	}
	return on, nil
}
