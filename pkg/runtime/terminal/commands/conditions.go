package commands

import (
	"fmt"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/spf13/cobra"
)

type ConditionsCmd struct {
	date     string
	filters  map[string]string
	explorer explorer.Explorer
	reporter *export.Reporter
}

func NewConditionsCmd(e explorer.Explorer, reporter *export.Reporter) *cobra.Command {
	cc := &ConditionsCmd{explorer: e, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "conditions <report name>",
		Short: "Resolve filter values and print the query conditions for a report",
		Args:  cobra.ExactArgs(1),
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.date, "date", "", "Evaluation date for defaults (YYYY-MM-DD, default today)")
	cmd.Flags().StringToStringVarP(&cc.filters, "filter", "f", nil, "Filter value as fieldname=value (repeatable)")

	return cmd
}

func (cc *ConditionsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	on, err := evaluationDate(cc.explorer.Today(ctx), cc.date)
	if err != nil {
		return err
	}

	params, err := cc.explorer.Parameterize(ctx, args[0], on, domain.FilterValues(cc.filters))
	if err != nil {
		return fmt.Errorf("failed to resolve filters: %w", err)
	}

	out := api.Conditions{
		Report:     params.Report.Name,
		Filters:    params.Values,
		Conditions: adapters.MapConditionsToAPI(params.Conditions),
		Query:      params.Query,
		Args:       params.Args,
	}
	if params.Period != nil {
		out.Period = adapters.MapPeriodToAPI(*params.Period)
	}

	return cc.reporter.HandleConditions(out)
}
