package commands

import (
	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/spf13/cobra"
)

func NewListCmd(e explorer.Explorer, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var summaries []api.ReportSummary
			for _, def := range e.ListReports(cmd.Context()) {
				summaries = append(summaries, adapters.MapReportToSummary(def))
			}
			return reporter.HandleList(summaries)
		},
	}
}
