package adapters

import (
	"time"

	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
)

// MapReportToAPI renders def with its defaults evaluated on the given date.
func MapReportToAPI(def domain.ReportDefinition, on time.Time) api.Report {
	filters := make([]api.FilterField, 0, len(def.Filters))
	for _, f := range def.Filters {
		out := api.FilterField{
			FieldName: f.FieldName,
			Label:     f.Label,
			FieldType: string(f.FieldType),
			Options:   string(f.Options),
			Required:  f.Required,
			Width:     f.Width,
		}
		if f.Default != nil {
			out.Default = f.Default.Format(on)
		}
		filters = append(filters, out)
	}
	return api.Report{
		Name:        def.Name,
		RefDocType:  def.RefDocType,
		EvaluatedOn: on.Format(domain.DateLayout),
		Filters:     filters,
	}
}

func MapReportToSummary(def domain.ReportDefinition) api.ReportSummary {
	return api.ReportSummary{
		Name:        def.Name,
		RefDocType:  def.RefDocType,
		FilterCount: len(def.Filters),
	}
}

func MapConditionsToAPI(conds []domain.Condition) []api.Condition {
	out := make([]api.Condition, 0, len(conds))
	for _, c := range conds {
		out = append(out, api.Condition{
			Field:  c.Field,
			Op:     string(c.Op),
			Values: c.Values,
		})
	}
	return out
}

func MapPeriodToAPI(p domain.TimePeriod) *api.TimePeriod {
	return &api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration,
	}
}
