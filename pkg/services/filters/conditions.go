package filters

import "github.com/de-tools/report-atlas/pkg/models/domain"

// Conditions translates resolved filter values into predicates over the
// report's source document. Only submitted documents are selected; link
// filters become equality checks, the date range narrows posting_date and the
// report's fixed constraints come last.
func Conditions(def domain.ReportDefinition, values domain.FilterValues) []domain.Condition {
	conds := []domain.Condition{{
		Field:  domain.ColumnDocStatus,
		Op:     domain.OpEqual,
		Values: []string{domain.DocStatusSubmitted},
	}}

	for _, f := range def.Filters {
		if f.FieldType != domain.FieldTypeLink {
			continue
		}
		if v := values.Get(f.FieldName); v != "" {
			conds = append(conds, domain.Condition{Field: f.FieldName, Op: domain.OpEqual, Values: []string{v}})
		}
	}

	from, to := values.Get(domain.FieldFromDate), values.Get(domain.FieldToDate)
	switch {
	case from != "" && to != "":
		conds = append(conds, domain.Condition{Field: domain.ColumnPosting, Op: domain.OpBetween, Values: []string{from, to}})
	case from != "":
		conds = append(conds, domain.Condition{Field: domain.ColumnPosting, Op: domain.OpGTE, Values: []string{from}})
	case to != "":
		conds = append(conds, domain.Condition{Field: domain.ColumnPosting, Op: domain.OpLTE, Values: []string{to}})
	}

	for _, c := range def.Constraints {
		conds = append(conds, domain.Condition{Field: c.Field, Op: c.Op, Values: append([]string(nil), c.Values...)})
	}
	return conds
}
