package filters

import (
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	submitted := domain.Condition{Field: "docstatus", Op: domain.OpEqual, Values: []string{"1"}}
	nonZero := domain.Condition{Field: "outstanding_amount", Op: domain.OpNotEqual, Values: []string{"0"}}
	positive := domain.Condition{Field: "outstanding_amount", Op: domain.OpGT, Values: []string{"0"}}

	tests := []struct {
		name     string
		report   domain.ReportDefinition
		values   domain.FilterValues
		expected []domain.Condition
	}{
		{
			name:   "customer and full range",
			report: report.CustomerStatementReport(),
			values: domain.FilterValues{"customer": "CUST-1", "from_date": "2024-02-15", "to_date": "2024-03-15"},
			expected: []domain.Condition{
				submitted,
				{Field: "customer", Op: domain.OpEqual, Values: []string{"CUST-1"}},
				{Field: "posting_date", Op: domain.OpBetween, Values: []string{"2024-02-15", "2024-03-15"}},
				nonZero,
			},
		},
		{
			name:   "supplier range keeps unpaid invoices only",
			report: report.PayableReport(),
			values: domain.FilterValues{"from_date": "2024-02-15", "to_date": "2024-03-15"},
			expected: []domain.Condition{
				submitted,
				{Field: "posting_date", Op: domain.OpBetween, Values: []string{"2024-02-15", "2024-03-15"}},
				positive,
			},
		},
		{
			name:   "supplier with from date only",
			report: report.PayableReport(),
			values: domain.FilterValues{"supplier": "SUP-1", "from_date": "2024-02-15"},
			expected: []domain.Condition{
				submitted,
				{Field: "supplier", Op: domain.OpEqual, Values: []string{"SUP-1"}},
				{Field: "posting_date", Op: domain.OpGTE, Values: []string{"2024-02-15"}},
				positive,
			},
		},
		{
			name:   "to date only",
			report: report.ReceivableReport(),
			values: domain.FilterValues{"to_date": "2024-03-15"},
			expected: []domain.Condition{
				submitted,
				{Field: "posting_date", Op: domain.OpLTE, Values: []string{"2024-03-15"}},
			},
		},
		{
			name:     "nothing set",
			report:   report.ReceivableReport(),
			expected: []domain.Condition{submitted},
		},
		{
			name:     "nothing set on payable",
			report:   report.PayableReport(),
			expected: []domain.Condition{submitted, positive},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Conditions(tc.report, tc.values))
		})
	}
}

func TestConditions_DoesNotShareConstraintValues(t *testing.T) {
	def := report.PayableReport()

	conds := Conditions(def, nil)
	conds[len(conds)-1].Values[0] = "100"

	assert.Equal(t, []string{"0"}, def.Constraints[0].Values)
}
