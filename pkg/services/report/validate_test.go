package report

import (
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidate_Builtin(t *testing.T) {
	for _, def := range Builtin().List() {
		t.Run(def.Name, func(t *testing.T) {
			assert.NoError(t, Validate(def))
		})
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(def *domain.ReportDefinition)
		expected error
	}{
		{
			name:     "empty report name",
			mutate:   func(def *domain.ReportDefinition) { def.Name = "" },
			expected: ErrEmptyName,
		},
		{
			name:     "empty fieldname",
			mutate:   func(def *domain.ReportDefinition) { def.Filters[0].FieldName = "" },
			expected: ErrEmptyFieldName,
		},
		{
			name: "duplicate fieldname",
			mutate: func(def *domain.ReportDefinition) {
				def.Filters = append(def.Filters, def.Filters[0])
			},
			expected: ErrDuplicateField,
		},
		{
			name:     "link without options",
			mutate:   func(def *domain.ReportDefinition) { def.Filters[0].Options = "" },
			expected: ErrMissingOptions,
		},
		{
			name:     "link to unknown entity",
			mutate:   func(def *domain.ReportDefinition) { def.Filters[0].Options = "Employee" },
			expected: ErrUnknownEntity,
		},
		{
			name: "default on link field",
			mutate: func(def *domain.ReportDefinition) {
				d := domain.Today
				def.Filters[0].Default = &d
			},
			expected: ErrMisplacedDefault,
		},
		{
			name: "from default after to default",
			mutate: func(def *domain.ReportDefinition) {
				d := domain.DateDefault{Months: 1}
				def.Filters[1].Default = &d
			},
			expected: ErrInvalidDefaultRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := ReceivableReport()
			tc.mutate(&def)
			assert.ErrorIs(t, Validate(def), tc.expected)
		})
	}
}

func TestValidate_JoinsAllViolations(t *testing.T) {
	def := PayableReport()
	def.Name = ""
	def.Filters[0].Options = ""
	def.Filters = append(def.Filters, def.Filters[2])

	err := Validate(def)

	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, err, ErrMissingOptions)
	assert.ErrorIs(t, err, ErrDuplicateField)
}
