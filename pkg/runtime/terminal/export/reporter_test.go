package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = api.Report{
	Name:        "Customer Statement Report",
	RefDocType:  "Sales Invoice",
	EvaluatedOn: "2024-03-15",
	Filters: []api.FilterField{
		{FieldName: "customer", Label: "Customer", FieldType: "Link", Options: "Customer", Required: true},
		{FieldName: "from_date", Label: "From Date", FieldType: "Date", Default: "2024-02-15", Required: true},
	},
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	require.NoError(t, r.HandleReport(sample))

	out := buf.String()
	assert.Contains(t, out, "Customer Statement Report (Sales Invoice)")
	assert.Contains(t, out, "| customer     | Link -> Customer   |              | yes      |")
	assert.Contains(t, out, "| from_date    | Date               | 2024-02-15   | yes      |")
}

func TestReporter_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	require.NoError(t, r.SetFormat("YAML"))

	require.NoError(t, r.HandleReport(sample))

	var got api.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestReporter_Conditions(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.HandleConditions(api.Conditions{
		Report:  "Payable Report",
		Filters: map[string]string{"to_date": "2024-03-15"},
		Conditions: []api.Condition{
			{Field: "posting_date", Op: "<=", Values: []string{"2024-03-15"}},
		},
		Query: "SELECT 1",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "- posting_date <= 2024-03-15")
	assert.Contains(t, buf.String(), "to_date: 2024-03-15")
}

func TestReporter_SetFormat_Rejects(t *testing.T) {
	assert.Error(t, NewReporter(nil).SetFormat("xml"))
}
