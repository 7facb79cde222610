package domain

import "time"

// DateLayout is the wire format of every date filter value.
const DateLayout = "2006-01-02"

type FieldType string

const (
	FieldTypeLink     FieldType = "Link"
	FieldTypeDate     FieldType = "Date"
	FieldTypeData     FieldType = "Data"
	FieldTypeCurrency FieldType = "Currency"
	FieldTypeInt      FieldType = "Int"
)

// EntityType names the document type a Link field points at.
type EntityType string

const (
	EntityCustomer EntityType = "Customer"
	EntitySupplier EntityType = "Supplier"
)

// KnownEntities lists the entity types a Link filter may reference.
var KnownEntities = []EntityType{EntityCustomer, EntitySupplier}

// DateDefault is a default value relative to the evaluation date.
type DateDefault struct {
	Months int
}

var (
	Today    = DateDefault{Months: 0}
	MonthAgo = DateDefault{Months: -1}
)

// Evaluate returns the default for the given evaluation date.
func (d DateDefault) Evaluate(on time.Time) time.Time {
	return AddMonths(on, d.Months)
}

func (d DateDefault) Format(on time.Time) string {
	return d.Evaluate(on).Format(DateLayout)
}

// AddMonths shifts t by n calendar months and truncates it to a date. The day
// is clamped to the last day of the target month, so Mar 31 minus one month
// is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// FilterField is one filterable parameter of a report.
type FilterField struct {
	FieldName string
	Label     string
	FieldType FieldType
	Options   EntityType   // Link only
	Default   *DateDefault // Date only
	Required  bool
	Width     int // UI hint, 0 when unset
}

// Column is a field the report reads from its source document.
type Column struct {
	FieldName string
	FieldType FieldType
}

// ReportDefinition is a named report exposing an ordered set of filters.
type ReportDefinition struct {
	Name       string
	RefDocType string // document type the report queries
	Filters    []FilterField
	Columns    []Column
	// Constraints always apply, after the filter-driven conditions.
	Constraints []Condition
}

// ColumnNames returns the source field names in declaration order.
func (r ReportDefinition) ColumnNames() []string {
	names := make([]string, 0, len(r.Columns))
	for _, c := range r.Columns {
		names = append(names, c.FieldName)
	}
	return names
}

func (r ReportDefinition) Field(name string) (FilterField, bool) {
	for _, f := range r.Filters {
		if f.FieldName == name {
			return f, true
		}
	}
	return FilterField{}, false
}

// Clone returns a deep copy so callers cannot mutate a registered definition.
func (r ReportDefinition) Clone() ReportDefinition {
	out := ReportDefinition{
		Name:       r.Name,
		RefDocType: r.RefDocType,
		Filters:    make([]FilterField, len(r.Filters)),
	}
	if r.Columns != nil {
		out.Columns = append([]Column(nil), r.Columns...)
	}
	if r.Constraints != nil {
		out.Constraints = make([]Condition, len(r.Constraints))
		for i, c := range r.Constraints {
			c.Values = append([]string(nil), c.Values...)
			out.Constraints[i] = c
		}
	}
	for i, f := range r.Filters {
		if f.Default != nil {
			d := *f.Default
			f.Default = &d
		}
		out.Filters[i] = f
	}
	return out
}

// TimePeriod is the date range selected by a report's from/to filters.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}
