package domain

// Well-known filter and column names shared by the accounting reports.
const (
	FieldFromDate      = "from_date"
	FieldToDate        = "to_date"
	ColumnPosting      = "posting_date"
	ColumnDocStatus    = "docstatus"
	ColumnOutstanding  = "outstanding_amount"
	DocStatusSubmitted = "1"
)

// FilterValues maps a fieldname to its string value.
type FilterValues map[string]string

func (v FilterValues) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

type Operator string

const (
	OpEqual    Operator = "="
	OpBetween  Operator = "between"
	OpGTE      Operator = ">="
	OpLTE      Operator = "<="
	OpGT       Operator = ">"
	OpNotEqual Operator = "!="
)

// Condition is one predicate handed to the host query engine.
type Condition struct {
	Field  string
	Op     Operator
	Values []string
}
