package sql

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Where renders conditions as a parameterized WHERE fragment (without the
// keyword) and its positional arguments, in condition order.
func Where(conds []domain.Condition) (string, []any, error) {
	clauses := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds)+1)

	for _, c := range conds {
		if !identifier.MatchString(c.Field) {
			return "", nil, fmt.Errorf("invalid column name %q", c.Field)
		}
		col := "`" + c.Field + "`"

		want := 1
		var clause string
		switch c.Op {
		case domain.OpEqual:
			clause = col + " = ?"
		case domain.OpGTE:
			clause = col + " >= ?"
		case domain.OpLTE:
			clause = col + " <= ?"
		case domain.OpGT:
			clause = col + " > ?"
		case domain.OpNotEqual:
			clause = col + " != ?"
		case domain.OpBetween:
			clause = col + " BETWEEN ? AND ?"
			want = 2
		default:
			return "", nil, fmt.Errorf("unsupported operator %q on %s", c.Op, c.Field)
		}
		if len(c.Values) != want {
			return "", nil, fmt.Errorf("%s %s expects %d value(s), got %d", c.Field, c.Op, want, len(c.Values))
		}

		clauses = append(clauses, clause)
		for _, v := range c.Values {
			args = append(args, v)
		}
	}

	return strings.Join(clauses, " AND "), args, nil
}

// SelectQuery builds the statement the host engine runs for a report: the
// requested columns of the document table, filtered and ordered by posting
// date.
func SelectQuery(docType string, columns []string, conds []domain.Condition) (string, []any, error) {
	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		if !identifier.MatchString(c) {
			return "", nil, fmt.Errorf("invalid column name %q", c)
		}
		cols = append(cols, "`"+c+"`")
	}
	if len(cols) == 0 {
		cols = append(cols, "*")
	}

	where, args, err := Where(conds)
	if err != nil {
		return "", nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM `tab%s`", strings.Join(cols, ", "), docType)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY `" + domain.ColumnPosting + "`"
	return query, args, nil
}
