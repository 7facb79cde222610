package report

import (
	"errors"
	"fmt"
	"slices"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

var (
	ErrEmptyName           = errors.New("report name cannot be empty")
	ErrEmptyFieldName      = errors.New("fieldname cannot be empty")
	ErrDuplicateField      = errors.New("duplicate fieldname")
	ErrMissingOptions      = errors.New("link field has no options")
	ErrUnknownEntity       = errors.New("link field references an unknown entity type")
	ErrMisplacedDefault    = errors.New("date default on a non-date field")
	ErrInvalidDefaultRange = errors.New("from_date default is after to_date default")
)

// Validate reports every structural problem in def. It returns nil for a
// well-formed definition.
func Validate(def domain.ReportDefinition) error {
	var errs []error
	if def.Name == "" {
		errs = append(errs, ErrEmptyName)
	}

	seen := make(map[string]struct{}, len(def.Filters))
	for i, f := range def.Filters {
		if f.FieldName == "" {
			errs = append(errs, fmt.Errorf("%s: filter #%d: %w", def.Name, i, ErrEmptyFieldName))
			continue
		}
		if _, dup := seen[f.FieldName]; dup {
			errs = append(errs, fmt.Errorf("%s: %q: %w", def.Name, f.FieldName, ErrDuplicateField))
		}
		seen[f.FieldName] = struct{}{}

		if f.FieldType == domain.FieldTypeLink {
			switch {
			case f.Options == "":
				errs = append(errs, fmt.Errorf("%s: %q: %w", def.Name, f.FieldName, ErrMissingOptions))
			case !slices.Contains(domain.KnownEntities, f.Options):
				errs = append(errs, fmt.Errorf("%s: %q -> %q: %w", def.Name, f.FieldName, f.Options, ErrUnknownEntity))
			}
		}
		if f.Default != nil && f.FieldType != domain.FieldTypeDate {
			errs = append(errs, fmt.Errorf("%s: %q: %w", def.Name, f.FieldName, ErrMisplacedDefault))
		}
	}

	from, hasFrom := def.Field(domain.FieldFromDate)
	to, hasTo := def.Field(domain.FieldToDate)
	// AddMonths is monotonic in its month offset, so comparing offsets is
	// equivalent to comparing the evaluated dates on every day.
	if hasFrom && hasTo && from.Default != nil && to.Default != nil && from.Default.Months > to.Default.Months {
		errs = append(errs, fmt.Errorf("%s: %w", def.Name, ErrInvalidDefaultRange))
	}

	return errors.Join(errs...)
}
