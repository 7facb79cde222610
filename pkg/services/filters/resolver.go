package filters

import (
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/clock"
)

var (
	ErrUnknownField    = errors.New("unknown filter")
	ErrMissingRequired = errors.New("missing required filter")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange    = errors.New("from_date is after to_date")
)

// Resolver fills filter values from their defaults and checks them before
// they are handed to the query layer.
type Resolver struct {
	clock clock.Clock
}

func NewResolver(c clock.Clock) *Resolver {
	return &Resolver{clock: c}
}

// Defaults evaluates every declared default against the resolver's clock.
func (r *Resolver) Defaults(def domain.ReportDefinition) domain.FilterValues {
	return DefaultsOn(def, r.clock.Now())
}

// DefaultsOn evaluates every declared default against the given date.
func DefaultsOn(def domain.ReportDefinition, on time.Time) domain.FilterValues {
	values := make(domain.FilterValues)
	for _, f := range def.Filters {
		if f.Default != nil {
			values[f.FieldName] = f.Default.Format(on)
		}
	}
	return values
}

// Resolve merges input over the defaults and validates the result. Every
// violation is reported, not just the first.
func (r *Resolver) Resolve(def domain.ReportDefinition, input domain.FilterValues) (domain.FilterValues, error) {
	values := r.Defaults(def)
	var errs []error

	for name, v := range input {
		if _, ok := def.Field(name); !ok {
			errs = append(errs, fmt.Errorf("%q: %w", name, ErrUnknownField))
			continue
		}
		values[name] = v
	}

	for _, f := range def.Filters {
		v := values[f.FieldName]
		if v == "" {
			delete(values, f.FieldName)
			if f.Required {
				errs = append(errs, fmt.Errorf("%q: %w", f.FieldName, ErrMissingRequired))
			}
			continue
		}
		if f.FieldType == domain.FieldTypeDate {
			if _, err := time.Parse(domain.DateLayout, v); err != nil {
				errs = append(errs, fmt.Errorf("%q=%q: %w", f.FieldName, v, ErrInvalidDate))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if period, ok := Period(values); ok && period.Start.After(period.End) {
		return nil, fmt.Errorf("%s > %s: %w", values[domain.FieldFromDate], values[domain.FieldToDate], ErrInvalidRange)
	}
	return values, nil
}

// Period returns the date range selected by values when both ends are set
// and well-formed.
func Period(values domain.FilterValues) (domain.TimePeriod, bool) {
	start, err := time.Parse(domain.DateLayout, values.Get(domain.FieldFromDate))
	if err != nil {
		return domain.TimePeriod{}, false
	}
	end, err := time.Parse(domain.DateLayout, values.Get(domain.FieldToDate))
	if err != nil {
		return domain.TimePeriod{}, false
	}
	return domain.TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(unixDay(end)-unixDay(start)) + 1,
	}, true
}

// unixDay counts whole days since the epoch. time.Time.Sub saturates after
// ~292 years, so day counts are taken from the calendar instead.
func unixDay(t time.Time) int64 {
	return t.Unix() / 86400
}
