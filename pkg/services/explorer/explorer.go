package explorer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/clock"
	"github.com/de-tools/report-atlas/pkg/services/filters"
	storesql "github.com/de-tools/report-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
)

var ErrReportNotFound = errors.New("report not found")

// Catalog is the read side of the report registry.
type Catalog interface {
	Get(name string) (domain.ReportDefinition, bool)
	List() []domain.ReportDefinition
}

// Parameters is everything the host query engine needs to run a report.
type Parameters struct {
	Report     domain.ReportDefinition
	Values     domain.FilterValues
	Period     *domain.TimePeriod
	Conditions []domain.Condition
	Query      string
	Args       []any
}

type Explorer interface {
	ListReports(ctx context.Context) []domain.ReportDefinition
	GetReport(ctx context.Context, name string) (domain.ReportDefinition, error)
	// Today is the evaluation date used when a caller does not supply one.
	Today(ctx context.Context) time.Time
	Parameterize(ctx context.Context, name string, on time.Time, input domain.FilterValues) (*Parameters, error)
}

type reportExplorer struct {
	catalog Catalog
	clock   clock.Clock
}

func NewExplorer(catalog Catalog, c clock.Clock) Explorer {
	return &reportExplorer{catalog: catalog, clock: c}
}

func (e *reportExplorer) ListReports(_ context.Context) []domain.ReportDefinition {
	return e.catalog.List()
}

func (e *reportExplorer) GetReport(_ context.Context, name string) (domain.ReportDefinition, error) {
	def, ok := e.catalog.Get(name)
	if !ok {
		return domain.ReportDefinition{}, fmt.Errorf("%q: %w", name, ErrReportNotFound)
	}
	return def, nil
}

func (e *reportExplorer) Today(_ context.Context) time.Time {
	return e.clock.Now()
}

// Parameterize resolves input against the report's filters as of the given
// date (the clock's date when on is zero) and renders the query conditions.
func (e *reportExplorer) Parameterize(
	ctx context.Context,
	name string,
	on time.Time,
	input domain.FilterValues,
) (*Parameters, error) {
	logger := zerolog.Ctx(ctx)

	def, err := e.GetReport(ctx, name)
	if err != nil {
		return nil, err
	}
	if on.IsZero() {
		on = e.clock.Now()
	}

	values, err := filters.NewResolver(clock.Fixed(on)).Resolve(def, input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	conds := filters.Conditions(def, values)
	query, args, err := storesql.SelectQuery(def.RefDocType, def.ColumnNames(), conds)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to render query: %w", name, err)
	}

	params := &Parameters{
		Report:     def,
		Values:     values,
		Conditions: conds,
		Query:      query,
		Args:       args,
	}
	if period, ok := filters.Period(values); ok {
		params.Period = &period
	}

	logger.Debug().
		Str("report", name).
		Str("evaluated_on", on.Format(domain.DateLayout)).
		Int("conditions", len(conds)).
		Msg("report parameterized")
	return params, nil
}
