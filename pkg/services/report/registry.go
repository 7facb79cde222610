package report

import (
	"errors"
	"sort"

	"github.com/de-tools/report-atlas/pkg/models/domain"
)

// Builder collects report definitions before they are frozen into a Registry.
type Builder struct {
	defs map[string]domain.ReportDefinition
}

func NewBuilder() *Builder {
	return &Builder{
		defs: make(map[string]domain.ReportDefinition),
	}
}

// Register adds def under its name. A later registration with the same name
// replaces the earlier one.
func (b *Builder) Register(def domain.ReportDefinition) *Builder {
	b.defs[def.Name] = def.Clone()
	return b
}

// Build freezes the registered definitions. The builder may keep being used;
// later registrations do not affect registries already built.
func (b *Builder) Build() *Registry {
	defs := make(map[string]domain.ReportDefinition, len(b.defs))
	for name, def := range b.defs {
		defs[name] = def.Clone()
	}
	return &Registry{defs: defs}
}

// Registry is a read-only lookup table from report name to definition. It is
// safe for concurrent use.
type Registry struct {
	defs map[string]domain.ReportDefinition
}

// Get looks a report up by its exact name.
func (r *Registry) Get(name string) (domain.ReportDefinition, bool) {
	def, ok := r.defs[name]
	if !ok {
		return domain.ReportDefinition{}, false
	}
	return def.Clone(), true
}

// Names returns the registered report names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every definition ordered by name.
func (r *Registry) List() []domain.ReportDefinition {
	names := r.Names()
	out := make([]domain.ReportDefinition, 0, len(names))
	for _, name := range names {
		out = append(out, r.defs[name].Clone())
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.defs)
}

// Validate checks every registered definition and joins the failures.
func (r *Registry) Validate() error {
	var errs []error
	for _, def := range r.List() {
		errs = append(errs, Validate(def))
	}
	return errors.Join(errs...)
}
