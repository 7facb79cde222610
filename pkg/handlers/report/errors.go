package report

import (
	"errors"

	"github.com/de-tools/report-atlas/pkg/services/filters"
)

var filterErrors = []error{
	filters.ErrUnknownField,
	filters.ErrMissingRequired,
	filters.ErrInvalidDate,
	filters.ErrInvalidRange,
}

func isFilterError(err error) bool {
	for _, target := range filterErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
