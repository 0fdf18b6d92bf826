package catalogs

import (
	"strconv"

	"github.com/musterpoint/muster/pkg/errors"
)

// Points is a non-negative point cost. Fractional costs in source data are
// preserved as-is; formatting only happens at display time.
type Points float64

// String renders the cost for display. Whole values render without a
// decimal point.
func (p Points) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// ParsePoints parses a cost field from a catalog row. Costs must be
// numeric and non-negative.
func ParsePoints(s string) (Points, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if v < 0 {
		return 0, errors.New("must be non-negative")
	}
	return Points(v), nil
}
