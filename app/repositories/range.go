package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Range restricts reports to orders placed on or after a cutoff date.
// RangeAll is the default and matches every order.
type Range string

const (
	RangeAll    Range = "all"
	Range30Days Range = "30d"
	Range90Days Range = "90d"
	RangeYear   Range = "1y"
)

// ParseRange maps a query-string value to a Range. Empty means all time.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case "", RangeAll:
		return RangeAll, nil
	case Range30Days, Range90Days, RangeYear:
		return Range(s), nil
	default:
		return RangeAll, fmt.Errorf("unknown range %q (use all, 30d, 90d or 1y)", s)
	}
}

// cutoff returns the earliest order_date included, as a YYYY-MM-DD string.
// Order dates are stored as zero-padded strings, so plain string comparison
// is chronological on every driver.
func (r Range) cutoff(now time.Time) (string, bool) {
	switch r {
	case Range30Days:
		return now.AddDate(0, 0, -30).Format("2006-01-02"), true
	case Range90Days:
		return now.AddDate(0, 0, -90).Format("2006-01-02"), true
	case RangeYear:
		return now.AddDate(-1, 0, 0).Format("2006-01-02"), true
	default:
		return "", false
	}
}

// apply narrows q to orders within the range. The orders table must be
// aliased "o" in the enclosing query.
func (r Range) apply(q *gorm.DB) *gorm.DB {
	if cut, ok := r.cutoff(time.Now()); ok {
		return q.Where("o.order_date >= ?", cut)
	}
	return q
}
