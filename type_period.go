package ledger

import (
	"fmt"
	"strings"
)

// Period is a named bucket size for grouping transactions.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Key returns the bucket identifier for the period containing d, e.g.
// "2025-08" for a monthly period or "2025" for a yearly one.
func (p Period) Key(d Date) string {
	switch p {
	case Daily:
		return d.String()
	case Weekly:
		start := d.StartOf(Weekly)
		return fmt.Sprintf("%s/%s", start, start.Add(6))
	case Monthly:
		return d.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", d.Year(), (d.Month()-1)/3+1)
	case Yearly:
		return d.Format("2006")
	default:
		panic("unknown period")
	}
}

// Range returns the Range of the period containing d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
