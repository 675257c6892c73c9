package ledger

// Range represents an inclusive range of dates. The zero value is the open
// range that contains every date.
type Range struct{ From, To Date }

// NewRange returns the inclusive range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether date is in the range, boundaries included. A zero
// boundary is open on that side.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// IsOpen reports whether the range has no boundary at all.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }
