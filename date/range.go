package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains returns true when the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
