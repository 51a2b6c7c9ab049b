package date

import (
	"iter"
	"sort"
)

// History stores a chronological series of values, each associated with a date.
// The series is always sorted by date. Duplicate dates are permitted: entries
// sharing a date keep their insertion order. It is built once by insertion and
// read-only afterwards; all lookups use binary search.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of entries in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// upperBound returns the index of the first entry strictly after 'day'.
func (h *History[T]) upperBound(day Date) int {
	return sort.Search(len(h.days), func(i int) bool { return h.days[i].After(day) })
}

// lowerBound returns the index of the first entry at or after 'day'.
func (h *History[T]) lowerBound(day Date) int {
	return sort.Search(len(h.days), func(i int) bool { return !h.days[i].Before(day) })
}

// Insert adds a value at the given date, keeping the series sorted.
// An entry inserted at an already present date goes after the existing ones.
// It returns the value just stored.
func (h *History[T]) Insert(on Date, v T) T {
	i := h.upperBound(on)
	h.days = append(h.days, Date{})
	h.values = append(h.values, *new(T))
	copy(h.days[i+1:], h.days[i:])
	copy(h.values[i+1:], h.values[i:])
	h.days[i], h.values[i] = on, v
	return v
}

// Get returns the first value recorded exactly at 'day' and true, or the zero
// value and false if the date is absent.
func (h *History[T]) Get(day Date) (T, bool) {
	i := h.lowerBound(day)
	if i < len(h.days) && h.days[i] == day {
		return h.values[i], true
	}
	return *new(T), false
}

// ValueAsOf returns the value on a given day, or the most recent value before
// it. It returns the value and true if found, otherwise the zero value and
// false.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i := h.upperBound(day)
	if i == 0 {
		return *new(T), false // no entry on or before the given day
	}
	return h.values[i-1], true
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Between returns an iterator over the date/value pairs with from ≤ date ≤ to,
// inclusive on both ends, in chronological order. The sequence can be iterated
// more than once.
func (h *History[T]) Between(from, to Date) iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i := h.lowerBound(from); i < len(h.days); i++ {
			if h.days[i].After(to) {
				return
			}
			if !yield(h.days[i], h.values[i]) {
				return
			}
		}
	}
}
