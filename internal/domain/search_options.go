package domain

import (
	"strings"
	"time"
)

// SearchOptions represents search criteria for tasks. Empty fields do not
// filter.
type SearchOptions struct {
	Text             string
	Lists            []ListName
	From             *time.Time
	To               *time.Time
	IncludeCompleted bool
}

// IncludesList reports whether tasks of list are searched
func (o SearchOptions) IncludesList(list ListName) bool {
	if len(o.Lists) == 0 {
		return true
	}
	for _, l := range o.Lists {
		if l == list {
			return true
		}
	}
	return false
}

// Matches reports whether t meets every criterion except the list filter.
// From and To bound the due day inclusively; a task without a date never
// falls inside a date range.
func (o SearchOptions) Matches(t Task) bool {
	if t.Completed && !o.IncludeCompleted {
		return false
	}
	if o.Text != "" {
		needle := strings.ToLower(o.Text)
		if !strings.Contains(strings.ToLower(t.Text), needle) &&
			!strings.Contains(strings.ToLower(t.Link), needle) {
			return false
		}
	}
	if o.From == nil && o.To == nil {
		return true
	}
	if t.Due == nil {
		return false
	}
	if o.From != nil && t.Due.Day.Before(DayOf(*o.From)) {
		return false
	}
	if o.To != nil && t.Due.Day.After(DayOf(*o.To)) {
		return false
	}
	return true
}
