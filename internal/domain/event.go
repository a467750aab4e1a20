package domain

import (
	"fmt"
	"time"
)

// EventDateLayout is the canonical form every event date is normalized to
// before it reaches storage.
const EventDateLayout = "2006-01-02"

// looseDateLayout accepts unpadded month/day input such as "2024-5-2".
const looseDateLayout = "2006-1-2"

type Event struct {
	ID        string `json:"event_id"`
	FamilyID  string `json:"family_id"`
	Name      string `json:"event_name"`
	Date      string `json:"event_date"`
	Type      string `json:"event_type"`
	CreatedOn string `json:"created_on"`
}

// NormalizeEventDate parses a user-supplied date, tolerating missing zero
// padding, and returns it in canonical YYYY-MM-DD form.
func NormalizeEventDate(input string) (string, error) {
	t, err := time.Parse(looseDateLayout, input)
	if err != nil {
		return "", fmt.Errorf("%w: invalid event date %q", ErrValidation, input)
	}
	return t.Format(EventDateLayout), nil
}

// EventMonthGroup is one calendar-month bucket of events, labeled the way the
// calendar screen renders it ("May 2024").
type EventMonthGroup struct {
	Label  string  `json:"month"`
	Events []Event `json:"events"`
}

// GroupEventsByMonth buckets events by calendar month and year. Each event
// lands in exactly one bucket; bucket order follows first appearance in the
// input, so date-ascending input yields chronological buckets. Events whose
// date does not parse are skipped rather than trusted.
func GroupEventsByMonth(events []Event) []EventMonthGroup {
	var groups []EventMonthGroup
	index := make(map[string]int)

	for _, ev := range events {
		t, err := time.Parse(EventDateLayout, ev.Date)
		if err != nil {
			continue
		}
		label := t.Format("January 2006")
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, EventMonthGroup{Label: label})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}
	return groups
}
