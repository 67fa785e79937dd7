package event

import (
	"strings"
	"time"

	"event-reminder/internal/pkg/errs"
)

var (
	ErrShortRow       = errs.New("row has too few columns")
	ErrMissingEventID = errs.New("row has no event id")
	ErrNoSchedule     = errs.New("event has no parseable date/time")
)

// cellLayout is the date+time format used by every sheet.
const cellLayout = "2006-01-02 15:04"

// Event is one scheduled entry parsed from a sheet row. It carries no
// persistent identity beyond (id, category); every evaluation pass
// rebuilds it from the source row.
type Event struct {
	id        string
	category  Category
	date      string
	timeOfDay string
	fields    map[string]string
}

func newEvent(id string, category Category, date, timeOfDay string, fields map[string]string) *Event {
	return &Event{
		id:        strings.TrimSpace(id),
		category:  category,
		date:      strings.TrimSpace(date),
		timeOfDay: strings.TrimSpace(timeOfDay),
		fields:    fields,
	}
}

func (e *Event) ID() string         { return e.id }
func (e *Event) Category() Category { return e.category }
func (e *Event) Date() string       { return e.date }
func (e *Event) TimeOfDay() string  { return e.timeOfDay }

// Field returns a category-specific field by name, empty string when absent.
func (e *Event) Field(name string) string { return e.fields[name] }

// StartsAt combines the event's date and time-of-day in loc. Returns
// ErrNoSchedule when either cell is empty or unparseable; callers must
// treat that as "cannot evaluate", not as "no rule matched".
func (e *Event) StartsAt(loc *time.Location) (time.Time, error) {
	if e.date == "" || e.timeOfDay == "" {
		return time.Time{}, errs.Mark(errs.New("missing date or time cell"), ErrNoSchedule)
	}
	t, err := time.ParseInLocation(cellLayout, e.date+" "+e.timeOfDay, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrNoSchedule)
	}
	return t, nil
}

// cell reads a positional column, tolerating rows that end early.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
