package event

import (
	"time"

	"event-reminder/internal/pkg/errs"
)

type Category string

const (
	CategoryConcert   Category = "concert"
	CategoryInterview Category = "interview"
	CategoryStudy     Category = "study"
)

var ErrUnknownCategory = errs.New("unknown event category")

// Categories returns every category in processing order.
func Categories() []Category {
	return []Category{CategoryConcert, CategoryInterview, CategoryStudy}
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryConcert, CategoryInterview, CategoryStudy:
		return Category(s), nil
	}
	return "", errs.Wrap(ErrUnknownCategory, s)
}

func (c Category) String() string { return string(c) }

// EmbedField is one name/value pair of a rich (Discord-style) message.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Profile is the per-category capability set: it knows the fixed column
// layout of its sheet, how to render messages for its events, and which
// rule labels carry a fixed-anchor notification time. Selecting behavior
// through a Profile replaces per-category conditionals everywhere else.
type Profile interface {
	Category() Category
	MinColumns() int

	// Normalize converts a raw sheet row into an Event.
	// Returns ErrShortRow / ErrMissingEventID for rejected rows; malformed
	// optional fields never fail.
	Normalize(row []string) (*Event, error)

	// Subject and Body render the email message for a rule label.
	Subject(ev *Event, label string) string
	Body(ev *Event, label string) string

	// EmbedTitle, EmbedColor and EmbedFields render the webhook message.
	EmbedTitle(label string) string
	EmbedColor() int
	EmbedFields(ev *Event) []EmbedField

	// AnchorOverride pins the notification time of a rule label to a fixed
	// clock time instead of an offset from the event start. The second
	// return value reports whether the label has such an override.
	AnchorOverride(label string, start time.Time) (time.Time, bool)
}

var profiles = map[Category]Profile{
	CategoryConcert:   concertProfile{},
	CategoryInterview: interviewProfile{},
	CategoryStudy:     studyProfile{},
}

func ProfileFor(c Category) Profile {
	return profiles[c]
}
