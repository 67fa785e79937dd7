package schedule

import (
	"strconv"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/pkg/errs"
)

// SentChecker reports whether a rule label was already delivered for the
// event under evaluation. It is consulted during evaluation, not just
// before dispatch, so already-sent labels never reach the dispatcher.
// Implementations decide their own failure policy; the ledger adapter
// fails open (lookup error = not yet sent).
type SentChecker func(label string) bool

// Evaluator decides which rule labels are due for an event at a given
// instant. It is the only component with timing semantics; everything
// around it is I/O.
type Evaluator struct {
	loc *time.Location
}

// NewEvaluator builds an evaluator interpreting event cells in the named
// IANA zone.
func NewEvaluator(timezone string) (*Evaluator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid reminder timezone %q", timezone)
	}
	return &Evaluator{loc: loc}, nil
}

func (e *Evaluator) Location() *time.Location { return e.loc }

// DueLabels returns the labels whose notification window contains now and
// that the checker has not seen yet, in rule declaration order.
//
// An event whose date/time cannot be combined yields event.ErrNoSchedule,
// which callers must log distinctly from an empty result. Past events and
// windows that fully elapsed before evaluation yield nothing; there is no
// catch-up for missed windows.
func (e *Evaluator) DueLabels(ev *event.Event, rules []Rule, now time.Time, g Granularity, alreadySent SentChecker) ([]string, error) {
	start, err := ev.StartsAt(e.loc)
	if err != nil {
		return nil, err
	}
	if start.Before(now) {
		return nil, nil
	}

	profile := event.ProfileFor(ev.Category())
	half := g.HalfWidth()

	var due []string
	for _, rule := range rules {
		notifyAt := start.Add(-rule.Offset())
		if at, ok := profile.AnchorOverride(rule.Label, start); ok {
			notifyAt = at
		}
		// Window bounds are inclusive.
		if now.Before(notifyAt.Add(-half)) || now.After(notifyAt.Add(half)) {
			continue
		}
		if alreadySent != nil && alreadySent(rule.Label) {
			continue
		}
		due = append(due, rule.Label)
	}
	return due, nil
}

// TimeUntil renders the distance to an event start for log lines and
// message footers.
func TimeUntil(start, now time.Time) string {
	d := start.Sub(now)
	switch {
	case d >= 24*time.Hour:
		return strconv.Itoa(int(d.Hours())/24) + " día(s)"
	case d >= time.Hour:
		return strconv.Itoa(int(d.Hours())) + " hora(s)"
	case d >= 0:
		return strconv.Itoa(int(d.Minutes())) + " minuto(s)"
	default:
		return "N/A"
	}
}
