package schedule

import (
	"time"

	"event-reminder/internal/pkg/errs"
)

// Granularity is the invocation context of a run. It decides how wide the
// notification window opens and whether study sessions are evaluated.
type Granularity string

const (
	// GranularityFrequent is the hourly trigger: narrow windows so
	// short-lead rules (1h / 4h before) do not fire early.
	GranularityFrequent Granularity = "frequent"
	// GranularityNormal is the evening trigger: wide windows, covers study.
	GranularityNormal Granularity = "normal"
	// GranularityManual is an operator-initiated run: behaves like the
	// evening trigger.
	GranularityManual Granularity = "manual"
)

var ErrUnknownGranularity = errs.New("unknown trigger granularity")

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityFrequent, GranularityNormal, GranularityManual:
		return Granularity(s), nil
	}
	return "", errs.Wrap(ErrUnknownGranularity, s)
}

func (g Granularity) String() string { return string(g) }

// HalfWidth is half the notification window: a rule is due while now is
// within [notification_time - HalfWidth, notification_time + HalfWidth].
func (g Granularity) HalfWidth() time.Duration {
	if g == GranularityFrequent {
		return time.Hour
	}
	return 3 * time.Hour
}

// IncludesStudy reports whether study sessions are evaluated on this run.
// The frequent trigger skips them; they only make sense on the evening
// pass or when forced by hand.
func (g Granularity) IncludesStudy() bool {
	return g == GranularityNormal || g == GranularityManual
}
