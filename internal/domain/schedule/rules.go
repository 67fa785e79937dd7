package schedule

import (
	"os"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Rule schedules one reminder at a relative offset before the event start.
// Rules are static configuration: loaded once per process, never mutated.
type Rule struct {
	Label     string `yaml:"label"`
	LeadDays  int    `yaml:"days"`
	LeadHours int    `yaml:"hours"`
}

// Offset is the total lead time the rule subtracts from the event start.
// A lead day is a flat 24 hours; no calendar arithmetic.
func (r Rule) Offset() time.Duration {
	return time.Duration(r.LeadDays)*24*time.Hour + time.Duration(r.LeadHours)*time.Hour
}

// RuleSet maps each category to its rules in declaration order. Due labels
// are always reported in that order.
type RuleSet map[event.Category][]Rule

var ErrEmptyRuleSet = errs.New("rule set has no rules")

// DefaultRuleSet returns the built-in rule tables.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		event.CategoryConcert: {
			{Label: "2_weeks_before", LeadDays: 14},
			{Label: "1_day_before", LeadDays: 1},
			{Label: "4_hours_before", LeadHours: 4},
		},
		event.CategoryInterview: {
			{Label: "1_week_before", LeadDays: 7},
			{Label: "1_day_before", LeadDays: 1},
			{Label: "1_hour_before", LeadHours: 1},
		},
		event.CategoryStudy: {
			{Label: "1_day_before_6pm", LeadDays: 1},
		},
	}
}

// LoadRuleSet reads the YAML rule tables at path. An empty path returns the
// built-in defaults; a category absent from the file keeps its defaults.
func LoadRuleSet(path string) (RuleSet, error) {
	rules := DefaultRuleSet()
	if path == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read rules file")
	}

	var override map[string][]Rule
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, errs.Wrap(err, "failed to parse rules file")
	}

	for name, rs := range override {
		cat, err := event.ParseCategory(name)
		if err != nil {
			return nil, errs.Wrapf(err, "rules file references unknown category %q", name)
		}
		if len(rs) == 0 {
			return nil, errs.Wrapf(ErrEmptyRuleSet, "category %q", name)
		}
		rules[cat] = rs
	}
	return rules, nil
}
