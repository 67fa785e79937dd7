package event

import (
	"fmt"
	"time"

	"event-reminder/internal/pkg/errs"
)

// Study sheet layout (range A2:H):
//
//	0 event_id | 1 course | 2 topic | 3 date | 4 time | 5 duration | 6 priority | 7 resources
//
// The study reminder is anchored: regardless of the rule's configured
// offsets, the "1_day_before_6pm" label fires at 18:00 local the day
// before the session.
type studyProfile struct{}

// studyEveningLabel is the rule label carrying the fixed 18:00 anchor.
const studyEveningLabel = "1_day_before_6pm"

const studyAnchorHour = 18

func (studyProfile) Category() Category { return CategoryStudy }
func (studyProfile) MinColumns() int    { return 6 }
func (studyProfile) EmbedColor() int    { return 0x00FF00 }

func (p studyProfile) Normalize(row []string) (*Event, error) {
	if len(row) < p.MinColumns() {
		return nil, errs.Mark(errs.New(fmt.Sprintf("study row has %d columns, want %d", len(row), p.MinColumns())), ErrShortRow)
	}
	ev := newEvent(row[0], CategoryStudy, row[3], row[4], map[string]string{
		"course":    cell(row, 1),
		"topic":     cell(row, 2),
		"duration":  cell(row, 5),
		"priority":  cell(row, 6),
		"resources": cell(row, 7),
	})
	if ev.ID() == "" {
		return nil, ErrMissingEventID
	}
	return ev, nil
}

func (studyProfile) AnchorOverride(label string, start time.Time) (time.Time, bool) {
	if label != studyEveningLabel {
		return time.Time{}, false
	}
	eve := start.AddDate(0, 0, -1)
	return time.Date(eve.Year(), eve.Month(), eve.Day(), studyAnchorHour, 0, 0, 0, eve.Location()), true
}

func (studyProfile) Subject(ev *Event, _ string) string {
	return fmt.Sprintf("📚 Recordatorio de estudio - %s", ev.Field("course"))
}

func (studyProfile) Body(ev *Event, _ string) string {
	return fmt.Sprintf(`Hola Diego,

Recuerda tu sesión de estudio programada para mañana:

📖 Curso: %s
📝 Tema: %s
📅 Fecha: %s
⏱️ Duración: %s
⭐ Prioridad: %s

Recursos:
%s

¡A aprender! 🚀
`, ev.Field("course"), ev.Field("topic"), ev.Date(), ev.Field("duration"), ev.Field("priority"), ev.Field("resources"))
}

func (studyProfile) EmbedTitle(label string) string {
	if label == studyEveningLabel {
		return "📚 Recordatorio de Estudio"
	}
	return "🔔 Recordatorio de Estudio"
}

func (studyProfile) EmbedFields(ev *Event) []EmbedField {
	fields := []EmbedField{
		{Name: "📖 Curso", Value: orNA(ev.Field("course")), Inline: true},
		{Name: "📝 Tema", Value: orNA(ev.Field("topic")), Inline: true},
		{Name: "📅 Fecha", Value: orNA(ev.Date()), Inline: true},
		{Name: "⏱️ Duración", Value: orNA(ev.Field("duration")), Inline: true},
		{Name: "⭐ Prioridad", Value: orNA(ev.Field("priority")), Inline: true},
	}
	if res := ev.Field("resources"); res != "" {
		fields = append(fields, EmbedField{Name: "🔗 Recursos", Value: res, Inline: false})
	}
	return fields
}
