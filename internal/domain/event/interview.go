package event

import (
	"fmt"
	"time"

	"event-reminder/internal/pkg/errs"
)

// Interview sheet layout (range A2:I):
//
//	0 event_id | 1 company | 2 position | 3 date | 4 time | 5 interviewer | 6 stage | 7 - | 8 prep_notes
type interviewProfile struct{}

func (interviewProfile) Category() Category { return CategoryInterview }
func (interviewProfile) MinColumns() int    { return 7 }
func (interviewProfile) EmbedColor() int    { return 0x0099FF }

func (p interviewProfile) Normalize(row []string) (*Event, error) {
	if len(row) < p.MinColumns() {
		return nil, errs.Mark(errs.New(fmt.Sprintf("interview row has %d columns, want %d", len(row), p.MinColumns())), ErrShortRow)
	}
	ev := newEvent(row[0], CategoryInterview, row[3], row[4], map[string]string{
		"company":     cell(row, 1),
		"position":    cell(row, 2),
		"interviewer": cell(row, 5),
		"stage":       cell(row, 6),
		"prep_notes":  cell(row, 8),
	})
	if ev.ID() == "" {
		return nil, ErrMissingEventID
	}
	return ev, nil
}

func (interviewProfile) AnchorOverride(string, time.Time) (time.Time, bool) {
	return time.Time{}, false
}

func (interviewProfile) Subject(ev *Event, label string) string {
	switch label {
	case "1_day_before":
		return fmt.Sprintf("💼 Mañana: Entrevista con %s", ev.Field("company"))
	case "1_hour_before":
		return fmt.Sprintf("⏰ En 1 hora - Entrevista con %s", ev.Field("company"))
	default:
		return fmt.Sprintf("💼 Entrevista en 1 semana - %s", ev.Field("company"))
	}
}

func (interviewProfile) Body(ev *Event, label string) string {
	switch label {
	case "1_day_before":
		return fmt.Sprintf(`Hola Diego,

¡Mañana es tu entrevista!

🏢 Empresa: %s
👔 Posición: %s
🕒 Hora: %s
👤 Entrevistador: %s
📊 Etapa: %s

Últimos preparativos:
%s

Revisa:
- Link de la reunión (si es virtual)
- Documentos necesarios
- Preguntas que quieres hacer

¡Mucha suerte! 🍀
`, ev.Field("company"), ev.Field("position"), ev.TimeOfDay(), ev.Field("interviewer"), ev.Field("stage"), ev.Field("prep_notes"))
	case "1_hour_before":
		return fmt.Sprintf(`¡Diego!

Tu entrevista con %s es en 1 HORA.

🕒 Hora: %s
👤 Entrevistador: %s
📊 Etapa: %s

Checklist final:
✅ Ambiente listo (si es virtual)
✅ Agua a mano
✅ Notas de repaso
✅ Actitud positiva

¡Tú puedes! 💪
`, ev.Field("company"), ev.TimeOfDay(), ev.Field("interviewer"), ev.Field("stage"))
	default:
		return fmt.Sprintf(`Hola Diego,

Tienes una entrevista programada para dentro de 1 semana:

🏢 Empresa: %s
👔 Posición: %s
📅 Fecha: %s
🕒 Hora: %s
👤 Entrevistador: %s
📊 Etapa: %s

Tiempo para preparar:
%s

¡Éxito! 💪
`, ev.Field("company"), ev.Field("position"), ev.Date(), ev.TimeOfDay(), ev.Field("interviewer"), ev.Field("stage"), ev.Field("prep_notes"))
	}
}

func (interviewProfile) EmbedTitle(label string) string {
	emoji := map[string]string{
		"1_week_before": "💼",
		"1_day_before":  "🎯",
		"1_hour_before": "⚡",
	}[label]
	if emoji == "" {
		emoji = "🔔"
	}
	return emoji + " Recordatorio de Entrevista"
}

func (interviewProfile) EmbedFields(ev *Event) []EmbedField {
	fields := []EmbedField{
		{Name: "🏢 Empresa", Value: orNA(ev.Field("company")), Inline: true},
		{Name: "👔 Posición", Value: orNA(ev.Field("position")), Inline: true},
		{Name: "📅 Fecha", Value: orNA(ev.Date()), Inline: true},
		{Name: "🕒 Hora", Value: orNA(ev.TimeOfDay()), Inline: true},
		{Name: "👤 Entrevistador", Value: orNA(ev.Field("interviewer")), Inline: true},
		{Name: "📊 Etapa", Value: orNA(ev.Field("stage")), Inline: true},
	}
	if prep := ev.Field("prep_notes"); prep != "" {
		fields = append(fields, EmbedField{Name: "📝 Preparación", Value: prep, Inline: false})
	}
	return fields
}
