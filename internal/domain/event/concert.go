package event

import (
	"fmt"
	"time"

	"event-reminder/internal/pkg/errs"
)

// Concert sheet layout (range A2:H):
//
//	0 event_id | 1 band | 2 venue | 3 date | 4 time | 5 location | 6 - | 7 notes
type concertProfile struct{}

func (concertProfile) Category() Category { return CategoryConcert }
func (concertProfile) MinColumns() int    { return 6 }
func (concertProfile) EmbedColor() int    { return 0xFF0000 }

func (p concertProfile) Normalize(row []string) (*Event, error) {
	if len(row) < p.MinColumns() {
		return nil, errs.Mark(errs.New(fmt.Sprintf("concert row has %d columns, want %d", len(row), p.MinColumns())), ErrShortRow)
	}
	ev := newEvent(row[0], CategoryConcert, row[3], row[4], map[string]string{
		"band":     cell(row, 1),
		"venue":    cell(row, 2),
		"location": cell(row, 5),
		"notes":    cell(row, 7),
	})
	if ev.ID() == "" {
		return nil, ErrMissingEventID
	}
	return ev, nil
}

func (concertProfile) AnchorOverride(string, time.Time) (time.Time, bool) {
	return time.Time{}, false
}

func (concertProfile) Subject(ev *Event, label string) string {
	switch label {
	case "1_day_before":
		return fmt.Sprintf("🎸 ¡Mañana es el concierto de %s!", ev.Field("band"))
	case "4_hours_before":
		return fmt.Sprintf("⏰ En 4 horas - Concierto de %s", ev.Field("band"))
	default:
		return fmt.Sprintf("🎸 Concierto en 2 semanas - %s", ev.Field("band"))
	}
}

func (concertProfile) Body(ev *Event, label string) string {
	switch label {
	case "1_day_before":
		return fmt.Sprintf(`¡Hola Diego!

¡Mañana es el gran día!

🎤 Artista: %s
📍 Lugar: %s
🕒 Hora: %s
🌎 Ubicación: %s

Revisa:
- Entradas impresas o descargadas
- Transporte al venue
- Horario de llegada

%s

¡A disfrutar! 🎉
`, ev.Field("band"), ev.Field("venue"), ev.TimeOfDay(), ev.Field("location"), ev.Field("notes"))
	case "4_hours_before":
		return fmt.Sprintf(`¡Diego!

¡Ya casi es hora! El concierto de %s comienza en 4 horas.

🕒 Hora de inicio: %s
📍 Lugar: %s

Verifica:
- Tienes tus entradas
- Sal con tiempo suficiente
- Carga tu celular

¡Disfrútalo! 🤘
`, ev.Field("band"), ev.TimeOfDay(), ev.Field("venue"))
	default:
		return fmt.Sprintf(`¡Hola Diego!

Te recuerdo que tienes un concierto próximo:

🎤 Artista: %s
📍 Lugar: %s
📅 Fecha: %s
🕒 Hora: %s
🌎 Ubicación: %s

%s

¡Prepara todo con anticipación!
`, ev.Field("band"), ev.Field("venue"), ev.Date(), ev.TimeOfDay(), ev.Field("location"), ev.Field("notes"))
	}
}

func (concertProfile) EmbedTitle(label string) string {
	emoji := map[string]string{
		"2_weeks_before": "🎸",
		"1_day_before":   "🎉",
		"4_hours_before": "⏰",
	}[label]
	if emoji == "" {
		emoji = "🔔"
	}
	return emoji + " Recordatorio de Concierto"
}

func (concertProfile) EmbedFields(ev *Event) []EmbedField {
	fields := []EmbedField{
		{Name: "🎤 Artista", Value: orNA(ev.Field("band")), Inline: true},
		{Name: "📍 Venue", Value: orNA(ev.Field("venue")), Inline: true},
		{Name: "📅 Fecha", Value: orNA(ev.Date()), Inline: true},
		{Name: "🕒 Hora", Value: orNA(ev.TimeOfDay()), Inline: true},
		{Name: "🌎 Ubicación", Value: orNA(ev.Field("location")), Inline: false},
	}
	if notes := ev.Field("notes"); notes != "" {
		fields = append(fields, EmbedField{Name: "📝 Notas", Value: notes, Inline: false})
	}
	return fields
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
