//go:build unit

package dispatch

import (
	"context"
	"testing"

	"event-reminder/internal/pkg/config"
	"event-reminder/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{}, nil
}

func emailConfig() config.NotifyConfig {
	return config.NotifyConfig{
		EmailFrom: "reminders@example.com",
		EmailTo:   "diego@example.com",
	}
}

func TestEmailSendRendersProfileContent(t *testing.T) {
	ses := &fakeSES{}
	ch := NewEmailChannel(ses, emailConfig())

	require.Equal(t, "email", ch.Name())
	require.NoError(t, ch.Send(context.Background(), sampleEvent(t), "1_day_before"))

	require.NotNil(t, ses.input)
	assert.Equal(t, "reminders@example.com", *ses.input.FromEmailAddress)
	assert.Equal(t, []string{"diego@example.com"}, ses.input.Destination.ToAddresses)

	subject := *ses.input.Content.Simple.Subject.Data
	assert.Equal(t, "🎸 ¡Mañana es el concierto de Mastodon!", subject)

	body := *ses.input.Content.Simple.Body.Text.Data
	assert.Contains(t, body, "Teatro Leguía")
	assert.Contains(t, body, "21:00")
}

func TestEmailSendPropagatesFailure(t *testing.T) {
	ses := &fakeSES{err: errs.New("throttled")}
	ch := NewEmailChannel(ses, emailConfig())

	err := ch.Send(context.Background(), sampleEvent(t), "1_day_before")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ses send failed")
}
