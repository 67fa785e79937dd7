package dispatch

import (
	"context"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/pkg/config"
	"event-reminder/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the slice of the SES v2 client the email channel uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailChannel delivers reminders over AWS SES, rendered by the event's
// category profile.
type EmailChannel struct {
	client SESAPI
	from   string
	to     string
}

func NewEmailChannel(client SESAPI, cfg config.NotifyConfig) *EmailChannel {
	return &EmailChannel{client: client, from: cfg.EmailFrom, to: cfg.EmailTo}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Send(ctx context.Context, ev *event.Event, label string) error {
	profile := event.ProfileFor(ev.Category())

	_, err := c.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.from),
		Destination: &types.Destination{
			ToAddresses: []string{c.to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(profile.Subject(ev, label))},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(profile.Body(ev, label))},
				},
			},
		},
	})
	return errs.Wrap(err, "ses send failed")
}
