package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

type sesAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer delivers mail through Amazon SES.
type SESMailer struct {
	client sesAPI
	from   string
}

func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Email) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")},
			},
		},
		Source: aws.String(m.from),
	}
	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// LogMailer writes mail to the log instead of sending it. Used in development.
type LogMailer struct {
	Log *zap.Logger
}

func (m LogMailer) Send(_ context.Context, msg Email) error {
	m.Log.Info("email (not sent)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}

var emailTemplate = template.Must(template.New("email").Parse(
	`<h1>{{.Heading}}</h1>
<p>{{.Body}}</p>
<a href="{{.Link}}">{{.Action}}</a>`))

type emailContent struct {
	Heading, Body, Link, Action string
}

func renderEmail(to, subject string, c emailContent) (Email, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, c); err != nil {
		return Email{}, err
	}
	return Email{
		To:      to,
		Subject: subject,
		HTML:    buf.String(),
		Text:    fmt.Sprintf("%s\n\n%s\n%s", c.Body, c.Action, c.Link),
	}, nil
}

// SetupPasswordEmail carries the account setup link sent after the quiz.
func SetupPasswordEmail(to, link string) (Email, error) {
	return renderEmail(to, "Set up your Trimspire Account", emailContent{
		Heading: "Welcome to Trimspire!",
		Body:    "Click the link below to set your password. This link is valid for 1 hour.",
		Link:    link,
		Action:  "Click here to create password",
	})
}

// MagicLinkEmail carries a passwordless login link.
func MagicLinkEmail(to, link string) (Email, error) {
	return renderEmail(to, "Your Trimspire login link", emailContent{
		Heading: "Log in to Trimspire",
		Body:    "Click the link below to log in. This link is valid for 15 minutes.",
		Link:    link,
		Action:  "Log in",
	})
}
