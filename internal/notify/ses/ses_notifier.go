package ses

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"imgupload/internal/port"
)

// EmailAPI is the subset of the SES v2 client the notifier uses.
type EmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesNotifier struct {
	client      EmailAPI
	fromAddress string
	toAddress   string
	now         func() time.Time
}

// NewSESNotifier creates a Notifier that emails failure messages through SES.
func NewSESNotifier(ctx context.Context, region, fromAddress, toAddress string) (port.Notifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return NewSESNotifierWithClient(sesv2.NewFromConfig(cfg), fromAddress, toAddress), nil
}

// NewSESNotifierWithClient creates a Notifier using an existing SES client.
func NewSESNotifierWithClient(client EmailAPI, fromAddress, toAddress string) port.Notifier {
	return &sesNotifier{
		client:      client,
		fromAddress: fromAddress,
		toAddress:   toAddress,
		now:         time.Now,
	}
}

func (s *sesNotifier) Notify(ctx context.Context, message string) error {
	subject := "Image upload failed"
	textBody := fmt.Sprintf("An image upload failed at %s.\n\nError: %s\n",
		s.now().UTC().Format(time.RFC3339), message)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toAddress},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(textBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
