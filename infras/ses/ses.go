package ses

//go:generate go run go.uber.org/mock/mockgen -source=./ses.go -destination=./mocks/ses_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"petstay/config"
	"petstay/infras/otel"
	"petstay/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"
)

const charset = "UTF-8"

var ErrNoRecipients = errors.New("email has no recipients")

type Email struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

type SES interface {
	SendEmail(ctx context.Context, email Email) (messageID string, err error)
}

type sesImpl struct {
	client *sesv2.Client
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) SES {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(config.External.SES.Region),
	}

	if config.External.SES.AccessKeyID != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.External.SES.AccessKeyID,
			config.External.SES.SecretAccessKey,
			"",
		)))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration for SES")
	}

	return &sesImpl{
		client: sesv2.NewFromConfig(cfg),
		otel:   otel,
	}
}

func (s *sesImpl) SendEmail(ctx context.Context, email Email) (messageID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ses.SendEmail")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(email.To) == 0 {
		return constant.Empty, ErrNoRecipients
	}

	body := &types.Body{
		Text: &types.Content{Data: aws.String(email.Text), Charset: aws.String(charset)},
	}

	if email.HTML != "" {
		body.Html = &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charset)}
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(email.From),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body:    body,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Strs("to", email.To).Msg("failed to send email")

		return constant.Empty, fmt.Errorf("failed to send email: %w", err)
	}

	return aws.ToString(out.MessageId), nil
}
