package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"petstay/config"
	"petstay/infras/otel"
	"petstay/shared/constant"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// S3 stores objects by key. An empty bucket falls back to the configured default bucket.
type S3 interface {
	PutObject(ctx context.Context, bucket, key, contentType string, data []byte) error
	DeleteObject(ctx context.Context, bucket, key string) error
	PresignGet(ctx context.Context, bucket, key string, expire time.Duration) (url string, err error)
	PresignPut(ctx context.Context, bucket, key, contentType string, expire time.Duration) (url string, err error)
}

type s3Impl struct {
	client  *s3.Client
	presign *s3.PresignClient
	config  *config.Config
	otel    otel.Otel
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(config.External.S3.Region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.External.S3.APIEndpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Impl{
		client:  client,
		presign: s3.NewPresignClient(client),
		config:  config,
		otel:    otel,
	}
}

func (svc *s3Impl) PutObject(ctx context.Context, bucket, key, contentType string, data []byte) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PutObject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bucket = svc.bucket(bucket)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object to S3")

		return fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) DeleteObject(ctx context.Context, bucket, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteObject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bucket = svc.bucket(bucket)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) PresignGet(ctx context.Context, bucket, key string, expire time.Duration) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PresignGet")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req, err := svc.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket(bucket)),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to presign get object: %w", err)
	}

	return req.URL, nil
}

func (svc *s3Impl) PresignPut(ctx context.Context, bucket, key, contentType string, expire time.Duration) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PresignPut")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req, err := svc.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(svc.bucket(bucket)),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to presign put object: %w", err)
	}

	return req.URL, nil
}

func (svc *s3Impl) bucket(bucket string) string {
	if bucket == "" {
		return svc.config.External.S3.BucketName
	}

	return bucket
}
