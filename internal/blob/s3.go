package blob

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PutObjectAPI - часть клиента S3, нужная хранилищу.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store кладёт объекты в бакет с ACL public-read.
type S3Store struct {
	client  PutObjectAPI
	bucket  string
	baseURL string
}

// S3Options - параметры S3-хранилища.
type S3Options struct {
	Bucket string
	Region string
	// PublicBaseURL переопределяет адрес, по которому объекты доступны снаружи (CDN и т.п.).
	PublicBaseURL string
}

// NewS3Store загружает AWS-конфигурацию и создаёт хранилище.
// Если задан AWS_ENDPOINT_URL (например, localstack), используется path-style адресация.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket is required")
	}
	cfg, err := awsCfg.LoadDefaultConfig(ctx, awsCfg.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}
	endpoint := os.Getenv("AWS_ENDPOINT_URL")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3StoreWithClient(client, opts, endpoint), nil
}

// NewS3StoreWithClient создаёт хранилище поверх готового клиента.
func NewS3StoreWithClient(client PutObjectAPI, opts S3Options, endpoint string) *S3Store {
	base := opts.PublicBaseURL
	switch {
	case base != "":
	case endpoint != "":
		base = joinURL(endpoint, opts.Bucket)
	default:
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
	return &S3Store{client: client, bucket: opts.Bucket, baseURL: base}
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3: put %s: %w", key, err)
	}
	return joinURL(s.baseURL, key), nil
}
