package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"campaign-insights/internal/config/configs"
	"campaign-insights/internal/core/port"
)

// putObjectAPI is the part of the S3 client the archive uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores raw uploaded reports in a bucket under
// <prefix>/<batch id>/<name>. The use case numbers names within a batch.
type S3 struct {
	client putObjectAPI
	bucket string
	prefix string
}

var _ port.ReportArchive = (*S3)(nil)

// NewS3 builds an S3 archive from cfg. Static credentials are used when
// both keys are set; otherwise the default AWS credential chain applies.
// Endpoint and path-style addressing support S3-compatible stores.
func NewS3(ctx context.Context, cfg configs.Archive) (*S3, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return newS3(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3(client putObjectAPI, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key for one archived file.
func (a *S3) Key(batchID, name string) string {
	return path.Join(a.prefix, batchID, path.Base(name))
}

// Archive uploads body as a CSV object.
func (a *S3) Archive(ctx context.Context, batchID, name string, body []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(a.Key(batchID, name)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
		Metadata:    map[string]string{"batch-id": batchID},
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", a.bucket, a.Key(batchID, name), err)
	}
	return nil
}

// Nop discards archived reports.
type Nop struct{}

var _ port.ReportArchive = Nop{}

func (Nop) Archive(context.Context, string, string, []byte) error { return nil }
