package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Options configures an S3-compatible upload target
type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
}

// Uploader publishes rendered images to an S3 bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3Uploader creates an uploader backed by a new AWS session. Static
// credentials are used when both keys are set, otherwise the default
// credential chain applies.
func NewS3Uploader(opts S3Options) (*Uploader, error) {
	cfg := &aws.Config{
		Region:           aws.String(opts.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = aws.String(opts.Endpoint)
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(opts.AccessKey, opts.SecretKey, "")
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("output: create S3 session: %w", err)
	}

	return NewUploader(s3.New(sess), opts.Bucket, opts.Prefix), nil
}

// NewUploader creates an uploader using an existing S3 client
func NewUploader(client s3iface.S3API, bucket, prefix string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Key returns the object key used for a local file
func (u *Uploader) Key(localPath string) string {
	name := filepath.Base(localPath)
	if u.prefix == "" {
		return name
	}
	return path.Join(u.prefix, name)
}

// Upload stores data under key and returns the key
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("output: upload s3://%s/%s: %w", u.bucket, key, err)
	}
	return key, nil
}

// UploadFile reads localPath and uploads it under Key(localPath)
func (u *Uploader) UploadFile(ctx context.Context, localPath string, format Format) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("output: read %s: %w", localPath, err)
	}
	return u.Upload(ctx, u.Key(localPath), data, format.ContentType())
}
