package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	config "github.com/maheshrc27/nexus/configs"
)

// ObjectStorage stores uploaded files and returns their public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewObjectStorage returns an R2 bucket when R2 credentials are configured,
// otherwise a directory on local disk served under /uploads.
func NewObjectStorage(ctx context.Context, cfg config.Config) (ObjectStorage, error) {
	if cfg.R2.Enabled() {
		return NewR2Storage(ctx, cfg.R2)
	}
	return NewLocalStorage(cfg.UploadDir, cfg.PublicURL+"/uploads")
}

type r2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2Storage(ctx context.Context, r2 config.R2) (ObjectStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2.AccessKey, r2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID))
	})

	publicURL := r2.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.r2.cloudflarestorage.com/%s", r2.AccountID, r2.BucketName)
	}
	return &r2Storage{client: client, bucket: r2.BucketName, publicURL: publicURL}, nil
}

func (r *r2Storage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if _, err := r.client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", &ExternalServiceError{Service: "r2", Err: err}
	}
	return r.publicURL + "/" + key, nil
}

func (r *r2Storage) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Info(err.Error())
		return &ExternalServiceError{Service: "r2", Err: err}
	}
	return nil
}

type localStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (ObjectStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStorage{dir: dir, baseURL: baseURL}, nil
}

func (l *localStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := os.WriteFile(filepath.Join(l.dir, filepath.Base(key)), data, 0o644); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return l.baseURL + "/" + key, nil
}

func (l *localStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(l.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
