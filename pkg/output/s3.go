package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// ErrMissingBucket is returned when no target bucket is configured
var ErrMissingBucket = errors.New("S3 bucket not configured")

// S3Config holds the connection settings for an S3-compatible store
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty for AWS itself
	Region    string
	Bucket    string
	Prefix    string // Prepended to every object key
}

// LoadS3Config reads S3_ACCESS_KEY, S3_SECRET_KEY, S3_ENDPOINT, S3_REGION,
// S3_BUCKET and S3_PREFIX from the environment. If envFile is set it is
// loaded first; variables already present in the environment win.
func LoadS3Config(envFile string) (S3Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return S3Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    os.Getenv("S3_PREFIX"),
	}
	if cfg.Bucket == "" {
		return S3Config{}, ErrMissingBucket
	}
	return cfg, nil
}

// getEnv returns the value of key, or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// S3Uploader puts rendered images into a bucket
type S3Uploader struct {
	config S3Config
	client *s3.S3
}

// NewS3Uploader creates a session for the configured endpoint
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3Uploader{
		config: cfg,
		client: s3.New(sess),
	}, nil
}

// Key returns the full object key for name
func (u *S3Uploader) Key(name string) string {
	return u.config.Prefix + name
}

// UploadPNG stores PNG data under name and returns the object key
func (u *S3Uploader) UploadPNG(ctx context.Context, data []byte, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return key, nil
}
