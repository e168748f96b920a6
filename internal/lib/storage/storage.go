// Package storage issues presigned upload URLs for the S3 bucket that holds
// user and catalogue images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/deppfellow/travel-api/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultFolder = "uploads"

// File is one object the client wants to upload.
type File struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PresignedUpload is the URL to PUT a file to and the key it will be stored under.
type PresignedUpload struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type presignAPI interface {
	PresignPutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Presigner signs PUT requests against one bucket.
type Presigner struct {
	presign presignAPI
	bucket  string
	expiry  time.Duration
	now     func() time.Time
	token   func() string
	logger  *zerolog.Logger
}

// NewPresigner builds an S3 presign client from config. Static credentials
// are used when set; otherwise the default AWS credential chain applies.
func NewPresigner(ctx context.Context, cfg config.StorageConfig, logger *zerolog.Logger) (*Presigner, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if strings.TrimSpace(cfg.Region) == "" {
		return nil, errors.New("aws region is required")
	}

	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("object storage configured")
	return newPresigner(awss3.NewPresignClient(client), cfg.Bucket, cfg.PresignExpiry, logger), nil
}

func newPresigner(api presignAPI, bucket string, expiry time.Duration, logger *zerolog.Logger) *Presigner {
	if expiry <= 0 {
		expiry = config.DefaultPresignExpiry
	}
	return &Presigner{presign: api, bucket: bucket, expiry: expiry, now: time.Now, token: randomToken, logger: logger}
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Key namespaces name under folder with a millisecond timestamp and a token
// unique to the file, so equal names never share a key.
func Key(folder, name string, at time.Time, token string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = DefaultFolder
	}
	return fmt.Sprintf("%s/%d-%s-%s", folder, at.UnixMilli(), token, path.Base(name))
}

// Presign returns one upload URL per file, in order. Any failure fails the whole batch.
func (p *Presigner) Presign(ctx context.Context, files []File, folder string) ([]PresignedUpload, error) {
	at := p.now()
	out := make([]PresignedUpload, 0, len(files))

	for _, f := range files {
		key := Key(folder, f.Name, at, p.token())
		input := &awss3.PutObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		}
		if f.Type != "" {
			input.ContentType = aws.String(f.Type)
		}

		req, err := p.presign.PresignPutObject(ctx, input, awss3.WithPresignExpires(p.expiry))
		if err != nil {
			return nil, fmt.Errorf("failed to presign %s: %w", key, err)
		}
		out = append(out, PresignedUpload{URL: req.URL, Key: key})
	}

	p.logger.Debug().Int("files", len(files)).Str("folder", folder).Msg("presigned uploads")
	return out, nil
}
