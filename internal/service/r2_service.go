package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/blacklabelhq/scheduler-api/configs"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// R2Service stores post images in Cloudflare R2 (S3-compatible). Uploads
// happen as a separate step before submit; the composer only attaches the
// returned path.
type R2Service struct {
	config cfg.Config
}

func NewR2Service(cfg cfg.Config) *R2Service {
	return &R2Service{config: cfg}
}

func (r *R2Service) R2Client() *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.R2.AccessKey, r.config.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		log.Fatal(err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.R2.AccountID))
	})
}

// UploadImage validates the file is an image and writes it under a key
// namespaced by workspace with a timestamp and random suffix, so two
// uploads can never overwrite each other. It returns the object path.
func (r *R2Service) UploadImage(ctx context.Context, workspaceID string, file []byte) (string, error) {
	fileType, err := filetype.Match(file)
	if err != nil || fileType == types.Unknown {
		err = fmt.Errorf("unsupported file type")
		slog.Info(err.Error())
		return "", &UploadError{Err: err}
	}
	switch fileType.Extension {
	case "jpg", "jpeg", "png", "gif", "webp":
	default:
		err = fmt.Errorf("file type %s is not allowed", fileType.Extension)
		slog.Info(err.Error())
		return "", &UploadError{Err: err}
	}

	token, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return "", &UploadError{Err: err}
	}
	key := fmt.Sprintf("%s/%d-%s.%s", workspaceID, time.Now().UTC().Unix(), token, fileType.Extension)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(fileType.MIME.Value),
	}

	r2Client := r.R2Client()

	if _, err := r2Client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", &UploadError{Err: err}
	}

	return key, nil
}
