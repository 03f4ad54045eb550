package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	region = "auto"
)

// S3 stores public images in the configured bucket. Objects live under a directory named
// after the owning entity and get a random name that keeps the original extension.
type S3 interface {
	UploadImage(ctx context.Context, directory string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error)
	DeleteObject(ctx context.Context, directory, objectName string) error
	ObjectNameFromURL(directory, url string) (objectName string)
}

type s3Impl struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	provider := credentials.NewStaticCredentialsProvider(
		cfg.External.S3.AccessKeyID,
		cfg.External.S3.SecretAccessKey,
		constant.Empty,
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithCredentialsProvider(provider))
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.External.S3.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(cfg.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = region
	})

	return &s3Impl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func ObjectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	return uuid.NewString() + ext
}

func (svc *s3Impl) UploadImage(ctx context.Context, directory string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	buf := bytes.NewBuffer(nil)
	if _, err = buf.ReadFrom(file); err != nil {
		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	if contentType == constant.Empty {
		contentType = http.DetectContentType(buf.Bytes())
	}

	bucket := svc.cfg.External.S3.BucketName
	objectKey := path.Join(directory, ObjectName(fileHeader.Filename))

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	body := bytes.NewReader(buf.Bytes())

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(body.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return PublicURL(svc.cfg.External.S3.PublicDomain, objectKey), nil
}

func (svc *s3Impl) DeleteObject(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := svc.cfg.External.S3.BucketName
	objectKey := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ObjectNameFromURL returns the object name of a URL produced by UploadImage for the same
// directory, or an empty string for any other URL.
func (svc *s3Impl) ObjectNameFromURL(directory, url string) string {
	return objectNameFromURL(svc.cfg.External.S3.PublicDomain, directory, url)
}

func PublicURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + objectKey
}

func objectNameFromURL(publicDomain, directory, url string) string {
	prefix := PublicURL(publicDomain, directory) + "/"

	name, found := strings.CutPrefix(url, prefix)
	if !found || strings.Contains(name, "/") {
		return constant.Empty
	}

	return name
}
