// Package storage is a thin client for the hosted platform's S3-compatible
// object store. All site assets live in a single bucket and are served from
// its public URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"velour_backend/pkg/config"
)

const (
	EventImagePrefix = "images/events"
	NewsImagePrefix  = "images/news"
)

var (
	client *s3.Client
	cfg    config.StorageConfig
)

func Init(storageCfg config.StorageConfig) error {
	cfg = storageCfg

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return nil
}

// NewObjectKey builds a non-colliding key under prefix, keeping the original
// file extension: <prefix>/<unix-ms>-<random>.<ext>
func NewObjectKey(prefix, ext string) string {
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixMilli(), uuid.New().String(), ext)
}

// Upload writes data to objectKey. Existing objects are never overwritten.
func Upload(objectKey string, data []byte, contentType string) error {
	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:       aws.String(cfg.Bucket),
		Key:          aws.String(objectKey),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
		IfNoneMatch:  aws.String("*"),
	})
	if err != nil {
		return fmt.Errorf("could not upload %s: %v", objectKey, err)
	}

	return nil
}

func Delete(objectKey string) error {
	_, err := client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(cfg.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("could not delete %s: %v", objectKey, err)
	}

	return nil
}

// PublicURL returns the browser-facing URL for an object key.
func PublicURL(objectKey string) string {
	base := cfg.PublicURL
	if base == "" {
		// The platform serves public objects next to its S3 endpoint.
		base = strings.TrimSuffix(cfg.Endpoint, "/s3") + "/object/public/" + cfg.Bucket
	}
	return strings.TrimSuffix(base, "/") + "/" + objectKey
}
