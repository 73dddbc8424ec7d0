// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media stores uploaded images in an S3-compatible object store
(Cloudflare R2 in production) and hands back their public URL.

Objects are written once under "<folder>/<uuidv7>-<name>" and never rewritten,
so a URL stays valid for as long as the object exists.
*/
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/taibuivan/folio/pkg/slug"
	"github.com/taibuivan/folio/pkg/uuid"
)

// Object identifies a stored upload.
type Object struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
}

// Uploader stores a blob under key and returns where it can be fetched.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (Object, error)
}

// S3Options configures [NewS3Uploader].
type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// S3Uploader writes objects with PutObject.
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Uploader builds a client for an S3-compatible endpoint using static
// credentials and path-style addressing.
func NewS3Uploader(ctx context.Context, options S3Options) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(options.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKeyID, options.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("media: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(options.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Uploader{
		client:        client,
		bucket:        options.Bucket,
		publicBaseURL: strings.TrimRight(options.PublicBaseURL, "/"),
	}, nil
}

// Upload implements [Uploader].
func (uploader *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (Object, error) {
	_, err := uploader.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(uploader.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return Object{}, fmt.Errorf("media: put %s: %w", key, err)
	}

	return Object{URL: uploader.publicBaseURL + "/" + key, FileID: key}, nil
}

// ObjectKey names a new upload: folder, a time-ordered id, then the slugged
// original name with its lower-cased extension.
func ObjectKey(folder, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	name := slug.From(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" {
		name = "file"
	}

	return strings.Trim(folder, "/") + "/" + uuid.New() + "-" + name + ext
}
