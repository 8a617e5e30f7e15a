package storage

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const PathExports = "exports/"

type S3Client interface {
	// UploadFile stores data under key and returns the key.
	UploadFile(ctx context.Context, data []byte, key string) (string, error)
}

type storageClient struct {
	bucket string
	client *s3.Client
}

// NewStorageClient builds a client from the default AWS credential chain.
// A non-empty endpoint switches to path-style addressing against that URL,
// which is what S3-compatible stores expect.
func NewStorageClient(ctx context.Context, region, bucket, endpoint string) (S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewFromS3Client(client, bucket), nil
}

func NewFromS3Client(client *s3.Client, bucket string) S3Client {
	return &storageClient{
		bucket: bucket,
		client: client,
	}
}

func (s *storageClient) UploadFile(ctx context.Context, data []byte, key string) (string, error) {
	if key == "" {
		return "", errors.New("key is empty")
	}

	mimeType := mime.TypeByExtension(filepath.Ext(key))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return "", err
	}
	return key, nil
}
