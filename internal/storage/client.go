package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/expenseworks/receipts-pipeline/internal/common"
)

// Client is the S3-backed Store implementation.
type Client struct {
	s3      *s3.Client
	presign *s3.PresignClient
	bucket  string
	logger  *slog.Logger
}

func NewClient(s3c *s3.Client, bucket string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		s3:      s3c,
		presign: s3.NewPresignClient(s3c),
		bucket:  bucket,
		logger:  logger,
	}
}

func (c *Client) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		c.logger.Error("storage.put failed", "key", key, "error", err)
		return common.WrapError(err, "put object")
	}
	c.logger.Debug("storage.put ok", "key", key, "bytes", len(data), "content_type", contentType)
	return nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, common.NewAppError("STORAGE_NOT_FOUND", "object missing: "+key, common.ErrNotFound)
		}
		c.logger.Error("storage.get failed", "key", key, "error", err)
		return nil, common.WrapError(err, "get object")
	}
	defer func() {
		if cerr := out.Body.Close(); cerr != nil {
			c.logger.Warn("storage.get body close error", "key", key, "error", cerr)
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, common.WrapError(err, "read object body")
	}
	return data, nil
}

// Delete removes the object; S3 deletes are idempotent, so an absent key
// succeeds.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		c.logger.Error("storage.delete failed", "key", key, "error", err)
		return common.WrapError(err, "delete object")
	}
	c.logger.Debug("storage.delete ok", "key", key)
	return nil
}

func (c *Client) SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", common.WrapError(err, "presign get object")
	}
	return req.URL, nil
}

func (c *Client) ListKeys(ctx context.Context, prefix string) ([]StoredObject, error) {
	var objects []StoredObject
	paginator := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, common.WrapError(err, "list objects")
		}
		for _, obj := range page.Contents {
			o := StoredObject{Key: aws.ToString(obj.Key)}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			objects = append(objects, o)
		}
	}
	return objects, nil
}
