package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
)

// ObjectInfo describes a fetched object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

func toObjectInfo(key string, in minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Size:         in.Size,
		ContentType:  in.ContentType,
		ETag:         in.ETag,
		LastModified: in.LastModified,
	}
}

// Open returns a reader over the object.  The caller closes it.
func (c *Client) Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	rc, info, err := c.api.GetObject(ctx, c.bucket, key)
	if err != nil {
		return nil, ObjectInfo{}, c.translate(key, err)
	}
	return rc, toObjectInfo(key, info), nil
}

// Get reads the whole object into memory.
func (c *Client) Get(ctx context.Context, key string) ([]byte, ObjectInfo, error) {
	rc, info, err := c.Open(ctx, key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, ObjectInfo{}, ErrStorageFailure.WithDetail(key).WithCause(err)
	}
	c.logger.Debug("object fetched", logging.String("bucket", c.bucket),
		logging.String("key", key), logging.Int("bytes", len(data)))
	return data, info, nil
}

func (c *Client) translate(key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey":
		return ErrObjectNotFound.WithDetail(key)
	case "NoSuchBucket":
		return ErrBucketNotFound.WithDetail(c.bucket)
	}
	return ErrStorageFailure.WithDetail(key).WithCause(err)
}

//Personal.AI order the ending
