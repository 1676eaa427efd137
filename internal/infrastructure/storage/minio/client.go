// Package minio reads the dataset and the static assets from S3-compatible
// object storage when they are not shipped on local disk.
package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

var (
	ErrObjectNotFound  = errors.New(errors.ErrCodeAssetNotFound, "object not found")
	ErrBucketNotFound  = errors.New(errors.ErrCodeStorageFailure, "bucket not found")
	ErrStorageFailure  = errors.New(errors.ErrCodeStorageFailure, "object storage request failed")
	ErrInvalidEndpoint = errors.New(errors.ErrCodeConfigInvalid, "invalid object storage endpoint")
)

// ObjectAPI is the subset of object storage operations the dashboard uses.
// GetObject must surface a missing key as an error before returning, rather
// than on the first Read.
type ObjectAPI interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, minio.ObjectInfo, error)
}

// sdkAPI adapts *minio.Client to ObjectAPI.
type sdkAPI struct {
	c *minio.Client
}

func (a sdkAPI) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return a.c.BucketExists(ctx, bucket)
}

func (a sdkAPI) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, minio.ObjectInfo, error) {
	obj, err := a.c.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}
	// GetObject is lazy; Stat forces the request so NoSuchKey shows up here.
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, minio.ObjectInfo{}, err
	}
	return obj, info, nil
}

// Options configures the connection.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Client reads objects from one bucket.
type Client struct {
	api    ObjectAPI
	bucket string
	logger logging.Logger
}

// NewClient connects to the endpoint and verifies the bucket exists.
func NewClient(ctx context.Context, opts Options, log logging.Logger) (*Client, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}

	mc, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, ErrInvalidEndpoint.WithDetail(opts.Endpoint).WithCause(err)
	}

	c := NewClientWithAPI(sdkAPI{c: mc}, opts.Bucket, log)

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := c.HealthCheck(checkCtx); err != nil {
		return nil, err
	}

	log.Info("MinIO client connected",
		logging.String("endpoint", opts.Endpoint),
		logging.String("bucket", opts.Bucket),
		logging.Bool("ssl", opts.UseSSL))
	return c, nil
}

// NewClientWithAPI builds a Client over an existing ObjectAPI.
func NewClientWithAPI(api ObjectAPI, bucket string, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{api: api, bucket: bucket, logger: log}
}

// Bucket returns the bucket name.
func (c *Client) Bucket() string { return c.bucket }

// HealthCheck verifies the bucket is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	ok, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return ErrStorageFailure.WithDetail(c.bucket).WithCause(err)
	}
	if !ok {
		return ErrBucketNotFound.WithDetail(c.bucket)
	}
	return nil
}

//Personal.AI order the ending
