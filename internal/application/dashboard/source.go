// Package dashboard wires the dataset, the figure builder, the figure cache
// and the page template into the single-page dashboard served over HTTP.
package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/turtacn/patents-gdp-dashboard/internal/config"
	storage "github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/storage/minio"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

var (
	ErrDatasetRead       = errors.New(errors.ErrCodeDatasetRead, "dataset could not be read")
	ErrUnsupportedSource = errors.New(errors.ErrCodeDatasetSourceKind, "unsupported source")
)

// ObjectStore is the subset of the object storage client used for the
// dataset and the assets.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, storage.ObjectInfo, error)
}

// DatasetSource yields the raw CSV bytes of the dataset.
type DatasetSource interface {
	// Describe names the source in logs, e.g. "file:dataset.csv".
	Describe() string
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the dataset from local disk.
type FileSource struct {
	Path string
}

func (s FileSource) Describe() string { return "file:" + s.Path }

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, ErrDatasetRead.WithDetail(s.Path).WithCause(err)
	}
	return data, nil
}

// ObjectSource reads the dataset from object storage.
type ObjectSource struct {
	Store ObjectStore
	Key   string
}

func (s ObjectSource) Describe() string { return "minio:" + s.Key }

func (s ObjectSource) Fetch(ctx context.Context) ([]byte, error) {
	data, _, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatasetRead, "dataset could not be fetched")
	}
	return data, nil
}

// NewDatasetSource picks the source named by cfg.  store may be nil unless
// cfg.Source is "minio".
func NewDatasetSource(cfg config.DatasetConfig, store ObjectStore) (DatasetSource, error) {
	switch cfg.Source {
	case config.SourceFile:
		return FileSource{Path: cfg.Path}, nil
	case config.SourceMinIO:
		if store == nil {
			return nil, ErrUnsupportedSource.WithDetail("minio dataset source without a storage client")
		}
		return ObjectSource{Store: store, Key: cfg.Object}, nil
	}
	return nil, ErrUnsupportedSource.WithDetailf("dataset source %q", cfg.Source)
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

//Personal.AI order the ending
