package dashboard

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/turtacn/patents-gdp-dashboard/internal/config"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

var (
	ErrAssetNotFound = errors.New(errors.ErrCodeAssetNotFound, "asset not found")
	ErrAssetRead     = errors.New(errors.ErrCodeStorageFailure, "asset could not be read")
)

// Asset is one static file: a flag image or the page background.
type Asset struct {
	Name        string
	Data        []byte
	ContentType string
	ModTime     time.Time
}

// AssetSource serves static assets by their slash-separated name.
type AssetSource interface {
	// Kind is "file" or "minio"; used as a metrics label.
	Kind() string
	Fetch(ctx context.Context, name string) (*Asset, error)
}

// cleanName rejects names that escape the asset root or have a segment
// starting with a dot.
func cleanName(name string) (string, bool) {
	if name == "" || strings.Contains(name, "\\") {
		return "", false
	}
	clean := path.Clean("/" + name)[1:]
	if clean == "" || clean != strings.TrimPrefix(name, "/") {
		return "", false
	}
	for _, seg := range strings.Split(clean, "/") {
		if strings.HasPrefix(seg, ".") {
			return "", false
		}
	}
	return clean, true
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

// DirAssets serves assets from a local directory.
type DirAssets struct {
	Dir string
}

func (DirAssets) Kind() string { return config.SourceFile }

func (a DirAssets) Fetch(ctx context.Context, name string) (*Asset, error) {
	clean, ok := cleanName(name)
	if !ok {
		return nil, ErrAssetNotFound.WithDetail(name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full := filepath.Join(a.Dir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, ErrAssetNotFound.WithDetail(clean)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, ErrAssetRead.WithDetail(clean).WithCause(err)
	}
	return &Asset{Name: clean, Data: data, ContentType: contentType(clean, data), ModTime: info.ModTime()}, nil
}

// ObjectAssets serves assets from object storage under Prefix.
type ObjectAssets struct {
	Store  ObjectStore
	Prefix string
}

func (ObjectAssets) Kind() string { return config.SourceMinIO }

func (a ObjectAssets) Fetch(ctx context.Context, name string) (*Asset, error) {
	clean, ok := cleanName(name)
	if !ok {
		return nil, ErrAssetNotFound.WithDetail(name)
	}
	data, info, err := a.Store.Get(ctx, a.Prefix+clean)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrAssetNotFound.WithDetail(clean)
		}
		return nil, ErrAssetRead.WithDetail(clean).WithCause(err)
	}
	ct := info.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = contentType(clean, data)
	}
	return &Asset{Name: clean, Data: data, ContentType: ct, ModTime: info.LastModified}, nil
}

// NewAssetSource picks the asset source named by cfg.
func NewAssetSource(cfg config.AssetsConfig, store ObjectStore) (AssetSource, error) {
	switch cfg.Source {
	case config.SourceFile:
		return DirAssets{Dir: cfg.Dir}, nil
	case config.SourceMinIO:
		if store == nil {
			return nil, ErrUnsupportedSource.WithDetail("minio asset source without a storage client")
		}
		return ObjectAssets{Store: store, Prefix: cfg.Prefix}, nil
	}
	return nil, ErrUnsupportedSource.WithDetailf("asset source %q", cfg.Source)
}

//Personal.AI order the ending
