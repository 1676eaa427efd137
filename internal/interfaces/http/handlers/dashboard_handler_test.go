package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/patents-gdp-dashboard/internal/application/dashboard"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

type stubPage struct {
	ready bool
	html  string
	err   error
}

func (p *stubPage) Ready() bool { return p.ready }

func (p *stubPage) Page(w io.Writer) error {
	if p.err != nil {
		return p.err
	}
	_, err := io.WriteString(w, p.html)
	return err
}

type stubAssets struct {
	assets map[string]*dashboard.Asset
	err    error
}

func (s *stubAssets) Kind() string { return "file" }

func (s *stubAssets) Fetch(_ context.Context, name string) (*dashboard.Asset, error) {
	if s.err != nil {
		return nil, s.err
	}
	if a, ok := s.assets[name]; ok {
		return a, nil
	}
	return nil, dashboard.ErrAssetNotFound.WithDetail(name)
}

var modTime = time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)

func newTestHandler(page *stubPage, assets *stubAssets) (*DashboardHandler, http.Handler) {
	h := NewDashboardHandler(page, assets, nil, nil, time.Hour)
	r := chi.NewRouter()
	r.Get("/", h.Page)
	r.Get("/assets/*", h.Asset)
	r.NotFound(h.NotFound)
	return h, r
}

func TestDashboardHandler_Page(t *testing.T) {
	_, r := newTestHandler(&stubPage{ready: true, html: "<html>ok</html>"}, &stubAssets{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "<html>ok</html>", w.Body.String())
}

func TestDashboardHandler_PageNotReady(t *testing.T) {
	_, r := newTestHandler(&stubPage{}, &stubAssets{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ErrCodeServiceUnavailable), resp.Code)
	assert.Equal(t, "service unavailable", resp.Message)
}

func TestDashboardHandler_PageError(t *testing.T) {
	_, r := newTestHandler(&stubPage{ready: true, err: errors.New(errors.ErrCodeInternal, "boom")}, &stubAssets{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestDashboardHandler_Asset(t *testing.T) {
	assets := &stubAssets{assets: map[string]*dashboard.Asset{
		"US.png": {Name: "US.png", Data: []byte("png-bytes"), ContentType: "image/png", ModTime: modTime},
	}}
	_, r := newTestHandler(&stubPage{ready: true}, assets)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/US.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	assert.Equal(t, "png-bytes", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/assets/US.png", nil)
	req.Header.Set("If-Modified-Since", modTime.Add(time.Hour).Format(http.TimeFormat))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotModified, w.Code)
}

func TestDashboardHandler_AssetErrors(t *testing.T) {
	_, r := newTestHandler(&stubPage{ready: true}, &stubAssets{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/FR.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, r = newTestHandler(&stubPage{ready: true}, &stubAssets{err: dashboard.ErrAssetRead.WithDetail("US.png")})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/US.png", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDashboardHandler_NotFound(t *testing.T) {
	_, r := newTestHandler(&stubPage{ready: true}, &stubAssets{})

	for _, p := range []string{"/index.html", "/api/figure", "/assets"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, p)
	}
}

//Personal.AI order the ending
