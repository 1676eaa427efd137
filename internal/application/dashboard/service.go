package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/figure"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

var ErrNotReady = errors.New(errors.ErrCodeServiceUnavailable, "dashboard is not ready")

// Deps holds the collaborators of a Service.  Source is required; nil
// Cache, Metrics and Logger fall back to no-op implementations.
type Deps struct {
	Source   DatasetSource
	Cache    FigureCache
	CacheTTL time.Duration
	Options  figure.Options
	Page     PageConfig
	Metrics  *prometheus.DashboardMetrics
	Logger   logging.Logger
}

// Service loads the dataset once, builds the figure and serves the page.
type Service struct {
	deps Deps

	mu      sync.RWMutex
	digest  string
	figJSON []byte
	page    []byte
}

// NewService validates deps and returns an uninitialised service.
func NewService(deps Deps) (*Service, error) {
	if deps.Source == nil {
		return nil, errors.New(errors.ErrCodeValidation, "dashboard: dataset source is required")
	}
	if err := deps.Options.Validate(); err != nil {
		return nil, err
	}
	if deps.Cache == nil {
		deps.Cache = NoCache{}
	}
	if deps.Metrics == nil {
		deps.Metrics = prometheus.NewNopDashboardMetrics()
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNopLogger()
	}
	return &Service{deps: deps}, nil
}

// Init reads and validates the dataset, then obtains the figure from the
// cache or builds it.  Any dataset error aborts; nothing is served from a
// partially loaded dataset.
func (s *Service) Init(ctx context.Context) error {
	log := s.deps.Logger
	start := time.Now()

	raw, err := s.deps.Source.Fetch(ctx)
	if err != nil {
		s.deps.Metrics.RecordFigureBuild("error", 0)
		return err
	}
	digest := Digest(raw)

	ds, err := dataset.Load(bytes.NewReader(raw))
	if err != nil {
		s.deps.Metrics.RecordFigureBuild("error", 0)
		log.Error("dataset rejected", logging.String("source", s.deps.Source.Describe()), logging.Err(err))
		return err
	}
	log.Info("dataset loaded",
		logging.String("source", s.deps.Source.Describe()),
		logging.String("digest", digest[:12]),
		logging.Int("rows", ds.Len()),
		logging.Int("years", len(ds.Years())),
		logging.Int("countries", len(ds.Countries())))
	sum := ds.Summarize(s.deps.Options.XRange[1])
	log.Debug("dataset extents",
		logging.Float64("min_gdp", sum.MinGDP),
		logging.Float64("max_gdp", sum.MaxGDP),
		logging.Float64("min_pat_100k", sum.MinRatio),
		logging.Float64("max_pat_100k", sum.MaxRatio),
		logging.Float64("max_patents", sum.MaxPatents))
	if sum.OutOfRangeGDP > 0 {
		log.Warn("rows lie beyond the GDP axis and will be clipped",
			logging.Int("rows", sum.OutOfRangeGDP),
			logging.Float64("max_gdp", sum.MaxGDP),
			logging.Float64("axis_max", s.deps.Options.XRange[1]))
	}
	if !ds.HasYear(s.deps.Options.InitialYear) {
		log.Warn("initial year has no rows; the first view will be empty",
			logging.String("year", s.deps.Options.InitialYear))
	}

	key := digest[:16] + ":" + s.deps.Options.Fingerprint()
	figJSON, hit, err := s.deps.Cache.GetOrBuild(ctx, key, s.deps.CacheTTL, func(context.Context) ([]byte, error) {
		fig, err := figure.Build(ds, s.deps.Options)
		if err != nil {
			return nil, err
		}
		return json.Marshal(fig)
	})
	if err != nil {
		s.deps.Metrics.RecordFigureBuild("error", 0)
		log.Error("figure build failed", logging.Err(err))
		return err
	}
	s.deps.Metrics.RecordCacheLookup(s.deps.Cache.Name(), hit)

	page, err := renderPage(s.deps.Page, figJSON)
	if err != nil {
		s.deps.Metrics.RecordFigureBuild("error", 0)
		return errors.Wrap(err, errors.CodeInternal, "page could not be rendered")
	}

	elapsed := time.Since(start)
	outcome := "built"
	if hit {
		outcome = "cached"
	}
	s.deps.Metrics.RecordFigureBuild(outcome, elapsed)
	s.deps.Metrics.RecordFigure(ds.Len(), len(ds.Years()), len(figJSON))
	s.deps.Metrics.SetReady(true)

	s.mu.Lock()
	s.digest, s.figJSON, s.page = digest, figJSON, page
	s.mu.Unlock()

	log.Info("figure ready",
		logging.String("cache", s.deps.Cache.Name()),
		logging.Bool("cache_hit", hit),
		logging.Int("frames", len(ds.Years())),
		logging.Int("bytes", len(figJSON)),
		logging.Duration("elapsed", elapsed))
	return nil
}

// Ready reports whether Init has completed.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page != nil
}

// Page writes the rendered HTML page to w.
func (s *Service) Page(w io.Writer) error {
	s.mu.RLock()
	page := s.page
	s.mu.RUnlock()
	if page == nil {
		return ErrNotReady
	}
	_, err := w.Write(page)
	return err
}

// FigureJSON returns the serialised figure.
func (s *Service) FigureJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.figJSON == nil {
		return nil, ErrNotReady
	}
	return append([]byte(nil), s.figJSON...), nil
}

// Digest returns the hex SHA-256 of the loaded dataset bytes, or "" before
// Init.
func (s *Service) Digest() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.digest
}

//Personal.AI order the ending
