// Package loader implements the retrieval policy: live fetch, falling back
// to the newest cached payload, then to the bundled sample file. Whatever
// the source, the payload is normalized the same way.
package loader

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/cwa-terminal/internal/cwa"
	"github.com/ngmaloney/cwa-terminal/internal/forecast"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// Fetcher retrieves a raw payload from the upstream API
type Fetcher interface {
	FetchForecast(ctx context.Context, dataset cwa.Dataset) ([]byte, error)
}

// PayloadStore persists payloads and serves the most recent one back
type PayloadStore interface {
	SavePayload(dataset string, payload []byte, fetchedAt time.Time) error
	LatestPayload(dataset string) ([]byte, error)
}

// Result is a retrieved payload tagged with its source
type Result struct {
	Payload []byte
	Source  models.Source
	Notice  string // fetch failure message when served from a fallback
}

// Loader orchestrates retrieval and normalization, memoizing results for a
// freshness window so repeated renders don't refetch.
type Loader struct {
	fetcher   Fetcher
	store     PayloadStore
	sampleDir string
	apiKey    string
	memo      *memoCache
	clock     clockwork.Clock
}

// New creates a Loader. sampleDir holds bundled sample payloads named
// <dataset id>.json; apiKey only partitions the memo cache.
func New(fetcher Fetcher, store PayloadStore, sampleDir, apiKey string, clock clockwork.Clock) *Loader {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Loader{
		fetcher:   fetcher,
		store:     store,
		sampleDir: sampleDir,
		apiKey:    apiKey,
		memo:      newMemoCache(clock, freshnessWindow),
		clock:     clock,
	}
}

// Retrieve fetches a dataset's payload, applying the fallback chain on
// failure. Only when live data, cache, and sample are all unavailable does
// the original fetch error propagate.
func (l *Loader) Retrieve(ctx context.Context, dataset cwa.Dataset) (Result, error) {
	payload, fetchErr := l.fetcher.FetchForecast(ctx, dataset)
	if fetchErr == nil {
		// Persistence is best effort: a cache-write problem must not
		// discard live data the user is waiting on.
		_ = l.store.SavePayload(dataset.ID, payload, l.clock.Now())
		return Result{Payload: payload, Source: models.SourceLive}, nil
	}

	// A missing entry and a broken cache store fall back the same way.
	cached, cacheErr := l.store.LatestPayload(dataset.ID)
	if cacheErr == nil {
		return Result{Payload: cached, Source: models.SourceCache, Notice: fetchErr.Error()}, nil
	}

	if dataset.HasSample {
		sample, sampleErr := os.ReadFile(filepath.Join(l.sampleDir, dataset.ID+".json"))
		if sampleErr == nil {
			return Result{Payload: sample, Source: models.SourceSample, Notice: fetchErr.Error()}, nil
		}
	}

	return Result{}, fetchErr
}

// LoadForecast runs the full pipeline (retrieve, normalize, derive
// metadata) with a 15-minute memo keyed by credential and dataset.
func (l *Loader) LoadForecast(ctx context.Context, dataset cwa.Dataset) (*models.Forecast, error) {
	key := l.apiKey + "|" + dataset.ID
	if cached, ok := l.memo.get(key); ok {
		return cached, nil
	}

	result, err := l.Retrieve(ctx, dataset)
	if err != nil {
		return nil, err
	}

	locations := forecast.Normalize(result.Payload)
	f := &models.Forecast{
		Locations:   locations,
		IssueTime:   models.InferIssueTime(locations),
		DatasetType: models.DetermineDatasetType(locations),
		Source:      result.Source,
		Notice:      result.Notice,
	}
	l.memo.put(key, f)
	return f, nil
}

// Invalidate clears the memo window so the next load refetches
func (l *Loader) Invalidate() {
	l.memo.clear()
}
