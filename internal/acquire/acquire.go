// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire enriches the painting collection from the museum catalog.
// One acquisition cycle searches the catalog, samples identifiers, fetches
// them one at a time with a fixed delay between requests, classifies and
// describes each complete record, filters duplicates, and appends the
// accepted batch to the collection store in a single step.
package acquire

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/gallery/internal/catalog"
	"github.com/pdiddy/gallery/internal/collection"
	"github.com/pdiddy/gallery/internal/style"
	"github.com/pdiddy/gallery/pkg/types"
)

// DefaultSampleSize is the number of identifiers fetched per cycle.
const DefaultSampleSize = 20

// DefaultRequestDelay is the pause between consecutive object fetches.
const DefaultRequestDelay = 800 * time.Millisecond

// Catalog is the subset of the catalog client used by the pipeline.
type Catalog interface {
	Search(ctx context.Context, criteria catalog.Criteria) ([]int, error)
	FetchByID(ctx context.Context, id int) (*catalog.Object, error)
}

// Pacer blocks until the next request may be issued. *rate.Limiter
// satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}

// ProgressReporter receives the 1-based index of the identifier about to be
// fetched and the cycle total.
type ProgressReporter interface {
	ReportProgress(current, total int)
}

// NewPacer returns a limiter that admits one request per delay. The first
// request passes immediately. A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// Pipeline runs acquisition cycles against a catalog and a store.
type Pipeline struct {
	Catalog  Catalog
	Store    *collection.Store
	Pacer    Pacer
	Progress ProgressReporter
	Logger   *zap.Logger

	// Shuffle permutes n elements; nil uses math/rand/v2.
	Shuffle func(n int, swap func(i, j int))

	// DedupWithinCycle also checks candidates accepted earlier in the same
	// cycle, not only the store.
	DedupWithinCycle bool

	// cycle serializes Acquire calls so the store has a single writer.
	cycle sync.Mutex
}

// New builds a pipeline from configuration.
func New(cat Catalog, store *collection.Store, cfg types.AcquisitionConfig, logger *zap.Logger) *Pipeline {
	delay := cfg.RequestDelay
	if delay == 0 {
		delay = DefaultRequestDelay
	}
	return &Pipeline{
		Catalog:          cat,
		Store:            store,
		Pacer:            NewPacer(delay),
		Logger:           logger,
		DedupWithinCycle: cfg.DedupWithinCycle,
	}
}

// Acquire runs one cycle fetching up to sampleSize objects (DefaultSampleSize
// when non-positive). Search failures are fatal and leave the store
// unchanged. Per-object fetch failures are recorded in the result and the
// cycle continues. Cancellation is checked before each request; a cancelled
// cycle appends nothing and returns ctx.Err().
func (p *Pipeline) Acquire(ctx context.Context, sampleSize int) (Result, error) {
	p.cycle.Lock()
	defer p.cycle.Unlock()

	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	res := Result{CycleID: uuid.NewString()}
	log := p.logger().With(zap.String("cycle", res.CycleID))
	start := time.Now()

	ids, err := p.Catalog.Search(ctx, catalog.DefaultCriteria())
	if err != nil {
		log.Warn("catalog search failed", zap.Error(err))
		return res, fmt.Errorf("searching catalog: %w", err)
	}

	selected := Sample(ids, sampleSize, p.Shuffle)
	res.Sampled = len(selected)
	log.Info("acquisition started", zap.Int("found", len(ids)), zap.Int("sampled", res.Sampled))

	existing := p.Store.Snapshot()
	var accepted []types.Painting

	for i, id := range selected {
		if err := p.wait(ctx); err != nil {
			log.Info("acquisition cancelled", zap.Int("processed", i), zap.Error(err))
			return res, err
		}
		if p.Progress != nil {
			p.Progress.ReportProgress(i+1, len(selected))
		}

		obj, err := p.Catalog.FetchByID(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				log.Info("acquisition cancelled", zap.Int("processed", i), zap.Error(ctxErr))
				return res, ctxErr
			}
			log.Warn("object fetch failed", zap.Int("object_id", id), zap.Error(err))
			res.Errors = append(res.Errors, fmt.Errorf("object %d: %w", id, err))
			res.Rejections = append(res.Rejections, Rejection{ObjectID: id, Reason: ReasonFetchFailed})
			continue
		}

		if !obj.Complete() {
			log.Debug("object rejected", zap.Int("object_id", id), zap.String("reason", string(ReasonIncomplete)))
			res.Rejections = append(res.Rejections, Rejection{ObjectID: id, Reason: ReasonIncomplete})
			continue
		}

		candidate := ToPainting(obj)
		if collection.IsDuplicate(candidate, existing) ||
			(p.DedupWithinCycle && collection.IsDuplicate(candidate, accepted)) {
			log.Debug("object rejected", zap.Int("object_id", id), zap.String("reason", string(ReasonDuplicate)))
			res.Rejections = append(res.Rejections, Rejection{ObjectID: id, Reason: ReasonDuplicate})
			continue
		}

		accepted = append(accepted, candidate)
	}

	p.Store.Append(accepted)
	res.Accepted = accepted

	log.Info("acquisition finished",
		zap.Int("accepted", len(res.Accepted)),
		zap.Int("rejected", res.Rejected()),
		zap.Int("duplicates", res.Count(ReasonDuplicate)),
		zap.Int("incomplete", res.Count(ReasonIncomplete)),
		zap.Int("failed", res.Count(ReasonFetchFailed)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

func (p *Pipeline) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Pacer == nil {
		return nil
	}
	if err := p.Pacer.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// rate.Limiter refuses up front a wait that would outlive the deadline.
		if _, ok := ctx.Deadline(); ok {
			return fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		return fmt.Errorf("pacing: %w", err)
	}
	return nil
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// ToPainting maps a complete catalog record to a painting tagged with the
// museum provenance. Records without an object date get types.UnknownYear.
func ToPainting(obj *catalog.Object) types.Painting {
	year := obj.ObjectDate
	if year == "" {
		year = types.UnknownYear
	}
	return types.Painting{
		ImageURL:    obj.PrimaryImage,
		Title:       obj.Title,
		Artist:      obj.ArtistDisplayName,
		Year:        year,
		Style:       style.Classify(obj),
		Description: style.Describe(obj),
		Source:      types.SourceMet,
	}
}
