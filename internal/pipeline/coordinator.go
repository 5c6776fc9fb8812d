package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/internal/collage"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	"github.com/ksarkisyan/catalog-intake/internal/extract"
	"github.com/ksarkisyan/catalog-intake/internal/ocr"
	"github.com/ksarkisyan/catalog-intake/internal/publish"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
	"github.com/ksarkisyan/catalog-intake/internal/resolve"
)

// BatchFile is one uploaded image: the original filename plus its bytes.
type BatchFile struct {
	Filename string
	Content  []byte
}

// Composer renders a collage to a writer.
type Composer interface {
	Compose(spec collage.Spec, out io.Writer) error
}

// Coordinator drives a batch through the intake pipeline: label files
// first and strictly in order, then item files in bounded-concurrency
// chunks, then a publish check for every product the batch touched.
type Coordinator struct {
	cfg        common.PipelineConfig
	collageCfg common.CollageConfig

	jobs       repository.UploadJobRepository
	products   repository.ProductRepository
	images     repository.ProductImageRepository
	brandsRepo repository.BrandRepository

	brands      *resolve.BrandResolver
	productsRes *resolve.ProductResolver
	recognizer  ocr.Recognizer
	composer    Composer
	notifier    publish.Notifier
	store       *MediaStore
	logger      *slog.Logger

	publishMu    sync.Mutex
	publishLocks map[uuid.UUID]*sync.Mutex
}

type CoordinatorDeps struct {
	Jobs            repository.UploadJobRepository
	Products        repository.ProductRepository
	Images          repository.ProductImageRepository
	Brands          repository.BrandRepository
	BrandResolver   *resolve.BrandResolver
	ProductResolver *resolve.ProductResolver
	Recognizer      ocr.Recognizer
	Composer        Composer
	Notifier        publish.Notifier
	Store           *MediaStore
	Logger          *slog.Logger
}

func NewCoordinator(cfg common.PipelineConfig, collageCfg common.CollageConfig, deps CoordinatorDeps) *Coordinator {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 25
	}
	return &Coordinator{
		cfg:          cfg,
		collageCfg:   collageCfg,
		jobs:         deps.Jobs,
		products:     deps.Products,
		images:       deps.Images,
		brandsRepo:   deps.Brands,
		brands:       deps.BrandResolver,
		productsRes:  deps.ProductResolver,
		recognizer:   deps.Recognizer,
		composer:     deps.Composer,
		notifier:     deps.Notifier,
		store:        deps.Store,
		logger:       logger.With("component", "coordinator"),
		publishLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// progress tracks batch counters. Counters only grow and always satisfy
// processed + failed + skipped <= total.
type progress struct {
	mu        sync.Mutex
	processed int
	failed    int
	skipped   int
}

func (p *progress) record(o outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch o {
	case outcomeProcessed:
		p.processed++
	case outcomeSkipped:
		p.skipped++
	default:
		p.failed++
	}
}

func (p *progress) snapshot(phase string) repository.JobProgress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return repository.JobProgress{
		Processed: p.processed,
		Failed:    p.failed,
		Skipped:   p.skipped,
		Phase:     phase,
	}
}

// touchedSet collects the products a batch has modified, so the publish
// pass checks each one exactly once.
type touchedSet struct {
	mu  sync.Mutex
	ids map[uuid.UUID]struct{}
}

func newTouchedSet() *touchedSet {
	return &touchedSet{ids: make(map[uuid.UUID]struct{})}
}

func (t *touchedSet) add(ids ...uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range ids {
		t.ids[id] = struct{}{}
	}
}

func (t *touchedSet) list() []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]uuid.UUID, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	return out
}

// Run processes one batch under the given job. The error return covers
// coordinator-level failures only; per-file failures are contained and
// surface through the job counters.
func (c *Coordinator) Run(ctx context.Context, jobID uuid.UUID, files []BatchFile, defaultBrandID *uuid.UUID) error {
	log := c.logger.With("job_id", jobID)

	if err := c.jobs.MarkProcessing(ctx, jobID, "partitioning files"); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	// One cache per run: label extractions from a previous batch must
	// never leak into this one.
	cache := extract.NewCache()

	var labels, items []BatchFile
	for _, f := range files {
		role, _ := extract.ParseRole(f.Filename)
		if role == constants.ImageTypeLabel {
			labels = append(labels, f)
		} else {
			items = append(items, f)
		}
	}
	log.Info("batch partitioned", "total", len(files), "labels", len(labels), "items", len(items))

	prog := &progress{}
	touched := newTouchedSet()

	// Labels run strictly sequentially so every cache entry exists
	// before the items that depend on it.
	for _, f := range labels {
		if err := ctx.Err(); err != nil {
			return c.abort(ctx, jobID, prog, err)
		}
		o, ids := c.processFile(ctx, cache, f, defaultBrandID)
		prog.record(o)
		touched.add(ids...)
		_ = c.jobs.Progress(ctx, jobID, prog.snapshot("processing labels"))
	}

	// Items run in chunks with bounded concurrency and a pacing delay
	// between chunks.
	sem := semaphore.NewWeighted(int64(c.cfg.Concurrency))
	for start := 0; start < len(items); start += c.cfg.ChunkSize {
		if err := ctx.Err(); err != nil {
			return c.abort(ctx, jobID, prog, err)
		}
		end := start + c.cfg.ChunkSize
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]

		g, gctx := errgroup.WithContext(ctx)
		for _, f := range chunk {
			f := f
			if err := sem.Acquire(gctx, 1); err != nil {
				break
			}
			g.Go(func() error {
				defer sem.Release(1)
				o, ids := c.processFile(gctx, cache, f, defaultBrandID)
				prog.record(o)
				touched.add(ids...)
				return nil
			})
		}
		_ = g.Wait()
		_ = c.jobs.Progress(ctx, jobID, prog.snapshot(fmt.Sprintf("processing items %d/%d", end, len(items))))

		if c.cfg.PaceDelay > 0 && end < len(items) {
			select {
			case <-time.After(c.cfg.PaceDelay):
			case <-ctx.Done():
				return c.abort(ctx, jobID, prog, ctx.Err())
			}
		}
	}

	// Publish pass: every touched product gets one completeness check.
	for _, id := range touched.list() {
		if err := ctx.Err(); err != nil {
			return c.abort(ctx, jobID, prog, err)
		}
		if err := c.PublishCheck(ctx, id); err != nil {
			log.Warn("publish check failed", "product_id", id, "err", err)
		}
	}

	snap := prog.snapshot("")
	status := constants.JobStatusCompleted
	phase := fmt.Sprintf("done: %d processed, %d failed, %d skipped", snap.Processed, snap.Failed, snap.Skipped)
	if snap.Failed > 0 {
		status = constants.JobStatusError
	}
	_ = c.jobs.Progress(ctx, jobID, repository.JobProgress{
		Processed: snap.Processed, Failed: snap.Failed, Skipped: snap.Skipped, Phase: phase,
	})
	if err := c.jobs.Finish(ctx, jobID, status, phase); err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	log.Info("batch finished", "status", status, "processed", snap.Processed, "failed", snap.Failed, "skipped", snap.Skipped)
	return nil
}

func (c *Coordinator) abort(ctx context.Context, jobID uuid.UUID, prog *progress, cause error) error {
	snap := prog.snapshot("aborted: " + cause.Error())
	_ = c.jobs.Progress(context.WithoutCancel(ctx), jobID, snap)
	_ = c.jobs.Finish(context.WithoutCancel(ctx), jobID, constants.JobStatusError, snap.Phase)
	return cause
}
