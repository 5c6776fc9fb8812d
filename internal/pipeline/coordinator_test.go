package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/collage"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	"github.com/ksarkisyan/catalog-intake/internal/ocr"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
	"github.com/ksarkisyan/catalog-intake/internal/resolve"
)

// ---- fakes ----

type fakeBrands struct {
	mu   sync.Mutex
	rows []*ent.Brand
}

func (f *fakeBrands) GetByID(_ context.Context, id uuid.UUID) (*ent.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.rows {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("brand not found")
}

func (f *fakeBrands) ListActive(context.Context) ([]*ent.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]*ent.Brand(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeBrands) ExistsByName(context.Context, string) (bool, error) { return false, nil }

func (f *fakeBrands) Create(_ context.Context, name, normalized string) (*ent.Brand, error) {
	b := &ent.Brand{ID: uuid.New(), Name: name, NormalizedName: normalized, IsActive: true}
	f.mu.Lock()
	f.rows = append(f.rows, b)
	f.mu.Unlock()
	return b, nil
}

type fakeProducts struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.Product
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{rows: map[uuid.UUID]*ent.Product{}}
}

func (f *fakeProducts) GetByID(_ context.Context, id uuid.UUID) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("product not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) FindActive(_ context.Context, code, color string, brandID uuid.UUID) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.Code == code && p.Color == color && p.BrandID != nil && *p.BrandID == brandID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Create(_ context.Context, d repository.ProductDraft) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &ent.Product{
		ID: uuid.New(), Code: d.Code, Color: d.Color, BrandID: d.BrandID,
		ProductType: d.ProductType, SizeRange: d.SizeRange, Price: d.Price,
		Material: d.Material, Barcode: d.Barcode,
		SecondaryCode: d.SecondaryCode, SecondaryColor: d.SecondaryColor,
		SecondarySizeRange: d.SecondarySizeRange, IsActive: true,
	}
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeProducts) Apply(_ context.Context, id uuid.UUID, patch repository.ProductPatch) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.rows[id]
	if patch.ProductType != nil {
		p.ProductType = patch.ProductType
	}
	if patch.SizeRange != nil {
		p.SizeRange = patch.SizeRange
	}
	if patch.Price != nil {
		p.Price = patch.Price
	}
	if patch.Material != nil {
		p.Material = patch.Material
	}
	if patch.Barcode != nil {
		p.Barcode = patch.Barcode
	}
	if patch.SecondaryCode != nil {
		p.SecondaryCode = patch.SecondaryCode
	}
	if patch.SecondaryColor != nil {
		p.SecondaryColor = patch.SecondaryColor
	}
	if patch.SecondarySizeRange != nil {
		p.SecondarySizeRange = patch.SecondarySizeRange
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) MarkProcessed(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].IsProcessed = true
	return nil
}

func (f *fakeProducts) MarkPublished(_ context.Context, id uuid.UUID, fp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].TelegramSent = true
	f.rows[id].CollageFingerprint = &fp
	return nil
}

func (f *fakeProducts) List(context.Context, *time.Time, *time.Time) ([]*ent.Product, error) {
	return nil, nil
}

func (f *fakeProducts) byCode(code, color string) *ent.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.Code == code && p.Color == color {
			cp := *p
			return &cp
		}
	}
	return nil
}

type fakeImages struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*ent.ProductImage
	deleteErr error
}

func newFakeImages() *fakeImages {
	return &fakeImages{rows: map[uuid.UUID]*ent.ProductImage{}}
}

func (f *fakeImages) Create(_ context.Context, d repository.ImageDraft) (*ent.ProductImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := &ent.ProductImage{
		ID: uuid.New(), ProductID: d.ProductID, Filename: d.Filename,
		StoragePath: d.StoragePath, ImageType: string(d.Type),
		Sequence: d.Sequence, IsActive: true,
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeImages) ExistsByFilename(_ context.Context, productID uuid.UUID, filename string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ProductID == productID && r.Filename == filename && r.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeImages) ActiveCollage(_ context.Context, productID uuid.UUID) (*ent.ProductImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ProductID == productID && r.ImageType == string(constants.ImageTypeCollage) && r.IsActive {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeImages) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeImages) collageRows(productID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.rows {
		if r.ProductID == productID && r.ImageType == string(constants.ImageTypeCollage) && r.IsActive {
			n++
		}
	}
	return n
}

func (f *fakeImages) ListActiveItems(_ context.Context, productID uuid.UUID) ([]*ent.ProductImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.ProductImage
	for _, r := range f.rows {
		if r.ProductID == productID && r.ImageType == string(constants.ImageTypeItem) && r.IsActive {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].Filename < out[j].Filename
	})
	return out, nil
}

type fakeJobs struct {
	mu       sync.Mutex
	statuses []constants.JobStatus
	last     repository.JobProgress
}

func (f *fakeJobs) Create(_ context.Context, total int) (*ent.UploadJob, error) {
	return &ent.UploadJob{ID: uuid.New(), TotalFiles: total}, nil
}

func (f *fakeJobs) Get(context.Context, uuid.UUID) (*ent.UploadJob, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeJobs) MarkProcessing(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeJobs) Progress(_ context.Context, _ uuid.UUID, p repository.JobProgress) error {
	f.mu.Lock()
	f.last = p
	f.mu.Unlock()
	return nil
}

func (f *fakeJobs) Finish(_ context.Context, _ uuid.UUID, status constants.JobStatus, _ string) error {
	f.mu.Lock()
	f.statuses = append(f.statuses, status)
	f.mu.Unlock()
	return nil
}

func (f *fakeJobs) finalStatus() constants.JobStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.statuses) == 0 {
		return ""
	}
	return f.statuses[len(f.statuses)-1]
}

func (f *fakeJobs) lastProgress() repository.JobProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// fakeRecognizer echoes the file content back as the recognized text.
type fakeRecognizer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeRecognizer) Recognize(_ context.Context, imageBytes []byte) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return string(imageBytes), nil
}

func (f *fakeRecognizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeComposer struct {
	mu    sync.Mutex
	calls int
	specs []collage.Spec
}

func (f *fakeComposer) Compose(spec collage.Spec, out io.Writer) error {
	f.mu.Lock()
	f.calls++
	f.specs = append(f.specs, spec)
	f.mu.Unlock()
	_, err := out.Write([]byte("png"))
	return err
}

type fakeNotifier struct {
	mu       sync.Mutex
	captions []string
	err      error
}

func (f *fakeNotifier) PublishPhoto(_ context.Context, _ []byte, _, caption string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.captions = append(f.captions, caption)
	return nil
}

func (f *fakeNotifier) publishCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.captions)
}

// ---- harness ----

type harness struct {
	coord    *Coordinator
	brands   *fakeBrands
	products *fakeProducts
	images   *fakeImages
	jobs     *fakeJobs
	rec      *fakeRecognizer
	comp     *fakeComposer
	notif    *fakeNotifier
	brandID  uuid.UUID
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	brands := &fakeBrands{}
	vera := &ent.Brand{ID: uuid.New(), Name: "Vera Moda", NormalizedName: "veramoda", IsActive: true}
	brands.rows = append(brands.rows, vera)

	products := newFakeProducts()
	images := newFakeImages()
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{}
	comp := &fakeComposer{}
	notif := &fakeNotifier{}

	cfg := common.PipelineConfig{
		MediaRoot:   t.TempDir(),
		Concurrency: 4,
		ChunkSize:   25,
	}
	coord := NewCoordinator(cfg, common.CollageConfig{CurrencySymbol: "$"}, CoordinatorDeps{
		Jobs:            jobs,
		Products:        products,
		Images:          images,
		Brands:          brands,
		BrandResolver:   resolve.NewBrandResolver(brands, nil),
		ProductResolver: resolve.NewProductResolver(products, nil),
		Recognizer:      rec,
		Composer:        comp,
		Notifier:        notif,
		Store:           NewMediaStore(cfg.MediaRoot),
	})
	return &harness{
		coord: coord, brands: brands, products: products, images: images,
		jobs: jobs, rec: rec, comp: comp, notif: notif, brandID: vera.ID,
	}
}

const labelText = "VERA MODA\nTUNIC\nVV-6124-B\nBROWN\n38-48\nPRICE: 24.50"

func fullBatch() []BatchFile {
	return []BatchFile{
		{Filename: "VV-6124-B BROWN.jpg", Content: []byte(labelText)},
		{Filename: "VV-6124-B BROWN 1.jpg", Content: []byte("item-one")},
		{Filename: "VV-6124-B BROWN 2.jpg", Content: []byte("item-two")},
	}
}

// ---- tests ----

func TestRunFullBatchPublishesOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))

	assert.Equal(t, constants.JobStatusCompleted, h.jobs.finalStatus())
	prog := h.jobs.lastProgress()
	assert.Equal(t, 3, prog.Processed)
	assert.Equal(t, 0, prog.Failed)
	assert.Equal(t, 0, prog.Skipped)

	// one OCR call for the label, none for the items
	assert.Equal(t, 1, h.rec.callCount())

	p := h.products.byCode("VV-6124-B", "BROWN")
	require.NotNil(t, p)
	require.NotNil(t, p.BrandID)
	assert.Equal(t, h.brandID, *p.BrandID)
	require.NotNil(t, p.Price)
	assert.Equal(t, 24.50, *p.Price)
	assert.True(t, p.IsProcessed)
	assert.True(t, p.TelegramSent)
	require.NotNil(t, p.CollageFingerprint)

	assert.Equal(t, 1, h.comp.calls)
	require.Equal(t, 1, h.notif.publishCount())
	assert.Contains(t, h.notif.captions[0], "VERA MODA")
	assert.Contains(t, h.notif.captions[0], "VV-6124-B")
	// the badge carries a rounded whole amount, not the raw decimal
	assert.Contains(t, h.notif.captions[0], "$25")
	assert.NotContains(t, h.notif.captions[0], "24.50")

	require.Len(t, h.comp.specs, 1)
	assert.Len(t, h.comp.specs[0].ImagePaths, 2)
	assert.Equal(t, "$25", h.comp.specs[0].PriceText)
}

func TestRunRepeatBatchSkipsAndStaysSilent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))
	require.Equal(t, 1, h.notif.publishCount())

	// identical re-upload: every file is a duplicate, nothing republishes
	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))

	assert.Equal(t, constants.JobStatusCompleted, h.jobs.finalStatus())
	prog := h.jobs.lastProgress()
	assert.Equal(t, 0, prog.Processed)
	assert.Equal(t, 0, prog.Failed)
	assert.Equal(t, 3, prog.Skipped)

	assert.Equal(t, 1, h.notif.publishCount())
	assert.Equal(t, 1, h.comp.calls)
}

func TestRunBrandResolutionFailureCounted(t *testing.T) {
	h := newHarness(t)
	h.brands.rows = nil // no brands, no fallback
	ctx := context.Background()

	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))

	assert.Equal(t, constants.JobStatusError, h.jobs.finalStatus())
	prog := h.jobs.lastProgress()
	assert.Equal(t, 0, prog.Processed)
	assert.Equal(t, 3, prog.Failed)
	assert.Equal(t, 0, h.notif.publishCount())
	assert.Nil(t, h.products.byCode("VV-6124-B", "BROWN"))
}

func TestRunOCRFailureFallsBackToFilename(t *testing.T) {
	h := newHarness(t)
	h.rec.err = &ocr.Error{Op: "annotate", Err: fmt.Errorf("unavailable")}
	ctx := context.Background()

	require.NoError(t, h.coord.Run(ctx, uuid.New(), []BatchFile{
		{Filename: "VV-6124-B BROWN.jpg", Content: []byte("ignored")},
	}, &h.brandID))

	// filename fields are enough to persist the product...
	assert.Equal(t, constants.JobStatusCompleted, h.jobs.finalStatus())
	assert.Equal(t, 1, h.jobs.lastProgress().Processed)
	p := h.products.byCode("VV-6124-B", "BROWN")
	require.NotNil(t, p)

	// ...but without a price it never reaches the channel
	assert.Nil(t, p.Price)
	assert.False(t, p.TelegramSent)
	assert.Equal(t, 0, h.notif.publishCount())
}

func TestRunDualProductLabel(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	dual := "VERA MODA\nTUNIC\nVV-6124-B\nWW-7200\nBROWN\nNAVY\n38-48\n40-46\nPRICE: 24.50"
	require.NoError(t, h.coord.Run(ctx, uuid.New(), []BatchFile{
		{Filename: "VV-6124-B BROWN.jpg", Content: []byte(dual)},
	}, nil))

	primary := h.products.byCode("VV-6124-B", "BROWN")
	require.NotNil(t, primary)
	secondary := h.products.byCode("WW-7200", "NAVY")
	require.NotNil(t, secondary)
	require.NotNil(t, secondary.SizeRange)
	assert.Equal(t, "40-46", *secondary.SizeRange)

	// the label image attaches to the primary only
	exists, err := h.images.ExistsByFilename(ctx, primary.ID, "VV-6124-B BROWN.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = h.images.ExistsByFilename(ctx, secondary.ID, "VV-6124-B BROWN.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPublishCheckRetriesAfterPublishFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.notif.err = fmt.Errorf("channel unreachable: %w", common.ErrPublish)
	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))

	p := h.products.byCode("VV-6124-B", "BROWN")
	require.NotNil(t, p)
	assert.False(t, p.TelegramSent)
	assert.Equal(t, 0, h.notif.publishCount())

	// channel recovers, the next completeness check publishes
	h.notif.mu.Lock()
	h.notif.err = nil
	h.notif.mu.Unlock()
	require.NoError(t, h.coord.PublishCheck(ctx, p.ID))

	p = h.products.byCode("VV-6124-B", "BROWN")
	assert.True(t, p.TelegramSent)
	assert.Equal(t, 1, h.notif.publishCount())
}

func TestPublishCheckReplacesOldCollageRow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))
	p := h.products.byCode("VV-6124-B", "BROWN")
	require.NotNil(t, p)
	require.Equal(t, 1, h.images.collageRows(p.ID))
	firstFP := *p.CollageFingerprint

	// a price correction changes the collage identity and republishes
	newPrice := 39.0
	_, err := h.products.Apply(ctx, p.ID, repository.ProductPatch{Price: &newPrice})
	require.NoError(t, err)
	require.NoError(t, h.coord.PublishCheck(ctx, p.ID))

	// old row swapped out, never two active collages
	assert.Equal(t, 1, h.images.collageRows(p.ID))
	assert.Equal(t, 2, h.notif.publishCount())
	p = h.products.byCode("VV-6124-B", "BROWN")
	assert.NotEqual(t, firstFP, *p.CollageFingerprint)
}

func TestPublishCheckStopsWhenOldCollageSticks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.coord.Run(ctx, uuid.New(), fullBatch(), nil))
	p := h.products.byCode("VV-6124-B", "BROWN")
	require.NotNil(t, p)
	firstFP := *p.CollageFingerprint

	newPrice := 39.0
	_, err := h.products.Apply(ctx, p.ID, repository.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	// if the stale row cannot be removed, no second row may appear
	h.images.mu.Lock()
	h.images.deleteErr = fmt.Errorf("row locked")
	h.images.mu.Unlock()

	err = h.coord.PublishCheck(ctx, p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, 1, h.images.collageRows(p.ID))
	assert.Equal(t, 1, h.notif.publishCount())
	p = h.products.byCode("VV-6124-B", "BROWN")
	assert.Equal(t, firstFP, *p.CollageFingerprint)
}

func TestPublishCheckIncompleteProductIsNoop(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.products.Create(ctx, repository.ProductDraft{
		Code: "AB-220", Color: "BLACK", BrandID: &h.brandID,
	})
	require.NoError(t, err)

	require.NoError(t, h.coord.PublishCheck(ctx, p.ID))
	assert.Equal(t, 0, h.comp.calls)
	assert.Equal(t, 0, h.notif.publishCount())
}
