package resolve

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/extract"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

type fakeProductRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*ent.Product
	creates int
	applies int

	// simulated query latency after a lookup miss, to widen the
	// check-then-act window
	findDelay time.Duration
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[uuid.UUID]*ent.Product{}}
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id], nil
}

func (f *fakeProductRepo) FindActive(_ context.Context, code, color string, brandID uuid.UUID) (*ent.Product, error) {
	f.mu.Lock()
	for _, p := range f.rows {
		if p.Code == code && p.Color == color && p.BrandID != nil && *p.BrandID == brandID && p.IsActive {
			f.mu.Unlock()
			return p, nil
		}
	}
	f.mu.Unlock()
	if f.findDelay > 0 {
		time.Sleep(f.findDelay)
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(_ context.Context, d repository.ProductDraft) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	p := &ent.Product{
		ID:                 uuid.New(),
		Code:               d.Code,
		Color:              d.Color,
		BrandID:            d.BrandID,
		ProductType:        d.ProductType,
		SizeRange:          d.SizeRange,
		Price:              d.Price,
		Material:           d.Material,
		Barcode:            d.Barcode,
		SecondaryCode:      d.SecondaryCode,
		SecondaryColor:     d.SecondaryColor,
		SecondarySizeRange: d.SecondarySizeRange,
		IsActive:           true,
	}
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Apply(_ context.Context, id uuid.UUID, patch repository.ProductPatch) (*ent.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applies++
	p := f.rows[id]
	if patch.BrandID != nil {
		p.BrandID = patch.BrandID
	}
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
	return p, nil
}

func (f *fakeProductRepo) MarkProcessed(_ context.Context, id uuid.UUID) error {
	f.rows[id].IsProcessed = true
	return nil
}

func (f *fakeProductRepo) MarkPublished(_ context.Context, id uuid.UUID, fp string) error {
	f.rows[id].TelegramSent = true
	f.rows[id].CollageFingerprint = &fp
	return nil
}

func (f *fakeProductRepo) List(context.Context, *time.Time, *time.Time) ([]*ent.Product, error) {
	out := make([]*ent.Product, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func TestFindOrCreateCreatesOnce(t *testing.T) {
	repo := newFakeProductRepo()
	r := NewProductResolver(repo, nil)
	ctx := context.Background()
	brandID := uuid.New()

	price := 24.50
	f := extract.Fields{
		Code:        "VV-6124-B",
		Color:       "BROWN",
		ProductType: "TUNIC",
		SizeRange:   "38-48",
		Price:       &price,
	}

	p1, created, err := r.FindOrCreate(ctx, f, brandID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, p1.ProductType)
	assert.Equal(t, "TUNIC", *p1.ProductType)
	require.NotNil(t, p1.Price)
	assert.Equal(t, 24.50, *p1.Price)

	p2, created, err := r.FindOrCreate(ctx, f, brandID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestFindOrCreatePatchDoesNotClobber(t *testing.T) {
	repo := newFakeProductRepo()
	r := NewProductResolver(repo, nil)
	ctx := context.Background()
	brandID := uuid.New()

	// item photo first: code and color only
	p1, created, err := r.FindOrCreate(ctx, extract.Fields{Code: "AB-220", Color: "BLACK"}, brandID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Nil(t, p1.ProductType)

	// label arrives later and fills the gaps
	price := 19.90
	label := extract.Fields{
		Code:        "AB-220",
		Color:       "BLACK",
		ProductType: "DRESS",
		SizeRange:   "36-42",
		Price:       &price,
	}
	p2, created, err := r.FindOrCreate(ctx, label, brandID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p1.ID, p2.ID)
	require.NotNil(t, p2.ProductType)
	assert.Equal(t, "DRESS", *p2.ProductType)

	// a later extraction never overwrites populated columns
	otherPrice := 99.0
	conflicting := extract.Fields{
		Code:        "AB-220",
		Color:       "BLACK",
		ProductType: "SKIRT",
		Price:       &otherPrice,
	}
	p3, _, err := r.FindOrCreate(ctx, conflicting, brandID)
	require.NoError(t, err)
	assert.Equal(t, "DRESS", *p3.ProductType)
	assert.Equal(t, 19.90, *p3.Price)
}

func TestFindOrCreateSecondaryAndMissing(t *testing.T) {
	repo := newFakeProductRepo()
	r := NewProductResolver(repo, nil)
	ctx := context.Background()
	brandID := uuid.New()

	f := extract.Fields{
		Code:      "CD-310",
		Color:     "NAVY",
		SizeRange: constants.FieldMissing,
		Secondary: &extract.Fields{Code: "CD-311", Color: "NAVY", SizeRange: "40-46"},
	}
	p, created, err := r.FindOrCreate(ctx, f, brandID)
	require.NoError(t, err)
	assert.True(t, created)
	// the missing marker maps to NULL, not a stored "missing" string
	assert.Nil(t, p.SizeRange)
	require.NotNil(t, p.SecondaryCode)
	assert.Equal(t, "CD-311", *p.SecondaryCode)
	require.NotNil(t, p.SecondarySizeRange)
	assert.Equal(t, "40-46", *p.SecondarySizeRange)

	_, _, err = r.FindOrCreate(ctx, extract.Fields{Code: "", Color: "RED"}, brandID)
	assert.Error(t, err)
}

func TestFindOrCreateConcurrentSameProduct(t *testing.T) {
	repo := newFakeProductRepo()
	repo.findDelay = 10 * time.Millisecond
	r := NewProductResolver(repo, nil)
	brandID := uuid.New()
	f := extract.Fields{Code: "VV-6124-B", Color: "BROWN"}

	// A batch fans item photos for one product out across workers; every
	// call must land on the same row even when the lookups all start
	// before the first insert commits.
	const workers = 8
	ids := make([]uuid.UUID, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, _, err := r.FindOrCreate(context.Background(), f, brandID)
			if assert.NoError(t, err) {
				ids[i] = p.ID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.creates)
	for i := 1; i < workers; i++ {
		assert.Equal(t, ids[0], ids[i])
	}

	// A different color is a different product and must not serialize
	// into the first row.
	other, created, err := r.FindOrCreate(context.Background(), extract.Fields{Code: "VV-6124-B", Color: "BLACK"}, brandID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, ids[0], other.ID)
}
