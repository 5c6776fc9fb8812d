package resolve

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/common"
)

type fakeBrandRepo struct {
	brands []*ent.Brand
}

func (f *fakeBrandRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Brand, error) {
	for _, b := range f.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("brand not found")
}

func (f *fakeBrandRepo) ListActive(context.Context) ([]*ent.Brand, error) {
	out := make([]*ent.Brand, 0, len(f.brands))
	for _, b := range f.brands {
		if b.IsActive {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeBrandRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, b := range f.brands {
		if b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBrandRepo) Create(_ context.Context, name, normalized string) (*ent.Brand, error) {
	b := &ent.Brand{ID: uuid.New(), Name: name, NormalizedName: normalized, IsActive: true}
	f.brands = append(f.brands, b)
	return b, nil
}

func newBrand(name string) *ent.Brand {
	return &ent.Brand{ID: uuid.New(), Name: name, NormalizedName: NormalizeName(name), IsActive: true}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "veramoda", NormalizeName("Véra & Moda"))
	assert.Equal(t, "hm", NormalizeName("H & M"))
	assert.Equal(t, "nora", NormalizeName("NORA"))
	assert.Equal(t, "", NormalizeName("&& &"))
}

func TestBrandResolveLadder(t *testing.T) {
	vera := newBrand("Vera Moda")
	nora := newBrand("Nora & Co")
	inactive := newBrand("Ghost")
	inactive.IsActive = false
	repo := &fakeBrandRepo{brands: []*ent.Brand{vera, nora, inactive}}
	r := NewBrandResolver(repo, nil)
	ctx := context.Background()

	// (1) exact, case-insensitive
	got, err := r.Resolve(ctx, "vera moda", nil)
	require.NoError(t, err)
	assert.Equal(t, vera.ID, got.ID)

	// (2) diacritic/punctuation-normalized
	got, err = r.Resolve(ctx, "VÉRA&MODA", nil)
	require.NoError(t, err)
	assert.Equal(t, vera.ID, got.ID)

	// (3) substring, hint-in-name
	got, err = r.Resolve(ctx, "NORA", nil)
	require.NoError(t, err)
	assert.Equal(t, nora.ID, got.ID)

	// (3) substring, name-in-hint
	got, err = r.Resolve(ctx, "VERA MODA TEXTILE GROUP", nil)
	require.NoError(t, err)
	assert.Equal(t, vera.ID, got.ID)

	// inactive brands never match
	_, err = r.Resolve(ctx, "Ghost", nil)
	assert.ErrorIs(t, err, common.ErrBrandResolution)
}

func TestBrandResolveFallback(t *testing.T) {
	vera := newBrand("Vera Moda")
	repo := &fakeBrandRepo{brands: []*ent.Brand{vera}}
	r := NewBrandResolver(repo, nil)
	ctx := context.Background()

	// (4) unknown hint falls back to the uploader's default brand
	got, err := r.Resolve(ctx, "UNKNOWN", &vera.ID)
	require.NoError(t, err)
	assert.Equal(t, vera.ID, got.ID)

	// empty hint with fallback works too
	got, err = r.Resolve(ctx, "", &vera.ID)
	require.NoError(t, err)
	assert.Equal(t, vera.ID, got.ID)

	// nothing resolves -> typed failure, file is skippable
	_, err = r.Resolve(ctx, "UNKNOWN", nil)
	assert.ErrorIs(t, err, common.ErrBrandResolution)

	missing := uuid.New()
	_, err = r.Resolve(ctx, "UNKNOWN", &missing)
	assert.ErrorIs(t, err, common.ErrBrandResolution)
}
