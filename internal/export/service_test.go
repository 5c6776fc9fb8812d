package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

type stubProducts struct{ rows []*ent.Product }

func (s *stubProducts) GetByID(context.Context, uuid.UUID) (*ent.Product, error) { return nil, nil }
func (s *stubProducts) FindActive(context.Context, string, string, uuid.UUID) (*ent.Product, error) {
	return nil, nil
}
func (s *stubProducts) Create(context.Context, repository.ProductDraft) (*ent.Product, error) {
	return nil, nil
}
func (s *stubProducts) Apply(context.Context, uuid.UUID, repository.ProductPatch) (*ent.Product, error) {
	return nil, nil
}
func (s *stubProducts) MarkProcessed(context.Context, uuid.UUID) error     { return nil }
func (s *stubProducts) MarkPublished(context.Context, uuid.UUID, string) error { return nil }
func (s *stubProducts) List(context.Context, *time.Time, *time.Time) ([]*ent.Product, error) {
	return s.rows, nil
}

type stubBrands struct{ brand *ent.Brand }

func (s *stubBrands) GetByID(context.Context, uuid.UUID) (*ent.Brand, error) { return s.brand, nil }
func (s *stubBrands) ListActive(context.Context) ([]*ent.Brand, error) {
	return []*ent.Brand{s.brand}, nil
}
func (s *stubBrands) ExistsByName(context.Context, string) (bool, error) { return true, nil }
func (s *stubBrands) Create(context.Context, string, string) (*ent.Brand, error) { return nil, nil }

type stubImages struct{ items map[uuid.UUID]int }

func (s *stubImages) Create(context.Context, repository.ImageDraft) (*ent.ProductImage, error) {
	return nil, nil
}
func (s *stubImages) ExistsByFilename(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (s *stubImages) ActiveCollage(context.Context, uuid.UUID) (*ent.ProductImage, error) {
	return nil, nil
}
func (s *stubImages) Delete(context.Context, uuid.UUID) error { return nil }
func (s *stubImages) ListActiveItems(_ context.Context, id uuid.UUID) ([]*ent.ProductImage, error) {
	out := make([]*ent.ProductImage, s.items[id])
	for i := range out {
		out[i] = &ent.ProductImage{}
	}
	return out, nil
}

func TestExportProductsXLSXCompleteColumn(t *testing.T) {
	brandID := uuid.New()
	price := 24.5
	typ := "DRESS"
	size := "36-42"
	marker := constants.FieldMissing

	complete := &ent.Product{
		ID: uuid.New(), Code: "AB-220", Color: "BLACK",
		BrandID: &brandID, Price: &price, ProductType: &typ, SizeRange: &size,
		TelegramSent: true,
	}
	// every column non-nil, but the size holds the extraction marker
	marked := &ent.Product{
		ID: uuid.New(), Code: "CD-310", Color: "NAVY",
		BrandID: &brandID, Price: &price, ProductType: &typ, SizeRange: &marker,
	}

	svc := NewService(
		&stubProducts{rows: []*ent.Product{complete, marked}},
		&stubBrands{brand: &ent.Brand{ID: brandID, Name: "Vera Moda"}},
		&stubImages{items: map[uuid.UUID]int{complete.ID: 2}},
		nil,
	)

	b, err := svc.ExportProductsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Products"
	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Complete", get("H1"))
	assert.Equal(t, "AB-220", get("A2"))
	assert.Equal(t, "Vera Moda", get("C2"))
	assert.Equal(t, "yes", get("H2"))
	assert.Equal(t, "yes", get("I2"))
	assert.Equal(t, "2", get("J2"))

	// a field the extractor gave up on blocks completeness the same way
	// a NULL does
	assert.Equal(t, "CD-310", get("A3"))
	assert.Equal(t, "no", get("H3"))
	assert.Equal(t, "no", get("I3"))
	assert.Equal(t, "0", get("J3"))
}
