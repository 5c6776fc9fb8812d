package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/extract"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

// ProductResolver finds or creates the canonical product for a merged
// extraction and applies new fields without clobbering populated ones.
type ProductResolver struct {
	products repository.ProductRepository
	logger   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProductResolver(products repository.ProductRepository, logger *slog.Logger) *ProductResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductResolver{products: products, logger: logger, locks: map[string]*sync.Mutex{}}
}

// tripleLock returns the mutex serializing find-or-create for one
// (code, color, brand) triple: concurrent item files for the same
// product must not race two inserts past the lookup.
func (r *ProductResolver) tripleLock(code, color string, brandID uuid.UUID) *sync.Mutex {
	key := code + "\x00" + color + "\x00" + brandID.String()
	r.mu.Lock()
	defer r.mu.Unlock()
	mu, ok := r.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		r.locks[key] = mu
	}
	return mu
}

// FindOrCreate returns the active product for (code, color, brand),
// creating it when absent. The boolean reports whether a row was
// created. Lookup and insert run under a per-triple lock so one row per
// triple holds within the process; the unique (code, color, brand_id)
// index backstops it across processes.
func (r *ProductResolver) FindOrCreate(ctx context.Context, f extract.Fields, brandID uuid.UUID) (*ent.Product, bool, error) {
	if f.Code == "" || f.Color == "" {
		return nil, false, fmt.Errorf("incomplete extraction: code=%q color=%q", f.Code, f.Color)
	}

	mu := r.tripleLock(f.Code, f.Color, brandID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := r.products.FindActive(ctx, f.Code, f.Color, brandID)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		patch := buildPatch(existing, f)
		if patch.IsEmpty() {
			return existing, false, nil
		}
		updated, err := r.products.Apply(ctx, existing.ID, patch)
		if err != nil {
			return nil, false, err
		}
		r.logger.Debug("product fields merged", "product_id", existing.ID, "code", f.Code, "color", f.Color)
		return updated, false, nil
	}

	draft := repository.ProductDraft{
		Code:        f.Code,
		Color:       f.Color,
		BrandID:     &brandID,
		ProductType: fieldValue(f.ProductType),
		SizeRange:   fieldValue(f.SizeRange),
		Price:       f.Price,
		Material:    fieldValue(f.Material),
		Barcode:     fieldValue(f.Barcode),
	}
	if sec := f.Secondary; sec != nil {
		draft.SecondaryCode = fieldValue(sec.Code)
		draft.SecondaryColor = fieldValue(sec.Color)
		draft.SecondarySizeRange = fieldValue(sec.SizeRange)
	}

	created, err := r.products.Create(ctx, draft)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// buildPatch keeps the merge rule in one place: a column is written
// only when the stored value is absent (or the "missing" marker) and
// the extraction carries something usable.
func buildPatch(existing *ent.Product, f extract.Fields) repository.ProductPatch {
	var p repository.ProductPatch
	p.ProductType = patchValue(existing.ProductType, f.ProductType)
	p.SizeRange = patchValue(existing.SizeRange, f.SizeRange)
	p.Material = patchValue(existing.Material, f.Material)
	p.Barcode = patchValue(existing.Barcode, f.Barcode)
	if existing.Price == nil && f.Price != nil {
		p.Price = f.Price
	}
	if sec := f.Secondary; sec != nil {
		p.SecondaryCode = patchValue(existing.SecondaryCode, sec.Code)
		p.SecondaryColor = patchValue(existing.SecondaryColor, sec.Color)
		p.SecondarySizeRange = patchValue(existing.SecondarySizeRange, sec.SizeRange)
	}
	return p
}

// patchValue returns the overlay only when the stored column is empty.
func patchValue(stored *string, overlay string) *string {
	if overlay == "" || overlay == constants.FieldMissing {
		return nil
	}
	if stored != nil && *stored != "" && *stored != constants.FieldMissing {
		return nil
	}
	return &overlay
}

// fieldValue converts an extracted string to a nullable column value.
func fieldValue(s string) *string {
	if s == "" || s == constants.FieldMissing {
		return nil
	}
	return &s
}
