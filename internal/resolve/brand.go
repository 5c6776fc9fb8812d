package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

// BrandResolver maps an extracted brand hint to a canonical brand row.
type BrandResolver struct {
	brands repository.BrandRepository
	logger *slog.Logger
}

func NewBrandResolver(brands repository.BrandRepository, logger *slog.Logger) *BrandResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrandResolver{brands: brands, logger: logger}
}

// Resolve tries, in order: exact case-insensitive match, normalized
// match, substring match in either direction, then the uploader's
// configured fallback brand. Candidates are scanned in name order, so
// ties break deterministically. Returns common.ErrBrandResolution when
// nothing resolves.
func (r *BrandResolver) Resolve(ctx context.Context, hint string, fallbackID *uuid.UUID) (*ent.Brand, error) {
	hint = strings.TrimSpace(hint)

	if hint != "" {
		active, err := r.brands.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("list brands: %w", err)
		}

		for _, b := range active {
			if strings.EqualFold(b.Name, hint) {
				return b, nil
			}
		}

		normHint := NormalizeName(hint)
		if normHint != "" {
			for _, b := range active {
				if brandNorm(b) == normHint {
					r.logger.Debug("brand matched by normalized name", "hint", hint, "brand", b.Name)
					return b, nil
				}
			}
			for _, b := range active {
				bn := brandNorm(b)
				if bn == "" {
					continue
				}
				if strings.Contains(bn, normHint) || strings.Contains(normHint, bn) {
					r.logger.Debug("brand matched by substring", "hint", hint, "brand", b.Name)
					return b, nil
				}
			}
		}
	}

	if fallbackID != nil && *fallbackID != uuid.Nil {
		b, err := r.brands.GetByID(ctx, *fallbackID)
		if err != nil {
			return nil, fmt.Errorf("fallback brand %s: %w", fallbackID, common.ErrBrandResolution)
		}
		return b, nil
	}

	return nil, fmt.Errorf("no brand for hint %q: %w", hint, common.ErrBrandResolution)
}

func brandNorm(b *ent.Brand) string {
	if b.NormalizedName != "" {
		return b.NormalizedName
	}
	return NormalizeName(b.Name)
}
