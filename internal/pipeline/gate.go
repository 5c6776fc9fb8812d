package pipeline

import (
	"strings"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
)

// IsComplete reports whether a product has everything a collage needs:
// a resolved brand, a price, a product type and a size range. The gate
// always reads the current row, never a cached extraction.
func IsComplete(p *ent.Product) bool {
	return len(CompletenessGaps(p)) == 0
}

// CompletenessGaps lists the fields still blocking publication, for
// logging and the job phase message.
func CompletenessGaps(p *ent.Product) []string {
	var gaps []string
	if p.BrandID == nil {
		gaps = append(gaps, "brand")
	}
	if p.Price == nil {
		gaps = append(gaps, "price")
	}
	if !fieldPresent(p.ProductType) {
		gaps = append(gaps, "product_type")
	}
	if !fieldPresent(p.SizeRange) {
		gaps = append(gaps, "size_range")
	}
	return gaps
}

func fieldPresent(s *string) bool {
	if s == nil {
		return false
	}
	v := strings.TrimSpace(*s)
	return v != "" && !strings.EqualFold(v, constants.FieldMissing)
}
