package extract

import (
	"strings"

	"github.com/ksarkisyan/catalog-intake/constants"
)

// Fields is the immutable result of one extraction pass. A field the
// extractor could not determine is left zero ("" / nil) — extractors
// never guess defaults; the caller decides how to present a gap.
type Fields struct {
	Code        string   `json:"code,omitempty"`
	Color       string   `json:"color,omitempty"`
	BrandName   string   `json:"brand_name,omitempty"`
	ProductType string   `json:"product_type,omitempty"`
	SizeRange   string   `json:"size_range,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Material    string   `json:"material,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`

	// Secondary carries the second variant of a dual-product label.
	Secondary *Fields `json:"secondary,omitempty"`

	Confidence float64 `json:"confidence"`
	SourceText string  `json:"source_text,omitempty"`
}

// IsZero reports whether nothing was extracted.
func (f Fields) IsZero() bool {
	return f.Code == "" && f.Color == "" && f.BrandName == "" &&
		f.ProductType == "" && f.SizeRange == "" && f.Price == nil &&
		f.Material == "" && f.Barcode == "" && f.Secondary == nil
}

// Merge overlays another extraction on top of f. A base field is
// replaced only when it is empty or explicitly "missing" — an OCR read
// may fill a gap the filename left, but never silently override good
// filename data. Merging the same overlay twice is a no-op.
func (f Fields) Merge(overlay Fields) Fields {
	out := f
	out.Code = mergeField(f.Code, overlay.Code)
	out.Color = mergeField(f.Color, overlay.Color)
	out.BrandName = mergeField(f.BrandName, overlay.BrandName)
	out.ProductType = mergeField(f.ProductType, overlay.ProductType)
	out.SizeRange = mergeField(f.SizeRange, overlay.SizeRange)
	out.Material = mergeField(f.Material, overlay.Material)
	out.Barcode = mergeField(f.Barcode, overlay.Barcode)
	if f.Price == nil {
		out.Price = overlay.Price
	}
	if f.Secondary == nil {
		out.Secondary = overlay.Secondary
	}
	if f.SourceText == "" {
		out.SourceText = overlay.SourceText
	}
	out.Confidence = confidence(out)
	return out
}

func mergeField(base, overlay string) string {
	if base == "" || base == constants.FieldMissing {
		return overlay
	}
	return base
}

// Key returns the normalized cache key for this extraction, or "" when
// code or color is unknown.
func (f Fields) Key() string {
	return CacheKey(f.Code, f.Color)
}

// CacheKey builds the normalized uppercase CODE_COLOR cache key.
func CacheKey(code, color string) string {
	code = normalizeKeyPart(code)
	color = normalizeKeyPart(color)
	if code == "" || color == "" {
		return ""
	}
	return code + "_" + color
}

func normalizeKeyPart(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == strings.ToUpper(constants.FieldMissing) {
		return ""
	}
	return strings.ReplaceAll(s, " ", "")
}

// confidence is the fraction of primary fields that were populated.
func confidence(f Fields) float64 {
	total := 8.0
	populated := 0.0
	for _, s := range []string{f.Code, f.Color, f.BrandName, f.ProductType, f.SizeRange, f.Material, f.Barcode} {
		if s != "" && s != constants.FieldMissing {
			populated++
		}
	}
	if f.Price != nil {
		populated++
	}
	return populated / total
}
