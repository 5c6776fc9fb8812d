package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ksarkisyan/catalog-intake/constants"
)

// Per-field pattern tables, most specific first.
var (
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:PRICE|FIYAT)\s*[:=]?\s*(\d+(?:[.,]\d{1,2})?)`),
		regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)\s*(?:\$|USD|TL|₺|€)`),
		regexp.MustCompile(`(?:\$|€|₺)\s*(\d+(?:[.,]\d{1,2})?)`),
	}

	sizeRangePattern       = regexp.MustCompile(`\b(\d{2})\s*[-–/]\s*(\d{2})\b`)
	letterSizeRangePattern = regexp.MustCompile(`\b(XS|S|M|L|XL|XXL|3XL)\s*[-/]\s*(XS|S|M|L|XL|XXL|3XL)\b`)

	barcodePattern = regexp.MustCompile(`\b(\d{12,13})\b`)
)

// FromText extracts fields from a raw OCR text blob. A label that names
// two distinct product codes yields a Secondary sub-record carrying the
// second variant's own code, color, and size.
func FromText(raw string) Fields {
	f := Fields{SourceText: raw}
	if strings.TrimSpace(raw) == "" {
		f.Confidence = 0
		return f
	}
	upper := strings.ToUpper(raw)

	codes := findAllCodes(upper)
	if len(codes) > 0 {
		f.Code = codes[0]
	}

	colors := findAllColors(upper)
	if len(colors) > 0 {
		f.Color = colors[0]
	}

	for _, re := range pricePatterns {
		if m := re.FindStringSubmatch(upper); m != nil {
			if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
				f.Price = &v
				break
			}
		}
	}

	sizes := findAllSizeRanges(upper)
	if len(sizes) > 0 {
		f.SizeRange = sizes[0]
	}

	tokens := tokenize(upper)
	for i, tok := range tokens {
		if f.ProductType == "" {
			if pt, ok := constants.CanonicalProductType(tok); ok {
				f.ProductType = pt
			}
		}
		if f.Material == "" {
			if mat, ok := constants.CanonicalMaterial(strings.TrimPrefix(tok, "%100")); ok {
				f.Material = mat
			}
		}
		if f.BrandName == "" && i > 0 && constants.IsBrandIndicator(tok) {
			f.BrandName = tokens[i-1]
		}
	}

	if m := barcodePattern.FindStringSubmatch(upper); m != nil {
		f.Barcode = m[1]
	}

	// Dual-product label: a second distinct code gets its own record
	// with only its own variant's fields.
	if len(codes) > 1 {
		sec := Fields{Code: codes[1]}
		if len(colors) > 1 {
			sec.Color = colors[1]
		} else {
			sec.Color = f.Color
		}
		if len(sizes) > 1 {
			sec.SizeRange = sizes[1]
		} else {
			sec.SizeRange = f.SizeRange
		}
		sec.Confidence = confidence(sec)
		f.Secondary = &sec
	}

	f.Confidence = confidence(f)
	return f
}

func findAllCodes(s string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, re := range codePatterns {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			code := strings.ToUpper(m[1])
			if !ValidCode(code) {
				continue
			}
			// Skip codes already covered by a more specific match,
			// e.g. "VV-6124" inside "VV-6124-B".
			if containedInAny(code, out) {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out
}

func containedInAny(code string, found []string) bool {
	for _, f := range found {
		if strings.Contains(f, code) {
			return true
		}
	}
	return false
}

func findAllColors(s string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, tok := range tokenize(s) {
		color, ok := constants.CanonicalColor(tok)
		if !ok {
			continue
		}
		if _, dup := seen[color]; dup {
			continue
		}
		seen[color] = struct{}{}
		out = append(out, color)
	}
	return out
}

func findAllSizeRanges(s string) []string {
	var out []string
	for _, m := range sizeRangePattern.FindAllStringSubmatch(s, -1) {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo >= hi {
			continue // not a size range (could be a date or a code)
		}
		out = append(out, m[1]+"-"+m[2])
	}
	for _, m := range letterSizeRangePattern.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1]+"-"+m[2])
	}
	return out
}
