package extract

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ksarkisyan/catalog-intake/constants"
)

// Code patterns in priority order: the most specific shape wins.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Za-z]{1,4}-\d{2,5}-[A-Za-z])\b`), // VV-6124-B
	regexp.MustCompile(`\b([A-Za-z]{1,4}-\d{2,5})\b`),          // VV-6124
	regexp.MustCompile(`\b([A-Za-z]{1,4}\d{2,5})\b`),           // VV6124
}

// runSuffix matches a trailing run number on an item filename stem,
// e.g. "VV-6124-B BROWN 11". Hyphens are excluded as separators so the
// numeric tail of a bare code ("AB-220") is not mistaken for a run.
var runSuffix = regexp.MustCompile(`[\s_](\d{1,3})$`)

// ParseRole infers the file's role from its name: a trailing run number
// before the extension marks an item photo; anything else is a label.
// The second return value is the run number (0 for labels).
func ParseRole(filename string) (constants.ImageType, int) {
	stem := strings.TrimSpace(strings.TrimSuffix(filename, filepath.Ext(filename)))
	m := runSuffix.FindStringSubmatch(stem)
	if m == nil {
		return constants.ImageTypeLabel, 0
	}
	seq, err := strconv.Atoi(m[1])
	if err != nil || seq <= 0 {
		return constants.ImageTypeLabel, 0
	}
	return constants.ImageTypeItem, seq
}

// FromFilename extracts fields from an upload filename. Missing fields
// stay zero.
func FromFilename(name string) Fields {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	var f Fields

	if code, ok := findCode(stem); ok {
		f.Code = code
	}

	tokens := tokenize(stem)
	for i, tok := range tokens {
		if f.Color == "" {
			if color, ok := constants.CanonicalColor(tok); ok {
				f.Color = color
			}
		}
		if f.ProductType == "" {
			if pt, ok := constants.CanonicalProductType(tok); ok {
				f.ProductType = pt
			}
		}
		// "VERA BRANDS ..." — the word before an indicator is the brand.
		if f.BrandName == "" && i > 0 && constants.IsBrandIndicator(tok) {
			f.BrandName = strings.ToUpper(tokens[i-1])
		}
	}

	if f.SizeRange == "" {
		if m := sizeRangePattern.FindStringSubmatch(stem); m != nil {
			f.SizeRange = m[1] + "-" + m[2]
		}
	}

	f.Confidence = confidence(f)
	return f
}

// findCode applies the pattern table in priority order and returns the
// first structurally valid match uppercased.
func findCode(s string) (string, bool) {
	for _, re := range codePatterns {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			code := strings.ToUpper(m[1])
			if ValidCode(code) {
				return code, true
			}
		}
	}
	return "", false
}

// ValidCode rejects codes that are too short, all digits, or all
// letters — those shapes are too generic to identify a product.
func ValidCode(code string) bool {
	if len(code) < 4 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range code {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// tokenize splits on whitespace (including the line breaks OCR text
// arrives with) and underscores, keeping hyphens inside tokens (they
// are part of product codes).
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\r' || r == '\t' || r == '_' || r == '.' || r == ','
	})
}
