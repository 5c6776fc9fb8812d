package constants

import "strings"

// Known color words as they appear on labels and in filenames.
// Matching is whole-word and case-insensitive; canonical form is uppercase.
var Colors = []string{
	"BLACK", "WHITE", "BROWN", "BEIGE", "GREY", "GRAY", "NAVY", "BLUE",
	"RED", "GREEN", "KHAKI", "PINK", "PURPLE", "YELLOW", "ORANGE",
	"CREAM", "ECRU", "MINT", "LILA", "BORDO", "CAMEL", "VIZON", "ANTHRACITE",
}

// Known product type words found on garment tags.
var ProductTypes = []string{
	"DRESS", "SHIRT", "T-SHIRT", "TSHIRT", "BLOUSE", "SKIRT", "PANTS",
	"TROUSERS", "JEANS", "JACKET", "COAT", "CARDIGAN", "SWEATER",
	"PULLOVER", "TUNIC", "VEST", "SUIT", "SET", "TRACKSUIT", "LEGGINGS",
}

// Known fabric/material words.
var Materials = []string{
	"COTTON", "POLYESTER", "VISCOSE", "LINEN", "WOOL", "ACRYLIC",
	"ELASTANE", "LYCRA", "DENIM", "SATIN", "CHIFFON",
}

// BrandIndicators are words that follow a brand name on labels, e.g.
// "VERA BRANDS" -> brand hint "VERA".
var BrandIndicators = []string{
	"BRANDS", "BRAND", "COLLECTION", "FASHION", "TEXTILE", "MODA",
}

// CanonicalColor resolves a token to a known color, uppercased.
func CanonicalColor(input string) (string, bool) {
	return canonicalToken(input, Colors)
}

// CanonicalProductType resolves a token to a known product type.
func CanonicalProductType(input string) (string, bool) {
	return canonicalToken(input, ProductTypes)
}

// CanonicalMaterial resolves a token to a known material.
func CanonicalMaterial(input string) (string, bool) {
	return canonicalToken(input, Materials)
}

// IsBrandIndicator reports whether a token marks the preceding word as a
// brand name.
func IsBrandIndicator(input string) bool {
	_, ok := canonicalToken(input, BrandIndicators)
	return ok
}

func canonicalToken(input string, vocab []string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	for _, v := range vocab {
		if normalized == v {
			return v, true
		}
	}
	return "", false
}
