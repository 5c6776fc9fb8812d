package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTextLabel(t *testing.T) {
	raw := `VERA BRANDS
VV-6124-B BROWN
DRESS %100 COTTON
36-42
PRICE: 24.50 $
8691234567890`

	f := FromText(raw)
	assert.Equal(t, "VV-6124-B", f.Code)
	assert.Equal(t, "BROWN", f.Color)
	assert.Equal(t, "VERA", f.BrandName)
	assert.Equal(t, "DRESS", f.ProductType)
	assert.Equal(t, "COTTON", f.Material)
	assert.Equal(t, "36-42", f.SizeRange)
	require.NotNil(t, f.Price)
	assert.InDelta(t, 24.50, *f.Price, 0.001)
	assert.Equal(t, "8691234567890", f.Barcode)
	assert.Nil(t, f.Secondary)
	assert.Greater(t, f.Confidence, 0.8)
}

func TestFromTextOneFieldPerLine(t *testing.T) {
	// Vision returns block text with one field per line and no spaces;
	// line breaks must separate tokens just like spaces do.
	raw := "VERA MODA\nTUNIC\nVV-6124-B\nBROWN\n38-48\nPRICE: 24.50"

	f := FromText(raw)
	assert.Equal(t, "VV-6124-B", f.Code)
	assert.Equal(t, "BROWN", f.Color)
	assert.Equal(t, "TUNIC", f.ProductType)
	assert.Equal(t, "VERA", f.BrandName)
	assert.Equal(t, "38-48", f.SizeRange)
	require.NotNil(t, f.Price)
	assert.InDelta(t, 24.50, *f.Price, 0.001)
}

func TestFromTextEmpty(t *testing.T) {
	f := FromText("   \n ")
	assert.True(t, f.IsZero())
	assert.Zero(t, f.Confidence)
}

func TestFromTextDualProductLabel(t *testing.T) {
	raw := `VV-6124-B BROWN 36-42
VV-6125-C BLACK 38-44
PRICE 19 $`

	f := FromText(raw)
	assert.Equal(t, "VV-6124-B", f.Code)
	assert.Equal(t, "BROWN", f.Color)
	assert.Equal(t, "36-42", f.SizeRange)

	require.NotNil(t, f.Secondary)
	assert.Equal(t, "VV-6125-C", f.Secondary.Code)
	assert.Equal(t, "BLACK", f.Secondary.Color)
	assert.Equal(t, "38-44", f.Secondary.SizeRange)
	assert.Nil(t, f.Secondary.Secondary)
}

func TestFromTextPriceVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"PRICE: 24.50", 24.50},
		{"FIYAT 19,90", 19.90},
		{"12 USD", 12},
		{"$ 8.99", 8.99},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := FromText(tt.raw)
			require.NotNil(t, f.Price, "no price from %q", tt.raw)
			assert.InDelta(t, tt.want, *f.Price, 0.001)
		})
	}

	// No fabricated price.
	f := FromText("VV-6124-B BROWN")
	assert.Nil(t, f.Price)
}

func TestMergeKeepsPopulatedBase(t *testing.T) {
	price := 24.0
	base := FromFilename("VV-6124-B BROWN.jpg")
	overlay := Fields{
		Code:        "XX-9999-Z", // must not override the filename code
		Color:       "BLACK",
		ProductType: "DRESS",
		SizeRange:   "36-42",
		Price:       &price,
	}

	merged := base.Merge(overlay)
	assert.Equal(t, "VV-6124-B", merged.Code)
	assert.Equal(t, "BROWN", merged.Color)
	assert.Equal(t, "DRESS", merged.ProductType) // gap filled
	assert.Equal(t, "36-42", merged.SizeRange)
	require.NotNil(t, merged.Price)
	assert.Equal(t, 24.0, *merged.Price)

	// Idempotent: merging the same overlay again changes nothing.
	again := merged.Merge(overlay)
	assert.Equal(t, merged, again)
}

func TestMergeReplacesMissingMarker(t *testing.T) {
	base := Fields{Code: "VV-6124-B", Color: "BROWN", ProductType: "missing"}
	overlay := Fields{ProductType: "DRESS"}
	merged := base.Merge(overlay)
	assert.Equal(t, "DRESS", merged.ProductType)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "VV-6124-B_BROWN", CacheKey("vv-6124-b", "Brown"))
	assert.Equal(t, "", CacheKey("VV-6124-B", ""))
	assert.Equal(t, "", CacheKey("", "BROWN"))
	assert.Equal(t, "", CacheKey("VV-6124-B", "missing"))
}

func TestCachePutGet(t *testing.T) {
	c := NewCache()
	f := FromFilename("VV-6124-B BROWN.jpg")

	_, ok := c.Get(f.Key())
	assert.False(t, ok)

	c.Put(f.Key(), f)
	got, ok := c.Get("VV-6124-B_BROWN")
	require.True(t, ok)
	assert.Equal(t, f.Code, got.Code)

	// Re-extraction overwrites.
	c.Put(f.Key(), Fields{Code: f.Code, Color: f.Color, ProductType: "DRESS"})
	got, _ = c.Get(f.Key())
	assert.Equal(t, "DRESS", got.ProductType)
	assert.Equal(t, 1, c.Len())

	// Empty keys are never stored.
	c.Put("", Fields{})
	assert.Equal(t, 1, c.Len())
}

func TestValidateFields(t *testing.T) {
	f := FromText("VV-6124-B BROWN 36-42 PRICE 24 $")
	assert.NoError(t, ValidateFields(f))
}
