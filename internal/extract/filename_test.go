package extract

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksarkisyan/catalog-intake/constants"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantRole constants.ImageType
		wantSeq  int
	}{
		{"label without run number", "VV-6124-B BROWN.jpg", constants.ImageTypeLabel, 0},
		{"item with run number", "VV-6124-B BROWN 11.jpg", constants.ImageTypeItem, 11},
		{"item with single digit", "NR-100-A BLACK 1.png", constants.ImageTypeItem, 1},
		{"underscore separator", "NR-100-A_BLACK_3.jpg", constants.ImageTypeItem, 3},
		{"code digits are not a run number", "VV-6124.jpg", constants.ImageTypeLabel, 0},
		{"no extension", "AB-220 NAVY 2", constants.ImageTypeItem, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, seq := ParseRole(tt.filename)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantSeq, seq)
		})
	}
}

func TestFromFilenameCode(t *testing.T) {
	tests := []struct {
		filename string
		wantCode string
	}{
		{"VV-6124-B BROWN.jpg", "VV-6124-B"},
		{"vv-6124-b brown 11.jpg", "VV-6124-B"},
		{"AB-220 NAVY.jpg", "AB-220"},
		{"XK4501 RED 2.jpg", "XK4501"},
		{"just a photo.jpg", ""},
		{"1234 5678.jpg", ""},   // all digits is not a code
		{"DRESS BLUE.jpg", ""},  // all letters is not a code
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			f := FromFilename(tt.filename)
			assert.Equal(t, tt.wantCode, f.Code)
		})
	}
}

// Any extracted code is uppercase and mixes letters and digits.
func TestExtractedCodeShape(t *testing.T) {
	filenames := []string{
		"VV-6124-B BROWN.jpg", "ab-220 navy 3.jpg", "XK4501 RED.jpg",
		"zz-99-c white 1.jpg", "Q-1000 BLACK.jpg",
	}
	for _, name := range filenames {
		f := FromFilename(name)
		if f.Code == "" {
			continue
		}
		hasLetter, hasDigit := false, false
		for _, r := range f.Code {
			require.False(t, unicode.IsLower(r), "code %q from %q is not uppercase", f.Code, name)
			if unicode.IsLetter(r) {
				hasLetter = true
			}
			if unicode.IsDigit(r) {
				hasDigit = true
			}
		}
		assert.True(t, hasLetter, "code %q has no letter", f.Code)
		assert.True(t, hasDigit, "code %q has no digit", f.Code)
	}
}

func TestFromFilenameColorAndBrand(t *testing.T) {
	f := FromFilename("VERA BRANDS VV-6124-B BROWN.jpg")
	assert.Equal(t, "VV-6124-B", f.Code)
	assert.Equal(t, "BROWN", f.Color)
	assert.Equal(t, "VERA", f.BrandName)

	// No guessing: absent fields stay empty.
	g := FromFilename("VV-6124-B.jpg")
	assert.Equal(t, "", g.Color)
	assert.Equal(t, "", g.BrandName)
	assert.Nil(t, g.Price)
}

func TestValidCode(t *testing.T) {
	assert.True(t, ValidCode("VV-6124-B"))
	assert.True(t, ValidCode("XK4501"))
	assert.False(t, ValidCode("612"))
	assert.False(t, ValidCode("123456"))
	assert.False(t, ValidCode("ABCDEF"))
}
