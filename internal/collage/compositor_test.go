package collage

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func runeBudget(max int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) <= max }
}

func TestFitInfoKeepsShortText(t *testing.T) {
	assert.Equal(t, "ELBİSE: AB-220 SİYAH", fitInfo("ELBİSE: AB-220 SİYAH", runeBudget(40)))
}

func TestFitInfoTrimsWholeRunes(t *testing.T) {
	long := strings.Repeat("TUNİK ÜRÜN ", 8)
	got := fitInfo(long, runeBudget(20))

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 20)
	// the kept prefix is untouched source text
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(got, "…")))
}

func TestFitInfoNeverFitsStillTerminates(t *testing.T) {
	got := fitInfo("ÇÇÇÇÇÇÇÇÇÇ", func(string) bool { return false })
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 4)
}
