package collage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
)

const (
	testW = 1080
	testH = 1350
)

func bodyBounds(l Layout) (top, bottom float64) {
	return l.Header.Y + l.Header.H, l.Footer.Y
}

func TestPlanLayoutCellCount(t *testing.T) {
	assert.Len(t, PlanLayout(testW, testH, 1).Cells, 1)
	assert.Len(t, PlanLayout(testW, testH, 2).Cells, 2)
	assert.Len(t, PlanLayout(testW, testH, 3).Cells, 3)
	// zero degrades to the single-image plan, caller guards emptiness
	assert.Len(t, PlanLayout(testW, testH, 0).Cells, 1)
}

func TestPlanLayoutCellsStayInsideBody(t *testing.T) {
	for n := 1; n <= 3; n++ {
		l := PlanLayout(testW, testH, n)
		top, bottom := bodyBounds(l)
		require.Less(t, top, bottom)
		for i, c := range l.Cells {
			assert.GreaterOrEqual(t, c.X, 0.0, "n=%d cell=%d", n, i)
			assert.GreaterOrEqual(t, c.Y, top, "n=%d cell=%d", n, i)
			assert.LessOrEqual(t, c.X+c.W, float64(testW)+0.5, "n=%d cell=%d", n, i)
			assert.LessOrEqual(t, c.Y+c.H, bottom+0.5, "n=%d cell=%d", n, i)
			assert.Greater(t, c.W, 0.0)
			assert.Greater(t, c.H, 0.0)
		}
	}
}

func TestPlanLayoutCellsDoNotOverlap(t *testing.T) {
	for n := 2; n <= 3; n++ {
		l := PlanLayout(testW, testH, n)
		for i := 0; i < len(l.Cells); i++ {
			for j := i + 1; j < len(l.Cells); j++ {
				a, b := l.Cells[i].Rect, l.Cells[j].Rect
				overlapW := min(a.X+a.W, b.X+b.W) - max(a.X, b.X)
				overlapH := min(a.Y+a.H, b.Y+b.H) - max(a.Y, b.Y)
				assert.False(t, overlapW > 0.5 && overlapH > 0.5,
					"n=%d cells %d and %d overlap", n, i, j)
			}
		}
	}
}

func TestPlanLayoutTriptychFillsBody(t *testing.T) {
	l := PlanLayout(testW, testH, 3)
	top, bottom := bodyBounds(l)
	bodyArea := float64(testW) * (bottom - top)
	var cellArea float64
	for _, c := range l.Cells {
		cellArea += c.W * c.H
	}
	assert.InDelta(t, bodyArea, cellArea, 1.0)
	for _, c := range l.Cells {
		assert.True(t, c.Cover)
	}
}

func TestPlanLayoutSingleIsFit(t *testing.T) {
	l := PlanLayout(testW, testH, 1)
	require.Len(t, l.Cells, 1)
	assert.False(t, l.Cells[0].Cover)
	assert.Equal(t, float64(testW), l.Cells[0].W)
}

func TestPlanLayoutIsDeterministic(t *testing.T) {
	assert.Equal(t, PlanLayout(testW, testH, 3), PlanLayout(testW, testH, 3))
}

func itemRow(name string, seq int) *ent.ProductImage {
	return &ent.ProductImage{
		Filename:  name,
		ImageType: string(constants.ImageTypeItem),
		Sequence:  seq,
		IsActive:  true,
	}
}

func TestSelectImages(t *testing.T) {
	label := &ent.ProductImage{Filename: "ab-220.jpg", ImageType: string(constants.ImageTypeLabel), IsActive: true}
	collageRow := &ent.ProductImage{Filename: "collage_1.png", ImageType: string(constants.ImageTypeCollage), IsActive: true}
	inactive := itemRow("ab-220 black 9.jpg", 9)
	inactive.IsActive = false

	rows := []*ent.ProductImage{
		itemRow("ab-220 black 3.jpg", 3),
		label,
		itemRow("ab-220 black 1.jpg", 1),
		collageRow,
		inactive,
		itemRow("ab-220 black 2.jpg", 2),
		itemRow("ab-220 black 4.jpg", 4),
	}

	got := SelectImages(rows)
	require.Len(t, got, MaxImages)
	assert.Equal(t, "ab-220 black 1.jpg", got[0].Filename)
	assert.Equal(t, "ab-220 black 2.jpg", got[1].Filename)
	assert.Equal(t, "ab-220 black 3.jpg", got[2].Filename)
}

func TestSelectImagesTiesBreakOnFilename(t *testing.T) {
	rows := []*ent.ProductImage{
		itemRow("b.jpg", 0),
		itemRow("a.jpg", 0),
	}
	got := SelectImages(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "a.jpg", got[0].Filename)
}
