package collage

// Rect is a placement region in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Cell is one image slot. Cover cells crop the image to fill the slot;
// fit cells letterbox it inside.
type Cell struct {
	Rect
	Cover bool
}

// Layout is the full placement plan for one collage: a header band for
// the brand name, a footer band for the info line and badges, and one
// cell per selected image.
type Layout struct {
	Header Rect
	Footer Rect
	Cells  []Cell
}

const (
	headerFrac = 0.08
	footerFrac = 0.12
	dualGap    = 8.0
	multiSplit = 0.60
)

// PlanLayout computes the deterministic arrangement for n images on a
// canvas. One image is centered and letterboxed in the body. Two images
// sit side by side in equal half-width cover cells separated by a fixed
// gap. Three images put the first in a full-height left cell taking 60%
// of the width and the other two stacked on the right, all cover-cropped
// with no gaps.
func PlanLayout(canvasW, canvasH, n int) Layout {
	w := float64(canvasW)
	h := float64(canvasH)
	headerH := h * headerFrac
	footerH := h * footerFrac
	bodyY := headerH
	bodyH := h - headerH - footerH

	l := Layout{
		Header: Rect{X: 0, Y: 0, W: w, H: headerH},
		Footer: Rect{X: 0, Y: h - footerH, W: w, H: footerH},
	}

	switch {
	case n <= 1:
		l.Cells = []Cell{
			{Rect: Rect{X: 0, Y: bodyY, W: w, H: bodyH}, Cover: false},
		}
	case n == 2:
		cellW := (w - dualGap) / 2
		l.Cells = []Cell{
			{Rect: Rect{X: 0, Y: bodyY, W: cellW, H: bodyH}, Cover: true},
			{Rect: Rect{X: cellW + dualGap, Y: bodyY, W: cellW, H: bodyH}, Cover: true},
		}
	default:
		leftW := w * multiSplit
		rightW := w - leftW
		halfH := bodyH / 2
		l.Cells = []Cell{
			{Rect: Rect{X: 0, Y: bodyY, W: leftW, H: bodyH}, Cover: true},
			{Rect: Rect{X: leftW, Y: bodyY, W: rightW, H: halfH}, Cover: true},
			{Rect: Rect{X: leftW, Y: bodyY + halfH, W: rightW, H: bodyH - halfH}, Cover: true},
		}
	}
	return l
}
