package collage

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp"

	"github.com/ksarkisyan/catalog-intake/internal/common"
)

// Spec describes one collage to render. ImagePaths are the selected
// item photos in placement order; PriceText is the preformatted price
// badge content, empty when the product has no price yet.
type Spec struct {
	BrandName  string
	Info       string
	PriceText  string
	ImagePaths []string
}

// Compositor renders deterministic product collages. Identical inputs
// produce pixel-identical output, so re-rendering an unchanged product
// yields the same file.
type Compositor struct {
	width  int
	height int
	logger *slog.Logger

	headerFace font.Face
	infoFace   font.Face
	badgeFace  font.Face
}

type Config struct {
	Width    int
	Height   int
	FontPath string
}

func NewCompositor(cfg Config, logger *slog.Logger) (*Compositor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", cfg.Width, cfg.Height)
	}

	fontBytes, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse TTF: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(parsed, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}

	h := float64(cfg.Height)
	return &Compositor{
		width:      cfg.Width,
		height:     cfg.Height,
		logger:     logger,
		headerFace: face(h * 0.045),
		infoFace:   face(h * 0.024),
		badgeFace:  face(h * 0.028),
	}, nil
}

var (
	canvasBg  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	bandBg    = color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1E, A: 0xFF}
	badgeBg   = color.NRGBA{R: 0xC8, G: 0x3A, B: 0x3A, A: 0xFF}
	textDark  = color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1E, A: 0xFF}
	textLight = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Compose renders the collage PNG for spec into out.
func (c *Compositor) Compose(spec Spec, out io.Writer) error {
	if len(spec.ImagePaths) == 0 {
		return fmt.Errorf("no images to compose: %w", common.ErrCollage)
	}
	if len(spec.ImagePaths) > MaxImages {
		spec.ImagePaths = spec.ImagePaths[:MaxImages]
	}

	imgs := make([]image.Image, 0, len(spec.ImagePaths))
	for _, p := range spec.ImagePaths {
		img, err := loadImage(p)
		if err != nil {
			return fmt.Errorf("load %s: %w: %v", p, common.ErrCollage, err)
		}
		imgs = append(imgs, img)
	}

	layout := PlanLayout(c.width, c.height, len(imgs))

	dc := gg.NewContext(c.width, c.height)
	dc.SetColor(canvasBg)
	dc.Clear()

	for i, cell := range layout.Cells {
		if i >= len(imgs) {
			break
		}
		c.drawCell(dc, imgs[i], cell)
	}

	c.drawHeader(dc, layout.Header, spec.BrandName)
	c.drawFooter(dc, layout.Footer, spec)

	if err := dc.EncodePNG(out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (c *Compositor) drawHeader(dc *gg.Context, band Rect, brand string) {
	dc.SetColor(bandBg)
	dc.DrawRectangle(band.X, band.Y, band.W, band.H)
	dc.Fill()

	if brand == "" {
		return
	}
	dc.SetFontFace(c.headerFace)
	dc.SetColor(textLight)
	title := strings.ToUpper(brand)
	tw, th := dc.MeasureString(title)
	dc.DrawString(title, band.X+(band.W-tw)/2, band.Y+(band.H+th)/2-th*0.15)
}

func (c *Compositor) drawFooter(dc *gg.Context, band Rect, spec Spec) {
	dc.SetColor(bandBg)
	dc.DrawRectangle(band.X, band.Y, band.W, band.H)
	dc.Fill()

	margin := band.H * 0.2
	badgeH := band.H - 2*margin
	cy := band.Y + band.H/2

	// logo badge: brand initial in a rounded square on the left
	badgeW := badgeH
	dc.SetColor(textLight)
	dc.DrawRoundedRectangle(band.X+margin, band.Y+margin, badgeW, badgeH, badgeH*0.25)
	dc.Fill()
	initial := brandInitial(spec.BrandName)
	if initial != "" {
		dc.SetFontFace(c.badgeFace)
		dc.SetColor(textDark)
		tw, th := dc.MeasureString(initial)
		dc.DrawString(initial, band.X+margin+(badgeW-tw)/2, cy+th/2-th*0.15)
	}

	// price badge on the right, only when a price exists
	rightEdge := band.X + band.W - margin
	if spec.PriceText != "" {
		dc.SetFontFace(c.badgeFace)
		tw, th := dc.MeasureString(spec.PriceText)
		pad := badgeH * 0.35
		pw := tw + 2*pad
		dc.SetColor(badgeBg)
		dc.DrawRoundedRectangle(rightEdge-pw, band.Y+margin, pw, badgeH, badgeH*0.25)
		dc.Fill()
		dc.SetColor(textLight)
		dc.DrawString(spec.PriceText, rightEdge-pw+pad, cy+th/2-th*0.15)
		rightEdge -= pw + margin
	}

	// info line between the badges
	if spec.Info != "" {
		dc.SetFontFace(c.infoFace)
		dc.SetColor(textLight)
		left := band.X + margin + badgeW + margin
		avail := rightEdge - left
		info := fitInfo(spec.Info, func(s string) bool {
			w, _ := dc.MeasureString(s)
			return w <= avail
		})
		tw, th := dc.MeasureString(info)
		dc.DrawString(info, left+(avail-tw)/2, cy+th/2-th*0.15)
	}
}

// fitInfo shortens s until fits accepts it, trimming whole runes and
// appending an ellipsis. Product info regularly carries non-ASCII
// (Turkish colors, sizes), so byte slicing is not safe here.
func fitInfo(s string, fits func(string) bool) string {
	if fits(s) {
		return s
	}
	runes := []rune(s)
	for len(runes) > 3 {
		runes = runes[:len(runes)-3]
		if short := string(runes) + "…"; fits(short) {
			return short
		}
	}
	return string(runes) + "…"
}

// drawCell scales the image into its slot. Cover cells center-crop the
// source to the cell's aspect ratio first; fit cells letterbox.
func (c *Compositor) drawCell(dc *gg.Context, img image.Image, cell Cell) {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return
	}

	if cell.Cover {
		cellAspect := cell.W / cell.H
		srcAspect := float64(srcW) / float64(srcH)
		crop := b
		if srcAspect > cellAspect {
			cw := int(float64(srcH) * cellAspect)
			x0 := b.Min.X + (srcW-cw)/2
			crop = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
		} else if srcAspect < cellAspect {
			ch := int(float64(srcW) / cellAspect)
			y0 := b.Min.Y + (srcH-ch)/2
			crop = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(cell.W), int(cell.H)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)
		dc.DrawImage(dst, int(cell.X), int(cell.Y))
		return
	}

	scale := cell.W / float64(srcW)
	if s := cell.H / float64(srcH); s < scale {
		scale = s
	}
	dw := int(float64(srcW) * scale)
	dh := int(float64(srcH) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	dc.DrawImage(dst, int(cell.X)+(int(cell.W)-dw)/2, int(cell.Y)+(int(cell.H)-dh)/2)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func brandInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
