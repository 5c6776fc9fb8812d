package pipeline

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
	"github.com/ksarkisyan/catalog-intake/internal/collage"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

// productLock returns the per-product mutex used to single-flight
// publish checks: concurrent item files for one product must not race
// two collages.
func (c *Coordinator) productLock(id uuid.UUID) *sync.Mutex {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()
	mu, ok := c.publishLocks[id]
	if !ok {
		mu = &sync.Mutex{}
		c.publishLocks[id] = mu
	}
	return mu
}

// PublishCheck re-reads the product and, when it is complete and has at
// least one item photo, composes a collage and announces it. A product
// already published with an identical collage is left alone. Compose and
// publish failures leave the sent flag false so a later run retries.
func (c *Coordinator) PublishCheck(ctx context.Context, productID uuid.UUID) error {
	mu := c.productLock(productID)
	mu.Lock()
	defer mu.Unlock()

	log := c.logger.With("product_id", productID)

	p, err := c.products.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}

	if gaps := CompletenessGaps(p); len(gaps) > 0 {
		log.Debug("product not publishable yet", "gaps", strings.Join(gaps, ","))
		return nil
	}

	items, err := c.images.ListActiveItems(ctx, productID)
	if err != nil {
		return fmt.Errorf("list item images: %w", err)
	}
	selected := collage.SelectImages(items)
	if len(selected) == 0 {
		log.Debug("no item photos, nothing to compose")
		return nil
	}

	brandName := ""
	if p.BrandID != nil {
		if b, err := c.brandsRepo.GetByID(ctx, *p.BrandID); err == nil {
			brandName = b.Name
		} else {
			log.Warn("brand lookup failed", "brand_id", *p.BrandID, "err", err)
		}
	}

	info := productInfoLine(p)
	priceText := c.priceText(p)

	paths := make([]string, 0, len(selected))
	for _, img := range selected {
		paths = append(paths, img.StoragePath)
	}
	fingerprint := collageFingerprint(paths, brandName, info, priceText)

	if p.TelegramSent && p.CollageFingerprint != nil && *p.CollageFingerprint == fingerprint {
		log.Debug("collage unchanged, already published")
		return nil
	}

	var buf bytes.Buffer
	if err := c.composer.Compose(collage.Spec{
		BrandName:  brandName,
		Info:       info,
		PriceText:  priceText,
		ImagePaths: paths,
	}, &buf); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCollage, err)
	}

	// At most one active collage row may exist, so the previous one is
	// removed before its replacement is written. The new collage is
	// already composed in memory; a failure past this point leaves the
	// product collage-less until the next completeness trigger recomposes.
	old, err := c.images.ActiveCollage(ctx, productID)
	if err != nil {
		return fmt.Errorf("query old collage: %w", err)
	}
	if old != nil {
		if err := c.images.Delete(ctx, old.ID); err != nil {
			return fmt.Errorf("%w: delete old collage %s: %v", common.ErrPersistence, old.ID, err)
		}
		if err := c.store.Remove(old.StoragePath); err != nil {
			log.Warn("old collage file not deleted", "path", old.StoragePath, "err", err)
		}
	}

	filename := fmt.Sprintf("collage_%d.png", time.Now().UnixNano())
	path, err := c.store.Save(productID, filename, buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrCollage, err)
	}

	if _, err := c.images.Create(ctx, repository.ImageDraft{
		ProductID:   productID,
		Filename:    filename,
		StoragePath: path,
		Type:        constants.ImageTypeCollage,
	}); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	caption := buildCaption(brandName, info, priceText)
	if err := c.notifier.PublishPhoto(ctx, buf.Bytes(), filename, caption); err != nil {
		// Collage is saved; the sent flag stays false for a retry on the
		// next completeness trigger.
		return err
	}

	if err := c.products.MarkPublished(ctx, productID, fingerprint); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	log.Info("product published", "images", len(paths), "fingerprint", fingerprint[:12])
	return nil
}

// collageFingerprint identifies one exact collage: same inputs, same
// fingerprint. Publishing is keyed on it so an unchanged product is
// announced exactly once.
func collageFingerprint(paths []string, brand, info, priceText string) string {
	h := sha256.New()
	for _, p := range paths {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	h.Write([]byte(brand))
	h.Write([]byte{0})
	h.Write([]byte(info))
	h.Write([]byte{0})
	h.Write([]byte(priceText))
	return hex.EncodeToString(h.Sum(nil))
}

// productInfoLine builds the footer line, e.g. "TUNIC: VV-6124-B BROWN 38-48".
func productInfoLine(p *ent.Product) string {
	parts := []string{p.Code, p.Color}
	if fieldPresent(p.SizeRange) {
		parts = append(parts, *p.SizeRange)
	}
	line := strings.Join(parts, " ")
	if fieldPresent(p.ProductType) {
		line = strings.ToUpper(*p.ProductType) + ": " + line
	}
	return line
}

// priceText formats the badge content as a whole amount ("$25"); the
// badge is a glanceable tag, not an invoice line.
func (c *Coordinator) priceText(p *ent.Product) string {
	if p.Price == nil {
		return ""
	}
	sym := c.collageCfg.CurrencySymbol
	if sym == "" {
		sym = "$"
	}
	return sym + strconv.Itoa(int(math.Round(*p.Price)))
}

func buildCaption(brand, info, priceText string) string {
	parts := make([]string, 0, 3)
	if brand != "" {
		parts = append(parts, strings.ToUpper(brand))
	}
	if info != "" {
		parts = append(parts, info)
	}
	if priceText != "" {
		parts = append(parts, priceText)
	}
	return strings.Join(parts, " | ")
}
